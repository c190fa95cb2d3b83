package service

import (
	"github.com/shopspring/decimal"

	"github.com/concursalia/filingdocs/internal/domain/model"
	"github.com/concursalia/filingdocs/internal/domain/valueobject"
)

var oneHundred = decimal.NewFromInt(100)

// ClassAggregate carries the running totals of one legal class.
type ClassAggregate struct {
	Class                valueobject.LegalClass
	Creditors            []model.Creditor
	TotalCapital         decimal.Decimal
	TotalCurrentInterest decimal.Decimal
	TotalDefaultInterest decimal.Decimal

	// CapitalSharePercent is the class share of the grand total capital,
	// truncated (not rounded) to two decimals.
	CapitalSharePercent decimal.Decimal
}

// AggregationResult is the full classification of a creditor list.
type AggregationResult struct {
	// Classes holds the non-empty classes in payment-priority order.
	Classes []ClassAggregate

	GrandCapital         decimal.Decimal
	GrandCurrentInterest decimal.Decimal
	GrandDefaultInterest decimal.Decimal

	// InDefaultCapital sums the capital of creditors more than 90 days past
	// due, with its own share of the grand total.
	InDefaultCapital      decimal.Decimal
	InDefaultSharePercent decimal.Decimal

	CreditorCount  int
	InDefaultCount int
}

// CreditorAggregator is a domain service that groups creditors into legal
// classes and computes per-class and grand totals.
type CreditorAggregator struct{}

// NewCreditorAggregator creates a new CreditorAggregator.
func NewCreditorAggregator() *CreditorAggregator {
	return &CreditorAggregator{}
}

// Aggregate classifies every creditor by credit nature and accumulates the
// per-class and grand totals in a single pass, then derives the percentage
// shares once the grand total is known. The function is total: an empty
// creditor list or a zero grand total yields zero percentages, never an
// error.
func (a *CreditorAggregator) Aggregate(creditors []model.Creditor) AggregationResult {
	byClass := make(map[string]*ClassAggregate, 5)

	result := AggregationResult{CreditorCount: len(creditors)}

	for _, c := range creditors {
		class := valueobject.ClassifyCreditNature(c.CreditNature)

		agg, ok := byClass[class.String()]
		if !ok {
			agg = &ClassAggregate{Class: class}
			byClass[class.String()] = agg
		}
		agg.Creditors = append(agg.Creditors, c)
		agg.TotalCapital = agg.TotalCapital.Add(c.Capital)
		agg.TotalCurrentInterest = agg.TotalCurrentInterest.Add(c.CurrentInterest)
		agg.TotalDefaultInterest = agg.TotalDefaultInterest.Add(c.DefaultInterest)

		result.GrandCapital = result.GrandCapital.Add(c.Capital)
		result.GrandCurrentInterest = result.GrandCurrentInterest.Add(c.CurrentInterest)
		result.GrandDefaultInterest = result.GrandDefaultInterest.Add(c.DefaultInterest)

		if c.InDefault {
			result.InDefaultCount++
			result.InDefaultCapital = result.InDefaultCapital.Add(c.Capital)
		}
	}

	for _, class := range valueobject.AllLegalClasses() {
		agg, ok := byClass[class.String()]
		if !ok {
			continue
		}
		agg.CapitalSharePercent = truncatedShare(agg.TotalCapital, result.GrandCapital)
		result.Classes = append(result.Classes, *agg)
	}

	result.InDefaultSharePercent = truncatedShare(result.InDefaultCapital, result.GrandCapital)

	return result
}

// truncatedShare computes part/whole as a percentage truncated to two
// decimals. A zero denominator yields 0.00 rather than an error.
func truncatedShare(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(oneHundred).Truncate(2)
}
