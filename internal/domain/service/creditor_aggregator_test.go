package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concursalia/filingdocs/internal/domain/model"
	"github.com/concursalia/filingdocs/internal/domain/service"
	"github.com/concursalia/filingdocs/internal/domain/valueobject"
)

func TestAggregate_TwoClassSplit(t *testing.T) {
	// One second-class creditor in default and one unclassified (fifth class)
	// creditor: 25% / 75% of a $4.000.000 grand total.
	creditors := []model.Creditor{
		{
			Name:         "Cooperativa Andina",
			Capital:      decimal.NewFromInt(1_000_000),
			CreditNature: "segunda clase",
			InDefault:    true,
		},
		{
			Name:    "Banco del Centro",
			Capital: decimal.NewFromInt(3_000_000),
		},
	}

	result := service.NewCreditorAggregator().Aggregate(creditors)

	assert.True(t, result.GrandCapital.Equal(decimal.NewFromInt(4_000_000)),
		"grand total capital, got %s", result.GrandCapital)
	assert.Equal(t, 2, result.CreditorCount)
	assert.Equal(t, 1, result.InDefaultCount)

	require.Len(t, result.Classes, 2)

	second := result.Classes[0]
	assert.True(t, second.Class.Equal(valueobject.LegalClassSecond))
	assert.True(t, second.TotalCapital.Equal(decimal.NewFromInt(1_000_000)))
	assert.Equal(t, "25.00", second.CapitalSharePercent.StringFixed(2))

	fifth := result.Classes[1]
	assert.True(t, fifth.Class.Equal(valueobject.LegalClassFifth))
	assert.True(t, fifth.TotalCapital.Equal(decimal.NewFromInt(3_000_000)))
	assert.Equal(t, "75.00", fifth.CapitalSharePercent.StringFixed(2))

	assert.True(t, result.InDefaultCapital.Equal(decimal.NewFromInt(1_000_000)))
	assert.Equal(t, "25.00", result.InDefaultSharePercent.StringFixed(2))
}

func TestAggregate_CapitalConservation(t *testing.T) {
	creditors := []model.Creditor{
		{Name: "A", Capital: decimal.NewFromFloat(123_456.78), CreditNature: "laboral"},
		{Name: "B", Capital: decimal.NewFromFloat(987_654.32), CreditNature: "hipotecario"},
		{Name: "C", Capital: decimal.NewFromFloat(11.11), CreditNature: "proveedor"},
		{Name: "D", Capital: decimal.NewFromFloat(0.01)},
		{Name: "E", Capital: decimal.Zero, CreditNature: "prendario"},
	}

	result := service.NewCreditorAggregator().Aggregate(creditors)

	sumByClass := decimal.Zero
	for _, agg := range result.Classes {
		sumByClass = sumByClass.Add(agg.TotalCapital)
	}
	assert.True(t, sumByClass.Equal(result.GrandCapital),
		"class subtotals %s must sum to grand total %s", sumByClass, result.GrandCapital)

	sumCreditors := decimal.Zero
	for _, c := range creditors {
		sumCreditors = sumCreditors.Add(c.Capital)
	}
	assert.True(t, sumByClass.Equal(sumCreditors))
}

func TestAggregate_PercentTruncation(t *testing.T) {
	// 1/3 of the total is 33.333...%; the share must truncate to 33.33, not
	// round to 33.34.
	creditors := []model.Creditor{
		{Name: "A", Capital: decimal.NewFromInt(1), CreditNature: "laboral"},
		{Name: "B", Capital: decimal.NewFromInt(2)},
	}

	result := service.NewCreditorAggregator().Aggregate(creditors)
	require.Len(t, result.Classes, 2)
	assert.Equal(t, "33.33", result.Classes[0].CapitalSharePercent.StringFixed(2))
	assert.Equal(t, "66.66", result.Classes[1].CapitalSharePercent.StringFixed(2))
}

func TestAggregate_ZeroGrandTotal(t *testing.T) {
	creditors := []model.Creditor{
		{Name: "Sin capital", Capital: decimal.Zero, InDefault: true},
	}

	result := service.NewCreditorAggregator().Aggregate(creditors)
	require.Len(t, result.Classes, 1)
	assert.Equal(t, "0.00", result.Classes[0].CapitalSharePercent.StringFixed(2))
	assert.Equal(t, "0.00", result.InDefaultSharePercent.StringFixed(2))
}

func TestAggregate_Empty(t *testing.T) {
	result := service.NewCreditorAggregator().Aggregate(nil)
	assert.Empty(t, result.Classes)
	assert.True(t, result.GrandCapital.IsZero())
	assert.Zero(t, result.CreditorCount)
}

func TestAggregate_InterestTotals(t *testing.T) {
	creditors := []model.Creditor{
		{
			Name:            "A",
			Capital:         decimal.NewFromInt(100),
			CurrentInterest: decimal.NewFromInt(10),
			DefaultInterest: decimal.NewFromInt(5),
			CreditNature:    "quirografario",
		},
		{
			Name:            "B",
			Capital:         decimal.NewFromInt(200),
			CurrentInterest: decimal.NewFromInt(20),
			CreditNature:    "quirografario",
		},
	}

	result := service.NewCreditorAggregator().Aggregate(creditors)
	require.Len(t, result.Classes, 1)

	agg := result.Classes[0]
	assert.True(t, agg.TotalCurrentInterest.Equal(decimal.NewFromInt(30)))
	assert.True(t, agg.TotalDefaultInterest.Equal(decimal.NewFromInt(5)))
	assert.True(t, result.GrandCurrentInterest.Equal(decimal.NewFromInt(30)))
	assert.True(t, result.GrandDefaultInterest.Equal(decimal.NewFromInt(5)))
}
