package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Every projected period covers a commercial 30-day month.
const PeriodTermDays = 30

// PaymentPeriod is an immutable value object representing one period in a
// projected payment plan.
type PaymentPeriod struct {
	Period         int
	DueDate        time.Time
	OpeningBalance decimal.Decimal
	Principal      decimal.Decimal
	Interest       decimal.Decimal
	Installment    decimal.Decimal
	ClosingBalance decimal.Decimal
	TermDays       int
}

// CreditorDistributionLine is one creditor's proportional share of the fixed
// installment of its class.
type CreditorDistributionLine struct {
	CreditorName   string
	UpdatedCapital decimal.Decimal
	SharePercent   decimal.Decimal
	Installment    decimal.Decimal
}

// MonthlyRate converts an effective annual rate (as a percentage, e.g. 12
// for 12% EA) to the equivalent compound monthly rate: (1+EA)^(1/12) - 1.
func MonthlyRate(effectiveAnnualPercent decimal.Decimal) float64 {
	annual := effectiveAnnualPercent.InexactFloat64() / 100.0
	if annual <= 0 {
		return 0
	}
	return math.Pow(1+annual, 1.0/12.0) - 1
}

// ProjectSchedule computes the fixed-installment payment plan for one legal
// class. It returns nil when the proposal is absent or malformed (term below
// one month, missing start date) or the class capital is not positive; the
// document builder renders an explicit "no proposal" block in that case.
//
// The installment uses the standard annuity formula
//
//	installment = C * r * (1+r)^n / ((1+r)^n - 1)
//
// with an even split when the rate is zero. The closing balance of each
// period is clamped to zero to absorb the terminal rounding residue inherent
// to fixed-installment schedules.
func ProjectSchedule(classCapital decimal.Decimal, proposal *PaymentProposal) []PaymentPeriod {
	if proposal == nil || proposal.TermMonths < 1 || proposal.PaymentStartDate == nil {
		return nil
	}
	if classCapital.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	n := proposal.TermMonths
	monthlyRate := MonthlyRate(proposal.EffectiveAnnualRatePercent)

	var installment decimal.Decimal
	if monthlyRate == 0 {
		// Interest-free: even split across the term.
		installment = classCapital.Div(decimal.NewFromInt(int64(n)))
	} else {
		factor := math.Pow(1+monthlyRate, float64(n))
		payment := classCapital.InexactFloat64() * monthlyRate * factor / (factor - 1)
		installment = decimal.NewFromFloat(payment)
	}

	rateDec := decimal.NewFromFloat(monthlyRate)
	day := proposal.PaymentDayOfMonth
	if day < 1 || day > 31 {
		day = 1
	}
	start := *proposal.PaymentStartDate

	schedule := make([]PaymentPeriod, 0, n)
	balance := classCapital

	for period := 1; period <= n; period++ {
		interest := balance.Mul(rateDec)
		principal := installment.Sub(interest)

		closing := balance.Sub(principal)
		if closing.LessThan(decimal.Zero) {
			closing = decimal.Zero
		}

		schedule = append(schedule, PaymentPeriod{
			Period:         period,
			DueDate:        dueDate(start, period-1, day),
			OpeningBalance: balance,
			Principal:      principal,
			Interest:       interest,
			Installment:    installment,
			ClosingBalance: closing,
			TermDays:       PeriodTermDays,
		})

		balance = closing
	}

	return schedule
}

// dueDate advances the start date by monthsAhead months and pins the day of
// month, collapsing to the last day of shorter months.
func dueDate(start time.Time, monthsAhead, day int) time.Time {
	anchor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	anchor = anchor.AddDate(0, monthsAhead, 0)

	if last := daysInMonth(anchor.Year(), anchor.Month()); day > last {
		day = last
	}
	return time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, start.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DistributeInstallment splits the fixed installment of a class across its
// creditors in proportion to each creditor's capital. The returned lines sum
// to the installment up to floating tolerance. A class with zero total
// capital yields zero shares for every creditor.
func DistributeInstallment(
	classCapital decimal.Decimal,
	installment decimal.Decimal,
	creditors []Creditor,
) []CreditorDistributionLine {
	lines := make([]CreditorDistributionLine, 0, len(creditors))

	for _, c := range creditors {
		updated := c.Capital.Add(c.CurrentInterest).Add(c.DefaultInterest)

		var share decimal.Decimal
		if classCapital.IsPositive() {
			share = c.Capital.Div(classCapital)
		}

		lines = append(lines, CreditorDistributionLine{
			CreditorName:   c.Name,
			UpdatedCapital: updated,
			SharePercent:   share.Mul(decimal.NewFromInt(100)),
			Installment:    installment.Mul(share),
		})
	}

	return lines
}
