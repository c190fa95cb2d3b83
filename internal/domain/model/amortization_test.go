package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concursalia/filingdocs/internal/domain/model"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestMonthlyRate(t *testing.T) {
	// (1.12)^(1/12) - 1 ≈ 0.0094888
	rate := model.MonthlyRate(decimal.NewFromInt(12))
	assert.InDelta(t, 0.0094888, rate, 0.000001)

	assert.Zero(t, model.MonthlyRate(decimal.Zero))
	assert.Zero(t, model.MonthlyRate(decimal.NewFromInt(-5)))
}

func TestProjectSchedule_TwelveMonths(t *testing.T) {
	// $1.200.000 at 12% EA over 12 months.
	proposal := &model.PaymentProposal{
		TermMonths:                 12,
		EffectiveAnnualRatePercent: decimal.NewFromInt(12),
		PaymentStartDate:           datePtr(2026, time.February, 1),
		PaymentDayOfMonth:          5,
	}
	capital := decimal.NewFromInt(1_200_000)

	schedule := model.ProjectSchedule(capital, proposal)
	require.Len(t, schedule, 12)

	first := schedule[0]
	assert.Equal(t, 1, first.Period)
	assert.True(t, first.OpeningBalance.Equal(capital),
		"first opening balance must be the class capital, got %s", first.OpeningBalance)
	assert.Equal(t, time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC), first.DueDate)
	assert.Equal(t, model.PeriodTermDays, first.TermDays)

	// Interest of period 1 = capital * monthly rate.
	wantInterest := capital.InexactFloat64() * model.MonthlyRate(proposal.EffectiveAnnualRatePercent)
	assert.InDelta(t, wantInterest, first.Interest.InexactFloat64(), 0.01)

	// Fixed installment across every period.
	for _, p := range schedule {
		assert.True(t, p.Installment.Equal(first.Installment),
			"installment must be constant, period %d got %s", p.Period, p.Installment)
		assert.False(t, p.ClosingBalance.IsNegative(),
			"closing balance must never be negative, period %d got %s", p.Period, p.ClosingBalance)
	}

	// Due dates advance month by month with the day pinned.
	assert.Equal(t, time.Date(2027, time.January, 5, 0, 0, 0, 0, time.UTC), schedule[11].DueDate)

	// Final balance amortises to zero within tolerance.
	last := schedule[11]
	assert.InDelta(t, 0, last.ClosingBalance.InexactFloat64(), 0.01,
		"final closing balance should be ~0, got %s", last.ClosingBalance)

	// Principal portions sum back to the class capital.
	total := decimal.Zero
	for _, p := range schedule {
		total = total.Add(p.Principal)
	}
	assert.InDelta(t, capital.InexactFloat64(), total.InexactFloat64(), 0.01)
}

func TestProjectSchedule_ZeroRateEvenSplit(t *testing.T) {
	proposal := &model.PaymentProposal{
		TermMonths:                 12,
		EffectiveAnnualRatePercent: decimal.Zero,
		PaymentStartDate:           datePtr(2026, time.March, 1),
		PaymentDayOfMonth:          15,
	}

	schedule := model.ProjectSchedule(decimal.NewFromInt(1_200_000), proposal)
	require.Len(t, schedule, 12)

	for _, p := range schedule {
		assert.True(t, p.Interest.IsZero(), "interest must be zero at 0%% EA")
		assert.True(t, p.Installment.Equal(decimal.NewFromInt(100_000)),
			"each installment should be $100.000, got %s", p.Installment)
	}
	assert.True(t, schedule[11].ClosingBalance.IsZero())
}

func TestProjectSchedule_DayPinnedToShortMonth(t *testing.T) {
	proposal := &model.PaymentProposal{
		TermMonths:                 3,
		EffectiveAnnualRatePercent: decimal.NewFromInt(10),
		PaymentStartDate:           datePtr(2026, time.January, 1),
		PaymentDayOfMonth:          31,
	}

	schedule := model.ProjectSchedule(decimal.NewFromInt(300_000), proposal)
	require.Len(t, schedule, 3)

	assert.Equal(t, time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC), schedule[0].DueDate)
	assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), schedule[1].DueDate)
	assert.Equal(t, time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), schedule[2].DueDate)
}

func TestProjectSchedule_MalformedProposal(t *testing.T) {
	capital := decimal.NewFromInt(500_000)

	t.Run("nil proposal", func(t *testing.T) {
		assert.Nil(t, model.ProjectSchedule(capital, nil))
	})

	t.Run("non-positive term", func(t *testing.T) {
		assert.Nil(t, model.ProjectSchedule(capital, &model.PaymentProposal{
			TermMonths:       0,
			PaymentStartDate: datePtr(2026, time.January, 1),
		}))
	})

	t.Run("missing start date", func(t *testing.T) {
		assert.Nil(t, model.ProjectSchedule(capital, &model.PaymentProposal{
			TermMonths: 12,
		}))
	})

	t.Run("zero capital", func(t *testing.T) {
		assert.Nil(t, model.ProjectSchedule(decimal.Zero, &model.PaymentProposal{
			TermMonths:       12,
			PaymentStartDate: datePtr(2026, time.January, 1),
		}))
	})
}

func TestDistributeInstallment(t *testing.T) {
	creditors := []model.Creditor{
		{Name: "Banco Uno", Capital: decimal.NewFromInt(1_000_000),
			CurrentInterest: decimal.NewFromInt(50_000)},
		{Name: "Banco Dos", Capital: decimal.NewFromInt(3_000_000)},
	}
	classCapital := decimal.NewFromInt(4_000_000)
	installment := decimal.NewFromInt(400_000)

	lines := model.DistributeInstallment(classCapital, installment, creditors)
	require.Len(t, lines, 2)

	assert.True(t, lines[0].SharePercent.Equal(decimal.NewFromInt(25)),
		"got %s", lines[0].SharePercent)
	assert.True(t, lines[1].SharePercent.Equal(decimal.NewFromInt(75)),
		"got %s", lines[1].SharePercent)
	assert.True(t, lines[0].Installment.Equal(decimal.NewFromInt(100_000)))
	assert.True(t, lines[1].Installment.Equal(decimal.NewFromInt(300_000)))
	assert.True(t, lines[0].UpdatedCapital.Equal(decimal.NewFromInt(1_050_000)))

	// Lines always sum back to the installment.
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Installment)
	}
	assert.InDelta(t, installment.InexactFloat64(), sum.InexactFloat64(), 1e-6)
}

func TestDistributeInstallment_ZeroClassCapital(t *testing.T) {
	lines := model.DistributeInstallment(decimal.Zero, decimal.NewFromInt(100_000), []model.Creditor{
		{Name: "Sin capital", Capital: decimal.Zero},
	})
	require.Len(t, lines, 1)
	assert.True(t, lines[0].SharePercent.IsZero())
	assert.True(t, lines[0].Installment.IsZero())
}
