package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		json string
		want string
	}{
		{"number", `1500000`, "1500000"},
		{"number with decimals", `1234.56`, "1234.56"},
		{"plain string", `"2500000"`, "2500000"},
		{"string with decimals", `"1234.56"`, "1234.56"},
		{"locale formatted", `"$ 1.234.567,89"`, "1234567.89"},
		{"locale without symbol", `"1.000.000,00"`, "1000000"},
		{"null", `null`, "0"},
		{"empty string", `""`, "0"},
		{"garbage", `"N/A"`, "0"},
		{"words", `"sin definir"`, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tc.json), &a))
			assert.Equal(t, tc.want, a.Decimal.String())
		})
	}
}

func TestDateUnmarshal(t *testing.T) {
	t.Run("iso date", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2026-03-10"`), &d))
		require.NotNil(t, d.Time)
		assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), *d.Time)
	})
	t.Run("rfc3339", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2026-03-10T09:30:00Z"`), &d))
		require.NotNil(t, d.Time)
		assert.Equal(t, 9, d.Time.Hour())
	})
	t.Run("day first", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"10/03/2026"`), &d))
		require.NotNil(t, d.Time)
		assert.Equal(t, time.March, d.Time.Month())
	})
	t.Run("garbage becomes absent", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"mañana"`), &d))
		assert.Nil(t, d.Time)
	})
	t.Run("null becomes absent", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`null`), &d))
		assert.Nil(t, d.Time)
	})
}

func samplePayloadJSON() []byte {
	return []byte(`{
		"kind": "Insolvencia",
		"debtor": {
			"first_names": "María Camila",
			"surnames": "Rojas Peña",
			"document_type": "CC",
			"document_number": "52.123.456",
			"marital_status": "casada",
			"has_patrimonial_partnership": true,
			"partner_name": "Julián Torres"
		},
		"venue": {"entity": "Centro de Conciliación", "city": "Bogotá"},
		"creditors": [
			{
				"name": "Banco Nacional S.A.",
				"capital": "1.000.000,00",
				"current_interest": 50000,
				"default_interest": "N/A",
				"credit_nature": "crédito hipotecario",
				"in_default": true,
				"matures_on": "2025-12-01"
			}
		],
		"financial_disclosure": {
			"monthly_income": 2500000,
			"other_income": "300000",
			"subsistence_expenses": {"alimentacion": 800000, "vivienda": "600.000,00"}
		},
		"payment_proposal": {
			"class_distribution": true,
			"term_months": 12,
			"effective_annual_rate_percent": 12,
			"payment_start_date": "2026-04-01",
			"payment_day_of_month": 5
		},
		"attachments": [{"display_name": "Cédula", "size_bytes": 120000}]
	}`)
}

func TestFilingPayloadToModel(t *testing.T) {
	var p FilingPayload
	require.NoError(t, json.Unmarshal(samplePayloadJSON(), &p))
	require.NoError(t, p.Validate())

	id := uuid.New()
	received := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	rec := p.ToModel(id, received)

	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "insolvencia", rec.Kind, "kind is normalised to lower case")
	assert.Equal(t, received, rec.CreatedAt)
	assert.Equal(t, "María Camila Rojas Peña", rec.Debtor.FullName())
	assert.True(t, rec.Debtor.HasPatrimonialPartnership)

	require.Len(t, rec.Creditors, 1)
	c := rec.Creditors[0]
	assert.Equal(t, "1000000", c.Capital.String())
	assert.Equal(t, "50000", c.CurrentInterest.String())
	assert.Equal(t, "0", c.DefaultInterest.String(), "garbage amounts collapse to zero")
	assert.True(t, c.InDefault)
	require.NotNil(t, c.MaturesOn)
	assert.Nil(t, c.OriginatedOn)

	assert.Equal(t, "2800000", rec.Disclosure.TotalMonthlyIncome().String())
	assert.Equal(t, "600000", rec.Disclosure.SubsistenceExpenses["vivienda"].String())

	require.NotNil(t, rec.Proposal)
	assert.Equal(t, 12, rec.Proposal.TermMonths)
	assert.Equal(t, "12", rec.Proposal.EffectiveAnnualRatePercent.String())
	require.NotNil(t, rec.Proposal.PaymentStartDate)

	require.Len(t, rec.Attachments, 1)
	assert.Equal(t, "Cédula", rec.Attachments[0].DisplayName)
}

func TestFilingPayloadValidate(t *testing.T) {
	t.Run("missing kind", func(t *testing.T) {
		p := FilingPayload{Debtor: DebtorPayload{FirstNames: "Ana"}}
		assert.EqualError(t, p.Validate(), "kind is required")
	})
	t.Run("unknown kind", func(t *testing.T) {
		p := FilingPayload{Kind: "tutela", Debtor: DebtorPayload{FirstNames: "Ana"}}
		assert.ErrorContains(t, p.Validate(), "unknown filing kind")
	})
	t.Run("missing debtor name", func(t *testing.T) {
		p := FilingPayload{Kind: "insolvencia"}
		assert.EqualError(t, p.Validate(), "debtor name is required")
	})
	t.Run("conciliation is accepted", func(t *testing.T) {
		p := FilingPayload{Kind: "conciliacion", Debtor: DebtorPayload{Surnames: "Rojas"}}
		assert.NoError(t, p.Validate())
	})
}
