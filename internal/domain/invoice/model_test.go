package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/types"
)

func validInvoice() *Invoice {
	return &Invoice{
		ID:       id.New(),
		ClientID: id.New(),
		AgencyID: id.New(),
		AmountHT: types.MustMoney("100"),
		TVARate:  types.MustMoney("20"),
		Status:   StatusPending,
		DueDate:  time.Now().AddDate(0, 0, 30),
	}
}

func TestAmountTTC(t *testing.T) {
	tests := []struct {
		name     string
		amountHT string
		tvaRate  string
		want     string
	}{
		{"standard rate", "100", "20", "120"},
		{"zero rate", "100", "0", "100"},
		{"fractional amount", "99.99", "20", "119.988"},
		{"reduced rate", "250", "7", "267.5"},
		{"zero amount", "0", "20", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := validInvoice()
			inv.AmountHT = types.MustMoney(tt.amountHT)
			inv.TVARate = types.MustMoney(tt.tvaRate)
			assert.True(t, inv.AmountTTC().Equal(types.MustMoney(tt.want)),
				"got %s", inv.AmountTTC())
		})
	}
}

func TestAmountTTC_Deterministic(t *testing.T) {
	inv := validInvoice()
	first := inv.AmountTTC()
	for i := 0; i < 10; i++ {
		assert.True(t, first.Equal(inv.AmountTTC()))
	}
}

func TestDaysOverdue(t *testing.T) {
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	inv := validInvoice()
	inv.DueDate = due

	assert.Equal(t, 0, inv.DaysOverdue(due.AddDate(0, 0, -5)), "not yet due")
	assert.Equal(t, 0, inv.DaysOverdue(due))
	assert.Equal(t, 7, inv.DaysOverdue(due.AddDate(0, 0, 7)))
}

func TestValidate(t *testing.T) {
	require.NoError(t, validInvoice().Validate(context.Background()))

	tests := []struct {
		name   string
		mutate func(*Invoice)
	}{
		{"missing client", func(i *Invoice) { i.ClientID = id.Nil() }},
		{"negative amount", func(i *Invoice) { i.AmountHT = types.MustMoney("-1") }},
		{"negative tva", func(i *Invoice) { i.TVARate = types.MustMoney("-5") }},
		{"unknown status", func(i *Invoice) { i.Status = Status("draft") }},
		{"missing due date", func(i *Invoice) { i.DueDate = time.Time{} }},
		{"missing agency", func(i *Invoice) { i.AgencyID = id.Nil() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := validInvoice()
			tt.mutate(inv)
			err := inv.Validate(context.Background())
			assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
		})
	}
}
