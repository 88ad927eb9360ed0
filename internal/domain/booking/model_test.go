package booking

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

func validBooking() *Booking {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return &Booking{
		ID:         id.New(),
		Ref:        "BK-000001",
		ClientID:   id.New(),
		SupplierID: id.New(),
		Type:       TypeFlight,
		Cost:       types.MustMoney("4500"),
		SellPrice:  types.MustMoney("5200"),
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 7),
		AgencyID:   id.New(),
	}
}

func TestProfit(t *testing.T) {
	b := validBooking()
	assert.True(t, b.Profit().Equal(types.MustMoney("700")))

	b.SellPrice = types.MustMoney("4000")
	assert.True(t, b.Profit().Equal(types.MustMoney("-500")), "selling below cost is allowed")
}

func TestBookingValidate(t *testing.T) {
	require.NoError(t, validBooking().Validate(context.Background()))

	t.Run("inverted dates", func(t *testing.T) {
		b := validBooking()
		b.EndDate = b.StartDate.AddDate(0, 0, -1)
		err := b.Validate(context.Background())
		assert.True(t, apperror.IsCode(err, apperror.CodeInvalidRange))
	})

	t.Run("unknown type", func(t *testing.T) {
		b := validBooking()
		b.Type = Type("cruise")
		err := b.Validate(context.Background())
		assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
	})

	t.Run("negative cost", func(t *testing.T) {
		b := validBooking()
		b.Cost = types.MustMoney("-1")
		err := b.Validate(context.Background())
		assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
	})
}
