package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/catering-service/internal/domain/model"
)

func cartWithTotal(total float64) *model.Cart {
	cart := model.NewCart("session-1")
	cart.Lines = []model.CartLine{{
		ID: "line-1", ItemID: "item-1",
		Price: total, Quantity: 1,
	}}
	return cart
}

func TestEvaluateEligibility(t *testing.T) {
	settings := model.DefaultOrderSettings() // min 500, free delivery 1500, radius 30

	t.Run("empty cart", func(t *testing.T) {
		elig := EvaluateEligibility(model.NewCart("s"), settings)

		assert.Equal(t, model.CheckoutEmpty, elig.State)
		assert.False(t, elig.CheckoutEnabled)
		assert.Zero(t, elig.DeliveryProgressPct)
	})

	t.Run("nil cart behaves like empty", func(t *testing.T) {
		elig := EvaluateEligibility(nil, settings)

		assert.Equal(t, model.CheckoutEmpty, elig.State)
		assert.False(t, elig.CheckoutEnabled)
	})

	t.Run("one under the minimum reports shortfall", func(t *testing.T) {
		elig := EvaluateEligibility(cartWithTotal(499), settings)

		assert.Equal(t, model.CheckoutBelowMinimum, elig.State)
		assert.False(t, elig.CheckoutEnabled)
		assert.InDelta(t, 1.0, elig.Shortfall, 1e-9)
	})

	t.Run("exactly the minimum passes the value gate", func(t *testing.T) {
		elig := EvaluateEligibility(cartWithTotal(500), settings)

		assert.Equal(t, model.CheckoutMissingContact, elig.State)
		assert.False(t, elig.CheckoutEnabled)
		assert.Zero(t, elig.Shortfall)
	})

	t.Run("contact completes eligibility", func(t *testing.T) {
		cart := cartWithTotal(500)
		cart.Customer.Name = "Dana Levi"
		cart.Customer.Phone = "0501234567"

		elig := EvaluateEligibility(cart, settings)

		assert.Equal(t, model.CheckoutEligible, elig.State)
		assert.True(t, elig.CheckoutEnabled)
	})

	t.Run("free delivery progress below threshold", func(t *testing.T) {
		elig := EvaluateEligibility(cartWithTotal(750), settings)

		assert.False(t, elig.FreeDelivery)
		assert.InDelta(t, 50.0, elig.DeliveryProgressPct, 1e-9)
		assert.InDelta(t, 750.0, elig.FreeDeliveryRemaining, 1e-9)
	})

	t.Run("free delivery at threshold", func(t *testing.T) {
		elig := EvaluateEligibility(cartWithTotal(1500), settings)

		assert.True(t, elig.FreeDelivery)
		assert.InDelta(t, 100.0, elig.DeliveryProgressPct, 1e-9)
		assert.Zero(t, elig.FreeDeliveryRemaining)
	})

	t.Run("unknown distance is neutral", func(t *testing.T) {
		cart := cartWithTotal(2000)
		cart.Customer.Name = "Dana Levi"
		cart.Customer.Phone = "0501234567"

		elig := EvaluateEligibility(cart, settings)

		assert.False(t, elig.DistanceKnown)
		assert.False(t, elig.OutOfServiceArea)
		assert.True(t, elig.CheckoutEnabled)
	})

	t.Run("distance beyond radius disables checkout", func(t *testing.T) {
		cart := cartWithTotal(2000)
		cart.Customer.Name = "Dana Levi"
		cart.Customer.Phone = "0501234567"
		cart.Customer.ApplyResolution("Far Away", 45)

		elig := EvaluateEligibility(cart, settings)

		assert.True(t, elig.DistanceKnown)
		assert.True(t, elig.OutOfServiceArea)
		assert.False(t, elig.CheckoutEnabled)
		assert.Equal(t, model.CheckoutEligible, elig.State)
	})

	t.Run("distance at radius boundary is allowed", func(t *testing.T) {
		cart := cartWithTotal(2000)
		cart.Customer.Name = "Dana Levi"
		cart.Customer.Phone = "0501234567"
		cart.Customer.ApplyResolution("Edge Town", 30)

		elig := EvaluateEligibility(cart, settings)

		assert.True(t, elig.DistanceKnown)
		assert.False(t, elig.OutOfServiceArea)
		assert.True(t, elig.CheckoutEnabled)
	})

	t.Run("manual distance counts as known", func(t *testing.T) {
		cart := cartWithTotal(2000)
		cart.Customer.Name = "Dana Levi"
		cart.Customer.Phone = "0501234567"
		assert.True(t, cart.Customer.SetManualDistance(35))

		elig := EvaluateEligibility(cart, settings)

		assert.True(t, elig.DistanceKnown)
		assert.True(t, elig.OutOfServiceArea)
		assert.False(t, elig.CheckoutEnabled)
	})
}
