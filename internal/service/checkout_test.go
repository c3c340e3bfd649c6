package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/catering-service/internal/domain/dto"
	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/mocks"
	"github.com/guttosm/catering-service/internal/notify"
)

func checkoutFixture(t *testing.T, cart *model.Cart) (CheckoutService, *mocks.MockCartRepositoryInterface, *mocks.MockOrderRepositoryInterface, *mocks.MockOrderPublisher, *mocks.MockEmailSender) {
	t.Helper()

	carts := new(mocks.MockCartRepositoryInterface)
	orders := new(mocks.MockOrderRepositoryInterface)
	settings := new(mocks.MockSettingsRepositoryInterface)
	publisher := new(mocks.MockOrderPublisher)
	emails := new(mocks.MockEmailSender)

	if cart != nil {
		carts.On("FindBySession", mock.Anything, cart.SessionID).Return(cart, nil)
	}
	settings.On("GetActive", mock.Anything).Return(nil, nil)

	svc := NewCheckoutService(
		carts,
		orders,
		NewEligibilityService(settings),
		notify.NewWhatsAppBuilder(notify.WhatsAppConfig{BusinessPhone: "972501234567"}),
		publisher,
		emails,
	)
	return svc, carts, orders, publisher, emails
}

func TestCheckoutService_Checkout(t *testing.T) {
	ctx := context.Background()
	item := trayItem("antipasti-tray", model.CategoryColdPlatters, 10)
	item.Price = 300

	t.Run("submits an eligible cart", func(t *testing.T) {
		cart := model.NewCart("s1")
		cart.Add(item, 2, "", nil)

		svc, carts, orders, publisher, _ := checkoutFixture(t, cart)
		carts.On("Save", mock.Anything, mock.AnythingOfType("*model.Cart")).Return(nil)
		orders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
		publisher.On("PublishOrderSubmitted", mock.AnythingOfType("*model.Order")).Return(nil)

		result, err := svc.Checkout(ctx, "s1", dto.CheckoutRequest{
			Name:  "Dana Levi",
			Phone: "0501234567",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Order.ID)
		assert.Equal(t, model.OrderStatusSubmitted, result.Order.Status)
		assert.InDelta(t, 600.0, result.Order.Total, 1e-9)
		assert.Contains(t, result.WhatsAppText, "antipasti-tray")
		assert.Contains(t, result.WhatsAppText, "Dana Levi")
		assert.True(t, strings.HasPrefix(result.WhatsAppLink, "https://wa.me/972501234567?text="))
		orders.AssertExpectations(t)
		publisher.AssertExpectations(t)

		// The cart is cleared but the session keeps its customer state.
		assert.Zero(t, cart.LineCount())
		assert.Equal(t, "Dana Levi", cart.Customer.Name)
	})

	t.Run("sends confirmation when an email is given", func(t *testing.T) {
		cart := model.NewCart("s1")
		cart.Add(item, 2, "", nil)

		svc, carts, orders, publisher, emails := checkoutFixture(t, cart)
		carts.On("Save", mock.Anything, mock.AnythingOfType("*model.Cart")).Return(nil)
		orders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
		publisher.On("PublishOrderSubmitted", mock.AnythingOfType("*model.Order")).Return(nil)
		emails.On("SendOrderConfirmation", "dana@example.com", mock.AnythingOfType("*model.Order")).Return(nil)

		_, err := svc.Checkout(ctx, "s1", dto.CheckoutRequest{
			Name:  "Dana Levi",
			Phone: "0501234567",
			Email: "dana@example.com",
		})

		require.NoError(t, err)
		emails.AssertExpectations(t)
	})

	t.Run("publisher failure does not fail the order", func(t *testing.T) {
		cart := model.NewCart("s1")
		cart.Add(item, 2, "", nil)

		svc, carts, orders, publisher, _ := checkoutFixture(t, cart)
		carts.On("Save", mock.Anything, mock.AnythingOfType("*model.Cart")).Return(nil)
		orders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
		publisher.On("PublishOrderSubmitted", mock.AnythingOfType("*model.Order")).Return(assert.AnError)

		result, err := svc.Checkout(ctx, "s1", dto.CheckoutRequest{
			Name:  "Dana Levi",
			Phone: "0501234567",
		})

		require.NoError(t, err)
		assert.NotNil(t, result.Order)
	})

	t.Run("empty cart", func(t *testing.T) {
		svc, carts, _, _, _ := checkoutFixture(t, nil)
		carts.On("FindBySession", mock.Anything, "s1").Return(nil, nil)

		_, err := svc.Checkout(ctx, "s1", dto.CheckoutRequest{Name: "Dana", Phone: "050"})

		assert.ErrorIs(t, err, ErrCartEmpty)
	})

	t.Run("below minimum", func(t *testing.T) {
		cart := model.NewCart("s1")
		cheap := item
		cheap.Price = 100
		cart.Add(cheap, 1, "", nil)

		svc, _, _, _, _ := checkoutFixture(t, cart)

		_, err := svc.Checkout(ctx, "s1", dto.CheckoutRequest{Name: "Dana", Phone: "050"})

		assert.ErrorIs(t, err, ErrBelowMinimum)
	})

	t.Run("out of service area", func(t *testing.T) {
		cart := model.NewCart("s1")
		cart.Add(item, 2, "", nil)
		cart.Customer.ApplyResolution("Far Away", 45)

		svc, _, _, _, _ := checkoutFixture(t, cart)

		_, err := svc.Checkout(ctx, "s1", dto.CheckoutRequest{Name: "Dana", Phone: "050"})

		assert.ErrorIs(t, err, ErrOutOfServiceArea)
	})
}

func TestCheckoutService_Eligibility(t *testing.T) {
	ctx := context.Background()
	item := trayItem("antipasti-tray", model.CategoryColdPlatters, 10)
	item.Price = 300

	cart := model.NewCart("s1")
	cart.Add(item, 2, "", nil)

	svc, _, _, _, _ := checkoutFixture(t, cart)

	elig, err := svc.Eligibility(ctx, "s1")

	require.NoError(t, err)
	assert.Equal(t, model.CheckoutMissingContact, elig.State)
	assert.InDelta(t, 600.0, elig.Total, 1e-9)
}
