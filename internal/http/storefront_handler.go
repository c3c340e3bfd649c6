package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/catering-service/internal/domain/dto"
	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/i18n"
	"github.com/guttosm/catering-service/internal/middleware"
	"github.com/guttosm/catering-service/internal/service"
)

// StorefrontHandler provides the anonymous storefront endpoints: catalog,
// quantity suggestions, cart, delivery state, and checkout.
type StorefrontHandler struct {
	menu      service.MenuService
	suggester service.QuantitySuggester
	carts     service.CartService
	delivery  service.DeliveryService
	checkout  service.CheckoutService
}

// NewStorefrontHandler creates a new StorefrontHandler.
func NewStorefrontHandler(
	menu service.MenuService,
	suggester service.QuantitySuggester,
	carts service.CartService,
	delivery service.DeliveryService,
	checkout service.CheckoutService,
) *StorefrontHandler {
	return &StorefrontHandler{
		menu:      menu,
		suggester: suggester,
		carts:     carts,
		delivery:  delivery,
		checkout:  checkout,
	}
}

// respondServiceError maps the typed service errors onto HTTP statuses
// and translated messages.
func respondServiceError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyItemNotFound, err)
	case errors.Is(err, service.ErrItemUnavailable):
		builder.Error(http.StatusConflict, i18n.ErrKeyItemUnavailable, err)
	case errors.Is(err, service.ErrLineNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyLineNotFound, err)
	case errors.Is(err, service.ErrDistanceLocked):
		builder.Error(http.StatusConflict, i18n.ErrKeyDistanceLocked, err)
	case errors.Is(err, service.ErrCartEmpty):
		builder.Error(http.StatusConflict, i18n.ErrKeyCartEmpty, err)
	case errors.Is(err, service.ErrBelowMinimum):
		builder.Error(http.StatusConflict, i18n.ErrKeyBelowMinimum, err)
	case errors.Is(err, service.ErrMissingContact):
		builder.Error(http.StatusConflict, i18n.ErrKeyMissingContact, err)
	case errors.Is(err, service.ErrOutOfServiceArea):
		builder.Error(http.StatusConflict, i18n.MsgKeyOutOfServiceArea, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// cartResponse converts a cart into its API snapshot.
func (h *StorefrontHandler) cartResponse(cart *model.Cart) dto.CartResponse {
	return dto.CartResponse{
		SessionID: cart.SessionID,
		Lines:     cart.Lines,
		LineCount: cart.LineCount(),
		Total:     cart.Total(),
	}
}

// deliveryResponse converts the delivery state into its API snapshot.
func (h *StorefrontHandler) deliveryResponse(cart *model.Cart) dto.DeliveryStateResponse {
	return dto.DeliveryStateResponse{
		AddressText:      cart.Customer.AddressText,
		ResolvedName:     cart.Customer.ResolvedName,
		DistanceKm:       cart.Customer.DistanceKm,
		DistanceResolved: cart.Customer.DistanceResolved,
		DistanceLocked:   cart.Customer.DistanceLocked,
		Resolving:        h.delivery.Resolving(cart.SessionID),
	}
}

// ListMenu handles GET /api/menu requests.
//
// @Summary      List the storefront menu
// @Description  Returns all currently available menu items grouped by their category field.
// @Tags         Menu
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Available menu items"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/menu [get]
func (h *StorefrontHandler) ListMenu(c *gin.Context) {
	builder := NewResponseBuilder(c)

	items, err := h.menu.ListAvailable(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(items)
}

// SuggestQuantity handles POST /api/suggest requests.
//
// @Summary      Suggest a quantity for one item
// @Description  Computes a pre-fill quantity from the guest composition, event type and hunger level. When a session query parameter is given, the suggestion is reduced by what the cart already holds for the same item.
// @Tags         Suggestions
// @Accept       json
// @Produce      json
// @Param        session query string false "Ordering session id for cart-aware suggestions"
// @Param        request body dto.SuggestQuantityRequest true "Event configuration and item"
// @Success      200 {object} dto.SuccessResponse "Suggested quantity"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Unknown menu item"
// @Failure      409 {object} dto.ErrorResponse "Item unavailable"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/suggest [post]
func (h *StorefrontHandler) SuggestQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.SuggestQuantityRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	carted := 0
	if sessionID := c.Query("session"); sessionID != "" {
		if cart, err := h.carts.Get(c.Request.Context(), sessionID); err == nil {
			carted = cart.QuantityOf(req.ItemID)
		}
	}

	qty, err := h.suggester.Suggest(c.Request.Context(), req.EventConfig(), req.ItemID, carted)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(dto.SuggestionResponse{ItemID: req.ItemID, Quantity: qty})
}

// GetCart handles GET /api/cart/:session requests.
//
// @Summary      Get the session cart
// @Tags         Cart
// @Produce      json
// @Param        session path string true "Ordering session id"
// @Success      200 {object} dto.SuccessResponse "Cart snapshot"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/{session} [get]
func (h *StorefrontHandler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cart, err := h.carts.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(h.cartResponse(cart))
}

// AddToCart handles POST /api/cart/:session/items requests.
//
// @Summary      Add an item to the cart
// @Description  Adds a menu item. Additions with the same item, notes and customization set merge into one line; any difference opens a new line.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        session path string true "Ordering session id"
// @Param        request body dto.AddToCartRequest true "Item to add"
// @Success      200 {object} dto.SuccessResponse "Updated cart snapshot"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Unknown menu item"
// @Failure      409 {object} dto.ErrorResponse "Item unavailable"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/{session}/items [post]
func (h *StorefrontHandler) AddToCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AddToCartRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	sessionID := middleware.GetSessionID(c)
	cart, err := h.carts.AddItem(c.Request.Context(), sessionID, req.ItemID, req.Quantity, req.Notes, req.Customizations)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "add_to_cart", "Item added to cart", map[string]interface{}{
				"item_id":  req.ItemID,
				"quantity": req.Quantity,
			})
		}
	}

	builder.SuccessOK(h.cartResponse(cart))
}

// UpdateCartLine handles PUT /api/cart/:session/items/:line requests.
//
// @Summary      Set a cart line's quantity
// @Description  Sets the line to the exact quantity given. Zero or a negative value removes the line.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        session path string true "Ordering session id"
// @Param        line path string true "Cart line id"
// @Param        request body dto.UpdateQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse "Updated cart snapshot"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Unknown cart line"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/{session}/items/{line} [put]
func (h *StorefrontHandler) UpdateCartLine(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpdateQuantityRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	cart, err := h.carts.UpdateLineQuantity(c.Request.Context(), middleware.GetSessionID(c), c.Param("line"), req.Quantity)
	if err != nil {
		respondServiceError(builder, err)
		return
	}
	builder.SuccessOK(h.cartResponse(cart))
}

// RemoveCartLine handles DELETE /api/cart/:session/items/:line requests.
//
// @Summary      Remove a cart line
// @Tags         Cart
// @Produce      json
// @Param        session path string true "Ordering session id"
// @Param        line path string true "Cart line id"
// @Success      200 {object} dto.SuccessResponse "Updated cart snapshot"
// @Failure      404 {object} dto.ErrorResponse "Unknown cart line"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/{session}/items/{line} [delete]
func (h *StorefrontHandler) RemoveCartLine(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cart, err := h.carts.RemoveLine(c.Request.Context(), middleware.GetSessionID(c), c.Param("line"))
	if err != nil {
		respondServiceError(builder, err)
		return
	}
	builder.SuccessOK(h.cartResponse(cart))
}

// ClearCart handles DELETE /api/cart/:session requests.
//
// @Summary      Empty the cart
// @Description  Removes all lines but keeps the customer and delivery state.
// @Tags         Cart
// @Produce      json
// @Param        session path string true "Ordering session id"
// @Success      200 {object} dto.SuccessResponse "Emptied cart snapshot"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/{session} [delete]
func (h *StorefrontHandler) ClearCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cart, err := h.carts.Clear(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(h.cartResponse(cart))
}

// SubmitAddress handles PUT /api/cart/:session/address requests.
//
// @Summary      Submit delivery address text
// @Description  Records the address and schedules a debounced distance resolution. Rapid re-submissions restart the debounce; only the latest text is resolved.
// @Tags         Delivery
// @Accept       json
// @Produce      json
// @Param        session path string true "Ordering session id"
// @Param        request body dto.LocationRequest true "Free-text address"
// @Success      202 {object} dto.SuccessResponse "Delivery state with resolution pending"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/{session}/address [put]
func (h *StorefrontHandler) SubmitAddress(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.LocationRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	cart, err := h.delivery.SubmitAddress(c.Request.Context(), middleware.GetSessionID(c), req.Address)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.Success(http.StatusAccepted, h.deliveryResponse(cart))
}

// SetManualDistance handles PUT /api/cart/:session/distance requests.
//
// @Summary      Set the delivery distance manually
// @Description  Records a hand-entered distance. Rejected while a resolver result locks the field; editing the address text unlocks it.
// @Tags         Delivery
// @Accept       json
// @Produce      json
// @Param        session path string true "Ordering session id"
// @Param        request body dto.ManualDistanceRequest true "Distance in km"
// @Success      200 {object} dto.SuccessResponse "Updated delivery state"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Distance locked by a resolution"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/{session}/distance [put]
func (h *StorefrontHandler) SetManualDistance(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ManualDistanceRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	cart, err := h.delivery.SetManualDistance(c.Request.Context(), middleware.GetSessionID(c), req.DistanceKm)
	if err != nil {
		respondServiceError(builder, err)
		return
	}
	builder.SuccessOK(h.deliveryResponse(cart))
}

// GetDeliveryState handles GET /api/cart/:session/delivery requests.
//
// @Summary      Get the delivery state
// @Description  Returns the address, resolution and lock state. The storefront polls this while a resolution is pending.
// @Tags         Delivery
// @Produce      json
// @Param        session path string true "Ordering session id"
// @Success      200 {object} dto.SuccessResponse "Delivery state"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/{session}/delivery [get]
func (h *StorefrontHandler) GetDeliveryState(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cart, err := h.carts.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(h.deliveryResponse(cart))
}

// GetEligibility handles GET /api/cart/:session/eligibility requests.
//
// @Summary      Evaluate checkout eligibility
// @Description  Recomputes the derived checkout state: minimum order shortfall, free delivery progress, and service radius gating.
// @Tags         Checkout
// @Produce      json
// @Param        session path string true "Ordering session id"
// @Success      200 {object} dto.SuccessResponse "Eligibility evaluation"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/{session}/eligibility [get]
func (h *StorefrontHandler) GetEligibility(c *gin.Context) {
	builder := NewResponseBuilder(c)

	elig, err := h.checkout.Eligibility(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(elig)
}

// Checkout handles POST /api/cart/:session/checkout requests.
//
// @Summary      Submit the cart as an order
// @Description  Validates eligibility with the supplied contact details, persists the order, and returns the prefilled WhatsApp handoff message.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        session path string true "Ordering session id"
// @Param        request body dto.CheckoutRequest true "Contact details and event summary"
// @Success      201 {object} dto.SuccessResponse "Submitted order"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Cart not eligible for checkout"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/{session}/checkout [post]
func (h *StorefrontHandler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CheckoutRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	sessionID := middleware.GetSessionID(c)
	result, err := h.checkout.Checkout(c.Request.Context(), sessionID, *req)
	if err != nil {
		if loggingService, exists := c.Get("logging_service"); exists {
			if ls, ok := loggingService.(service.LoggingService); ok {
				middleware.AuditLogError(ls, c, "checkout", "Checkout rejected", err, nil)
			}
		}
		respondServiceError(builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "checkout", "Order submitted", map[string]interface{}{
				"order_id": result.Order.ID,
				"total":    result.Order.Total,
			})
		}
	}

	builder.SuccessCreated(dto.CheckoutResponse{
		OrderID:      result.Order.ID,
		Total:        result.Order.Total,
		WhatsAppText: result.WhatsAppText,
		WhatsAppLink: result.WhatsAppLink,
		Eligibility:  result.Eligibility,
	})
}
