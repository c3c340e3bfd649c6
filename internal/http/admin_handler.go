package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/catering-service/internal/domain/dto"
	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/i18n"
	"github.com/guttosm/catering-service/internal/middleware"
	"github.com/guttosm/catering-service/internal/service"
)

// AdminHandler provides the authenticated back-office endpoints: catalog
// management, ratio and threshold configuration, orders, and request logs.
type AdminHandler struct {
	auth    service.AuthService
	menu    service.MenuService
	config  service.ConfigurationService
	orders  service.OrderBrowser
	logging service.LoggingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	auth service.AuthService,
	menu service.MenuService,
	config service.ConfigurationService,
	orders service.OrderBrowser,
	logging service.LoggingService,
) *AdminHandler {
	return &AdminHandler{
		auth:    auth,
		menu:    menu,
		config:  config,
		orders:  orders,
		logging: logging,
	}
}

// adminEmail returns the authenticated admin's email for audit stamping.
func adminEmail(c *gin.Context) string {
	if email, exists := c.Get("user_email"); exists {
		if s, ok := email.(string); ok {
			return s
		}
	}
	return ""
}

// Login handles POST /api/admin/login requests.
//
// @Summary      Admin login
// @Description  Exchanges admin credentials for a short-lived bearer token.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Admin credentials"
// @Success      200 {object} dto.SuccessResponse "Access token"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.LoginRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.AuditLogError(h.logging, c, "admin_login", "Login failed", err, map[string]interface{}{
				"email": req.Email,
			})
			builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	middleware.AuditLog(h.logging, c, "admin_login", "Admin logged in", map[string]interface{}{
		"email": req.Email,
	})
	builder.SuccessOK(token)
}

// ListMenuItems handles GET /api/admin/menu requests.
//
// @Summary      List the full catalog
// @Description  Returns all menu items including unavailable ones.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.SuccessResponse "All menu items"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/admin/menu [get]
func (h *AdminHandler) ListMenuItems(c *gin.Context) {
	builder := NewResponseBuilder(c)

	items, err := h.menu.ListAll(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(items)
}

// UpsertMenuItem handles PUT /api/admin/menu requests.
//
// @Summary      Create or replace a menu item
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpsertMenuItemRequest true "Menu item"
// @Success      200 {object} dto.SuccessResponse "Stored menu item"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/admin/menu [put]
func (h *AdminHandler) UpsertMenuItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpsertMenuItemRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.menu.Upsert(c.Request.Context(), &req.Item); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	middleware.AuditLog(h.logging, c, "menu_upsert", "Menu item stored", map[string]interface{}{
		"item_id": req.Item.ID,
		"admin":   adminEmail(c),
	})
	builder.SuccessOK(req.Item)
}

// DeleteMenuItem handles DELETE /api/admin/menu/:id requests.
//
// @Summary      Delete a menu item
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Menu item id"
// @Success      200 {object} dto.SuccessResponse "Deletion acknowledged"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Unknown menu item"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/admin/menu/{id} [delete]
func (h *AdminHandler) DeleteMenuItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	itemID := c.Param("id")

	if err := h.menu.Delete(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyItemNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	middleware.AuditLog(h.logging, c, "menu_delete", "Menu item deleted", map[string]interface{}{
		"item_id": itemID,
		"admin":   adminEmail(c),
	})
	builder.SuccessOK(gin.H{"deleted": itemID})
}

// GetRatios handles GET /api/admin/ratios requests.
//
// @Summary      Get the ratio table
// @Description  Returns the per-event per-category ratios and hunger multipliers driving quantity suggestions.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.SuccessResponse "Ratio table"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/admin/ratios [get]
func (h *AdminHandler) GetRatios(c *gin.Context) {
	builder := NewResponseBuilder(c)

	table, err := h.config.Ratios(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(table)
}

// UpdateEventRatios handles PUT /api/admin/ratios/:event requests.
//
// @Summary      Replace one event type's ratios
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        event path string true "Event type" Enums(brunch, lunch, dinner, cocktail)
// @Param        request body dto.UpdateRatiosRequest true "Category ratios"
// @Success      200 {object} dto.SuccessResponse "Updated ratio table"
// @Failure      400 {object} dto.ErrorResponse "Unknown event type or invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/admin/ratios/{event} [put]
func (h *AdminHandler) UpdateEventRatios(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpdateRatiosRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	event := model.EventType(c.Param("event"))
	table, err := h.config.UpdateEventRatios(c.Request.Context(), event, req.Ratios, adminEmail(c))
	if err != nil {
		if errors.Is(err, service.ErrUnknownEventType) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownEventType, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	middleware.AuditLog(h.logging, c, "ratios_update", "Event ratios updated", map[string]interface{}{
		"event": string(event),
		"admin": adminEmail(c),
	})
	builder.SuccessOK(table)
}

// UpdateHunger handles PUT /api/admin/ratios/hunger requests.
//
// @Summary      Replace the hunger multipliers
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateHungerRequest true "Hunger multipliers"
// @Success      200 {object} dto.SuccessResponse "Updated ratio table"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/admin/ratios/hunger [put]
func (h *AdminHandler) UpdateHunger(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpdateHungerRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	table, err := h.config.UpdateHunger(c.Request.Context(), req.Hunger, adminEmail(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	middleware.AuditLog(h.logging, c, "hunger_update", "Hunger multipliers updated", map[string]interface{}{
		"admin": adminEmail(c),
	})
	builder.SuccessOK(table)
}

// GetSettings handles GET /api/admin/settings requests.
//
// @Summary      Get the ordering thresholds
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.SuccessResponse "Order settings"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/admin/settings [get]
func (h *AdminHandler) GetSettings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	settings, err := h.config.Settings(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(settings)
}

// UpdateSettings handles PUT /api/admin/settings requests.
//
// @Summary      Replace the ordering thresholds
// @Description  Sets the minimum order amount, free delivery threshold, service radius, and default tray capacity.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateSettingsRequest true "Ordering thresholds"
// @Success      200 {object} dto.SuccessResponse "Updated settings"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/admin/settings [put]
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateSettingsRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	settings, err := h.config.UpdateSettings(c.Request.Context(), model.OrderSettings{
		MinOrderAmount:        req.MinOrderAmount,
		FreeDeliveryThreshold: req.FreeDeliveryThreshold,
		ServiceRadiusKm:       req.ServiceRadiusKm,
		DefaultTrayCapacity:   req.DefaultTrayCapacity,
	}, adminEmail(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	middleware.AuditLog(h.logging, c, "settings_update", "Order settings updated", map[string]interface{}{
		"admin": adminEmail(c),
	})
	builder.SuccessOK(settings)
}

// ListOrders handles GET /api/admin/orders requests.
//
// @Summary      List submitted orders
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum orders to return" default(50)
// @Param        skip query int false "Orders to skip" default(0)
// @Success      200 {object} dto.SuccessResponse "Orders, newest first"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))

	orders, err := h.orders.ListOrders(c.Request.Context(), limit, skip)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(orders)
}

// GetOrder handles GET /api/admin/orders/:id requests.
//
// @Summary      Get one order
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Order id"
// @Success      200 {object} dto.SuccessResponse "Order"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/admin/orders/{id} [get]
func (h *AdminHandler) GetOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(order)
}

// QueryLogs handles GET /api/admin/logs requests.
//
// @Summary      Query request logs
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        request_id query string false "Filter by request id"
// @Param        session query string false "Filter by ordering session id"
// @Param        level query string false "Filter by log level"
// @Param        method query string false "Filter by HTTP method"
// @Param        path query string false "Filter by request path prefix"
// @Param        start query string false "RFC 3339 lower time bound"
// @Param        end query string false "RFC 3339 upper time bound"
// @Param        limit query int false "Maximum entries to return" default(100)
// @Param        skip query int false "Entries to skip" default(0)
// @Success      200 {object} dto.SuccessResponse "Matching log entries with total count"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/admin/logs [get]
func (h *AdminHandler) QueryLogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))

	opts := model.LogQueryOptions{
		RequestID: c.Query("request_id"),
		SessionID: c.Query("session"),
		Level:     c.Query("level"),
		Method:    c.Query("method"),
		Path:      c.Query("path"),
		Limit:     limit,
		Skip:      skip,
	}
	if start := c.Query("start"); start != "" {
		if t, err := time.Parse(time.RFC3339, start); err == nil {
			opts.StartTime = &t
		}
	}
	if end := c.Query("end"); end != "" {
		if t, err := time.Parse(time.RFC3339, end); err == nil {
			opts.EndTime = &t
		}
	}

	entries, err := h.logging.QueryLogs(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	total, err := h.logging.CountLogs(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(gin.H{"entries": entries, "total": total})
}
