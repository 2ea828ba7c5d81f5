package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"class-booking-backend/internal/booking"
	"class-booking-backend/internal/models"
	"class-booking-backend/internal/notify"
	"class-booking-backend/internal/services"
)

const capacityExceededMessage = "선택하신 일정의 정원이 마감되었습니다. 다른 일정을 선택해주세요."

// OrdersHandler serves the public order submission endpoint.
type OrdersHandler struct {
	store     OrderStore
	configSvc *services.FormConfigService
	validator *booking.Validator
	notifier  *notify.Notifier
}

func NewOrdersHandler(store OrderStore, configSvc *services.FormConfigService, validator *booking.Validator, notifier *notify.Notifier) *OrdersHandler {
	return &OrdersHandler{
		store:     store,
		configSvc: configSvc,
		validator: validator,
		notifier:  notifier,
	}
}

// CreateOrder godoc
// @Summary     Submit an order
// @Description Creates a booking for a schedule slot after a capacity check. Fires SMS/webhook/email notifications without blocking the response.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       request body models.CreateOrderRequest true "Order fields"
// @Success     201 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [post]
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Schedule = strings.TrimSpace(req.Schedule)

	if req.Name == "" || req.Phone == "" || req.Schedule == "" || !req.Agreed {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing required fields"})
		return
	}
	if req.PeopleCount < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid people count"})
		return
	}
	if req.PeopleCount == 0 {
		req.PeopleCount = 1
	}
	if req.TotalAmount < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid total amount"})
		return
	}
	if req.ProductType == "" {
		req.ProductType = models.ProductTree
	}
	if !models.ValidProductType(req.ProductType) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid product type"})
		return
	}

	formConfig := h.configSvc.Get()

	err := h.validator.Validate(formConfig.Schedules, req.Schedule, req.PeopleCount)
	if errors.Is(err, booking.ErrCapacityExceeded) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "capacity exceeded",
			Message: capacityExceededMessage,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to submit order"})
		logStoreError("capacity check", err)
		return
	}

	order, err := h.store.CreateOrder(&models.Order{
		Name:        req.Name,
		Phone:       req.Phone,
		Schedule:    req.Schedule,
		Agreed:      req.Agreed,
		PeopleCount: req.PeopleCount,
		TotalAmount: req.TotalAmount,
		ProductType: req.ProductType,
		Status:      models.StatusPending,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to submit order"})
		logStoreError("create order", err)
		return
	}

	// Fire notifications without blocking the response.
	if h.notifier != nil {
		go h.notifier.OrderCreated(order, notify.EmailSettings{
			Enabled:    formConfig.NotifyEmailEnabled,
			AdminEmail: formConfig.AdminEmail,
		})
	}

	c.JSON(http.StatusCreated, models.OrderResponse{Order: order})
}
