package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"class-booking-backend/internal/models"
	"class-booking-backend/internal/supabase"
)

// AdminOrdersHandler serves the admin order list and mutations. Every route
// here sits behind the admin auth middleware.
type AdminOrdersHandler struct {
	store OrderStore
}

func NewAdminOrdersHandler(store OrderStore) *AdminOrdersHandler {
	return &AdminOrdersHandler{store: store}
}

// ListOrders godoc
// @Summary     List orders
// @Description Returns orders newest-first with a summary, optionally filtered by status and/or schedule label.
// @Tags        admin
// @Produce     json
// @Param       status query string false "Filter by status (pending|confirmed|cancelled)"
// @Param       schedule query string false "Filter by schedule label"
// @Success     200 {object} models.OrderListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/orders [get]
func (h *AdminOrdersHandler) ListOrders(c *gin.Context) {
	status := c.Query("status")
	schedule := c.Query("schedule")

	orders, err := h.store.ListOrders(status, schedule)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch orders"})
		logStoreError("list orders", err)
		return
	}

	c.JSON(http.StatusOK, models.OrderListResponse{
		Orders:  orders,
		Summary: summarize(orders),
	})
}

// summarize aggregates the fetched orders. Cancelled orders stay visible in
// statusCounts but are excluded from the total and the per-schedule counts,
// which track seats still held. Orders whose label no longer exists in the
// config still count here.
func summarize(orders []models.Order) models.OrderSummary {
	summary := models.OrderSummary{
		StatusCounts:   make(map[string]int),
		ScheduleCounts: make(map[string]int),
	}

	for _, order := range orders {
		summary.StatusCounts[order.Status]++
		if order.Status == models.StatusCancelled {
			continue
		}
		summary.Total++

		label := order.Schedule
		if label == "" {
			label = "unspecified"
		}
		summary.ScheduleCounts[label] += order.PeopleCount
	}

	return summary
}

// UpdateStatus godoc
// @Summary     Update order status
// @Description Sets an order's status to one of pending, confirmed, or cancelled.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       id path string true "Order ID (UUID)"
// @Param       request body models.UpdateOrderStatusRequest true "New status"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/orders/{id} [patch]
func (h *AdminOrdersHandler) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status"})
		return
	}

	order, err := h.store.UpdateOrderStatus(orderID, req.Status)
	if errors.Is(err, supabase.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update order"})
		logStoreError("update order status", err)
		return
	}

	c.JSON(http.StatusOK, models.OrderResponse{Order: order})
}

// DeleteOrder godoc
// @Summary     Delete an order
// @Tags        admin
// @Produce     json
// @Param       id path string true "Order ID (UUID)"
// @Success     200 {object} map[string]string "message"
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/orders/{id} [delete]
func (h *AdminOrdersHandler) DeleteOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
		return
	}

	err = h.store.DeleteOrder(orderID)
	if errors.Is(err, supabase.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete order"})
		logStoreError("delete order", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}
