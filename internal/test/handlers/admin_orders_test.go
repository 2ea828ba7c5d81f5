package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"class-booking-backend/internal/config"
	"class-booking-backend/internal/handlers"
	"class-booking-backend/internal/middleware"
	"class-booking-backend/internal/models"
)

const testAdminPassword = "test-admin-password"

func newAdminRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{AdminPassword: testAdminPassword}
	handler := handlers.NewAdminOrdersHandler(store)

	router := gin.New()
	admin := router.Group("/admin", middleware.AdminAuth(cfg))
	admin.GET("/orders", handler.ListOrders)
	admin.PATCH("/orders/:id", handler.UpdateStatus)
	admin.DELETE("/orders/:id", handler.DeleteOrder)
	return router
}

func adminRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonData)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{
		Name:  middleware.AdminCookieName,
		Value: middleware.AdminToken(testAdminPassword),
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdminOrders_Unauthorized(t *testing.T) {
	router := newAdminRouter(&fakeStore{})

	paths := []struct{ method, path string }{
		{"GET", "/admin/orders"},
		{"PATCH", "/admin/orders/" + uuid.NewString()},
		{"DELETE", "/admin/orders/" + uuid.NewString()},
	}
	for _, p := range paths {
		req, _ := http.NewRequest(p.method, p.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}
}

func TestAdminOrders_WrongCookieRejected(t *testing.T) {
	router := newAdminRouter(&fakeStore{})

	req, _ := http.NewRequest("GET", "/admin/orders", nil)
	req.AddCookie(&http.Cookie{
		Name:  middleware.AdminCookieName,
		Value: middleware.AdminToken("some-other-password"),
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListOrders_SummaryAndFilters(t *testing.T) {
	store := &fakeStore{orders: []models.Order{
		{ID: uuid.New(), Schedule: "A", PeopleCount: 2, Status: models.StatusConfirmed},
		{ID: uuid.New(), Schedule: "A", PeopleCount: 1, Status: models.StatusPending},
		{ID: uuid.New(), Schedule: "B", PeopleCount: 3, Status: models.StatusCancelled},
	}}
	router := newAdminRouter(store)

	w := adminRequest(t, router, "GET", "/admin/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.OrderListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Orders, 3)
	assert.Equal(t, 2, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.StatusCounts[models.StatusConfirmed])
	assert.Equal(t, 1, resp.Summary.StatusCounts[models.StatusPending])
	assert.Equal(t, 1, resp.Summary.StatusCounts[models.StatusCancelled])
	assert.Equal(t, 3, resp.Summary.ScheduleCounts["A"])
	assert.Zero(t, resp.Summary.ScheduleCounts["B"])

	w = adminRequest(t, router, "GET", "/admin/orders?status=pending", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Orders, 1)

	w = adminRequest(t, router, "GET", "/admin/orders?schedule=B", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Orders, 1)
}

func TestUpdateStatus(t *testing.T) {
	orderID := uuid.New()
	store := &fakeStore{orders: []models.Order{
		{ID: orderID, Schedule: "A", Status: models.StatusPending},
	}}
	router := newAdminRouter(store)

	w := adminRequest(t, router, "PATCH", "/admin/orders/"+orderID.String(),
		models.UpdateOrderStatusRequest{Status: models.StatusConfirmed})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusConfirmed, resp.Order.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	orderID := uuid.New()
	store := &fakeStore{orders: []models.Order{
		{ID: orderID, Schedule: "A", Status: models.StatusPending},
	}}
	router := newAdminRouter(store)

	w := adminRequest(t, router, "PATCH", "/admin/orders/"+orderID.String(),
		models.UpdateOrderStatusRequest{Status: "shipped"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.StatusPending, store.orders[0].Status)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	router := newAdminRouter(&fakeStore{})

	w := adminRequest(t, router, "PATCH", "/admin/orders/"+uuid.NewString(),
		models.UpdateOrderStatusRequest{Status: models.StatusConfirmed})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteOrder(t *testing.T) {
	orderID := uuid.New()
	store := &fakeStore{orders: []models.Order{{ID: orderID, Schedule: "A"}}}
	router := newAdminRouter(store)

	w := adminRequest(t, router, "DELETE", "/admin/orders/"+orderID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.orders)
}

func TestDeleteOrder_NotFound(t *testing.T) {
	orderID := uuid.New()
	store := &fakeStore{orders: []models.Order{{ID: orderID, Schedule: "A"}}}
	router := newAdminRouter(store)

	w := adminRequest(t, router, "DELETE", "/admin/orders/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, store.orders, 1)
}

func TestDeleteOrder_InvalidID(t *testing.T) {
	router := newAdminRouter(&fakeStore{})

	w := adminRequest(t, router, "DELETE", "/admin/orders/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
