package handlers

import (
	"log"

	"github.com/google/uuid"

	"class-booking-backend/internal/models"
)

// OrderStore is the order persistence surface the handlers depend on,
// implemented by supabase.DatabaseClient.
type OrderStore interface {
	CreateOrder(order *models.Order) (*models.Order, error)
	ListOrders(status, schedule string) ([]models.Order, error)
	UpdateOrderStatus(orderID uuid.UUID, status string) (*models.Order, error)
	DeleteOrder(orderID uuid.UUID) error
	CountReserved(schedule string) (int, error)
	ReservedBySchedule() (map[string]int, error)
}

// logStoreError keeps the failure detail server-side; clients only ever see
// a generic message.
func logStoreError(operation string, err error) {
	log.Printf("Store operation %q failed: %v", operation, err)
}
