package handlers_test

import (
	"time"

	"github.com/google/uuid"

	"class-booking-backend/internal/models"
	"class-booking-backend/internal/supabase"
)

// fakeStore implements handlers.OrderStore and services.ConfigStore in
// memory for handler tests.
type fakeStore struct {
	orders    []models.Order
	configRow *models.FormConfigRow

	createErr error
	listErr   error
	configErr error
}

func (f *fakeStore) CreateOrder(order *models.Order) (*models.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *order
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	f.orders = append(f.orders, created)
	return &created, nil
}

func (f *fakeStore) ListOrders(status, schedule string) ([]models.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var result []models.Order
	for i := len(f.orders) - 1; i >= 0; i-- { // newest first
		order := f.orders[i]
		if status != "" && order.Status != status {
			continue
		}
		if schedule != "" && order.Schedule != schedule {
			continue
		}
		result = append(result, order)
	}
	return result, nil
}

func (f *fakeStore) UpdateOrderStatus(orderID uuid.UUID, status string) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			f.orders[i].Status = status
			updated := f.orders[i]
			return &updated, nil
		}
	}
	return nil, supabase.ErrOrderNotFound
}

func (f *fakeStore) DeleteOrder(orderID uuid.UUID) error {
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return supabase.ErrOrderNotFound
}

func (f *fakeStore) CountReserved(schedule string) (int, error) {
	reserved := 0
	for _, order := range f.orders {
		if order.Schedule == schedule && order.Status != models.StatusCancelled {
			reserved += order.PeopleCount
		}
	}
	return reserved, nil
}

func (f *fakeStore) ReservedBySchedule() (map[string]int, error) {
	reserved := make(map[string]int)
	for _, order := range f.orders {
		if order.Status != models.StatusCancelled {
			reserved[order.Schedule] += order.PeopleCount
		}
	}
	return reserved, nil
}

func (f *fakeStore) GetFormConfig() (*models.FormConfigRow, error) {
	if f.configErr != nil {
		return nil, f.configErr
	}
	return f.configRow, nil
}

func (f *fakeStore) UpsertFormConfig(row *models.FormConfigRow) (*models.FormConfigRow, error) {
	saved := *row
	saved.UpdatedAt = time.Now()
	f.configRow = &saved
	return &saved, nil
}
