package supabase

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"class-booking-backend/internal/models"
)

// ErrOrderNotFound is returned when an order id does not exist.
var ErrOrderNotFound = errors.New("order not found")

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (d *DatabaseClient) CreateOrder(order *models.Order) (*models.Order, error) {
	var created models.Order
	err := d.db.QueryRow(`
		INSERT INTO orders (name, phone, schedule, agreed, people_count, total_amount, product_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, phone, schedule, agreed, people_count, total_amount, product_type, status, created_at
	`, order.Name, order.Phone, order.Schedule, order.Agreed, order.PeopleCount,
		order.TotalAmount, order.ProductType, order.Status).Scan(
		&created.ID, &created.Name, &created.Phone, &created.Schedule, &created.Agreed,
		&created.PeopleCount, &created.TotalAmount, &created.ProductType, &created.Status, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &created, nil
}

// ListOrders returns orders newest-first, optionally filtered by status
// and/or schedule label. Empty filter values match everything.
func (d *DatabaseClient) ListOrders(status, schedule string) ([]models.Order, error) {
	query := `
		SELECT id, name, phone, schedule, agreed, people_count, total_amount, product_type, status, created_at
		FROM orders
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR schedule = $2)
		ORDER BY created_at DESC
	`
	rows, err := d.db.Query(query, status, schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID, &order.Name, &order.Phone, &order.Schedule, &order.Agreed,
			&order.PeopleCount, &order.TotalAmount, &order.ProductType, &order.Status, &order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	return orders, nil
}

func (d *DatabaseClient) UpdateOrderStatus(orderID uuid.UUID, status string) (*models.Order, error) {
	var updated models.Order
	err := d.db.QueryRow(`
		UPDATE orders
		SET status = $1
		WHERE id = $2
		RETURNING id, name, phone, schedule, agreed, people_count, total_amount, product_type, status, created_at
	`, status, orderID).Scan(
		&updated.ID, &updated.Name, &updated.Phone, &updated.Schedule, &updated.Agreed,
		&updated.PeopleCount, &updated.TotalAmount, &updated.ProductType, &updated.Status, &updated.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return &updated, nil
}

func (d *DatabaseClient) DeleteOrder(orderID uuid.UUID) error {
	result, err := d.db.Exec(`DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// CountReserved sums the party sizes of non-cancelled orders for a schedule
// label. Pending orders hold their seats until an admin cancels them.
func (d *DatabaseClient) CountReserved(schedule string) (int, error) {
	var reserved int
	err := d.db.QueryRow(`
		SELECT COALESCE(SUM(people_count), 0)
		FROM orders
		WHERE schedule = $1 AND status <> $2
	`, schedule, models.StatusCancelled).Scan(&reserved)
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	return reserved, nil
}

// ReservedBySchedule returns the reserved seat total per schedule label
// across all non-cancelled orders.
func (d *DatabaseClient) ReservedBySchedule() (map[string]int, error) {
	rows, err := d.db.Query(`
		SELECT schedule, COALESCE(SUM(people_count), 0)
		FROM orders
		WHERE status <> $1
		GROUP BY schedule
	`, models.StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to count reservations: %w", err)
	}
	defer rows.Close()

	reserved := make(map[string]int)
	for rows.Next() {
		var schedule string
		var count int
		if err := rows.Scan(&schedule, &count); err != nil {
			return nil, fmt.Errorf("failed to scan reservation count: %w", err)
		}
		reserved[schedule] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reservation counts: %w", err)
	}

	return reserved, nil
}

// GetFormConfig returns the most recently updated form_config row, or
// (nil, nil) when no row has been saved yet.
func (d *DatabaseClient) GetFormConfig() (*models.FormConfigRow, error) {
	var row models.FormConfigRow
	err := d.db.QueryRow(`
		SELECT id, schedules, details, bank_name, account_number, depositor, price,
		       wreath_price, background_image, notify_email_enabled, admin_email, updated_at
		FROM form_config
		ORDER BY updated_at DESC
		LIMIT 1
	`).Scan(
		&row.ID, &row.Schedules, &row.Details, &row.BankName, &row.AccountNumber,
		&row.Depositor, &row.Price, &row.WreathPrice, &row.BackgroundImage,
		&row.NotifyEmailEnabled, &row.AdminEmail, &row.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get form config: %w", err)
	}

	return &row, nil
}

// UpsertFormConfig writes the singleton form_config row, last write wins.
func (d *DatabaseClient) UpsertFormConfig(row *models.FormConfigRow) (*models.FormConfigRow, error) {
	var saved models.FormConfigRow
	err := d.db.QueryRow(`
		INSERT INTO form_config (id, schedules, details, bank_name, account_number, depositor,
		                         price, wreath_price, background_image, notify_email_enabled, admin_email, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (id) DO UPDATE SET
			schedules = EXCLUDED.schedules,
			details = EXCLUDED.details,
			bank_name = EXCLUDED.bank_name,
			account_number = EXCLUDED.account_number,
			depositor = EXCLUDED.depositor,
			price = EXCLUDED.price,
			wreath_price = EXCLUDED.wreath_price,
			background_image = EXCLUDED.background_image,
			notify_email_enabled = EXCLUDED.notify_email_enabled,
			admin_email = EXCLUDED.admin_email,
			updated_at = NOW()
		RETURNING id, schedules, details, bank_name, account_number, depositor, price,
		          wreath_price, background_image, notify_email_enabled, admin_email, updated_at
	`, row.ID, row.Schedules, row.Details, row.BankName, row.AccountNumber, row.Depositor,
		row.Price, row.WreathPrice, row.BackgroundImage, row.NotifyEmailEnabled, row.AdminEmail).Scan(
		&saved.ID, &saved.Schedules, &saved.Details, &saved.BankName, &saved.AccountNumber,
		&saved.Depositor, &saved.Price, &saved.WreathPrice, &saved.BackgroundImage,
		&saved.NotifyEmailEnabled, &saved.AdminEmail, &saved.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save form config: %w", err)
	}

	return &saved, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
