package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"

	ProductTree   = "tree"
	ProductWreath = "wreath"
)

// Order is a single class/product booking submitted through the public form.
type Order struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Schedule    string    `json:"schedule"`
	Agreed      bool      `json:"agreed"`
	PeopleCount int       `json:"peopleCount"`
	TotalAmount int64     `json:"totalAmount"`
	ProductType string    `json:"productType"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

func ValidProductType(productType string) bool {
	return productType == ProductTree || productType == ProductWreath
}
