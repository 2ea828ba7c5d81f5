package models

import "encoding/json"

type CreateOrderRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Schedule    string `json:"schedule"`
	Agreed      bool   `json:"agreed"`
	PeopleCount int    `json:"peopleCount"`
	TotalAmount int64  `json:"totalAmount"`
	ProductType string `json:"productType"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

// SaveConfigRequest mirrors FormConfig but leaves schedules raw so both the
// structured and the legacy plain-string forms are accepted.
type SaveConfigRequest struct {
	Schedules          json.RawMessage `json:"schedules"`
	Details            string          `json:"details"`
	BankName           string          `json:"bankName"`
	AccountNumber      string          `json:"accountNumber"`
	Depositor          string          `json:"depositor"`
	Price              string          `json:"price"`
	WreathPrice        string          `json:"wreathPrice"`
	BackgroundImage    string          `json:"backgroundImage"`
	NotifyEmailEnabled bool            `json:"notifyEmailEnabled"`
	AdminEmail         string          `json:"adminEmail"`
}
