package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	Order *Order `json:"order"`
}

type OrderListResponse struct {
	Orders  []Order      `json:"orders"`
	Summary OrderSummary `json:"summary"`
}

// OrderSummary aggregates the admin order list. Total counts non-cancelled
// orders; StatusCounts covers every status including cancelled.
type OrderSummary struct {
	Total          int            `json:"total"`
	StatusCounts   map[string]int `json:"statusCounts"`
	ScheduleCounts map[string]int `json:"scheduleCounts"`
}

// ScheduleAvailability is a schedule entry with its derived seat counts.
type ScheduleAvailability struct {
	Time      string `json:"time"`
	Capacity  int    `json:"capacity"`
	Reserved  int    `json:"reserved"`
	Remaining int    `json:"remaining"`
}

// ConfigResponse is the public form configuration with per-slot availability.
type ConfigResponse struct {
	Schedules          []ScheduleAvailability `json:"schedules"`
	Details            string                 `json:"details"`
	BankName           string                 `json:"bankName"`
	AccountNumber      string                 `json:"accountNumber"`
	Depositor          string                 `json:"depositor"`
	Price              string                 `json:"price"`
	WreathPrice        string                 `json:"wreathPrice"`
	BackgroundImage    string                 `json:"backgroundImage"`
	NotifyEmailEnabled bool                   `json:"notifyEmailEnabled"`
	AdminEmail         string                 `json:"adminEmail"`
	UpdatedAt          *time.Time             `json:"updatedAt"`
}

type SaveConfigResponse struct {
	Config FormConfig `json:"config"`
}

type UploadBackgroundResponse struct {
	URL string `json:"url"`
}
