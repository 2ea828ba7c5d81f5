package models

import (
	"encoding/json"
	"strings"
	"time"
)

// FormConfigID is the fixed primary key of the singleton form_config row.
const FormConfigID = 1

// DefaultCapacity is used for schedule entries without an explicit capacity
// and for orders referencing a schedule no longer present in the config.
const DefaultCapacity = 100

// ScheduleEntry is a bookable time slot. Time is a free-text label that
// orders reference by exact string equality.
type ScheduleEntry struct {
	Time     string `json:"time"`
	Capacity int    `json:"capacity"`
}

// FormConfig is the public shape of the order form configuration.
type FormConfig struct {
	Schedules          []ScheduleEntry `json:"schedules"`
	Details            string          `json:"details"`
	BankName           string          `json:"bankName"`
	AccountNumber      string          `json:"accountNumber"`
	Depositor          string          `json:"depositor"`
	Price              string          `json:"price"`
	WreathPrice        string          `json:"wreathPrice"`
	BackgroundImage    string          `json:"backgroundImage"`
	NotifyEmailEnabled bool            `json:"notifyEmailEnabled"`
	AdminEmail         string          `json:"adminEmail"`
	UpdatedAt          *time.Time      `json:"updatedAt"`
}

// FormConfigRow is the database row backing FormConfig. Schedules is stored
// as a JSONB array of ScheduleEntry.
type FormConfigRow struct {
	ID                 int
	Schedules          json.RawMessage
	Details            string
	BankName           string
	AccountNumber      string
	Depositor          string
	Price              string
	WreathPrice        string
	BackgroundImage    string
	NotifyEmailEnabled bool
	AdminEmail         string
	UpdatedAt          time.Time
}

func DefaultFormConfig() FormConfig {
	return FormConfig{
		Schedules: []ScheduleEntry{
			{Time: "2024-12-20T19:00", Capacity: DefaultCapacity},
			{Time: "2024-12-21T14:00", Capacity: DefaultCapacity},
			{Time: "2024-12-22T14:00", Capacity: DefaultCapacity},
		},
		Details: "[알러지 및 주의사항]\n" +
			"- 편백·침엽수 등 수목 소재 알러지가 있는 분은 수업 참여 전 주의가 필요합니다.\n" +
			"- 수업 시작 3일 전까지 100% 환불 가능하며, 이후에는 재료 준비로 인해 환불이 불가합니다.\n" +
			"- 수업 시작 10분 전까지 도착해주시기 바랍니다.",
		BankName:      "국민은행",
		AccountNumber: "1234-56-789012",
		Depositor:     "변화 x PIRI",
		Price:         "80000",
		WreathPrice:   "60000",
	}
}

// ParseSchedules coerces a schedules payload into structured entries. It
// accepts both the structured {time, capacity} form and the legacy plain
// string form that older saved configs used. Blank entries are dropped,
// non-positive capacities fall back to DefaultCapacity.
func ParseSchedules(raw json.RawMessage) []ScheduleEntry {
	if len(raw) == 0 {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	entries := make([]ScheduleEntry, 0, len(items))
	for _, item := range items {
		var label string
		if err := json.Unmarshal(item, &label); err == nil {
			label = strings.TrimSpace(label)
			if label != "" {
				entries = append(entries, ScheduleEntry{Time: label, Capacity: DefaultCapacity})
			}
			continue
		}

		var entry ScheduleEntry
		if err := json.Unmarshal(item, &entry); err != nil {
			continue
		}
		entry.Time = strings.TrimSpace(entry.Time)
		if entry.Time == "" {
			continue
		}
		if entry.Capacity <= 0 {
			entry.Capacity = DefaultCapacity
		}
		entries = append(entries, entry)
	}

	return entries
}

// NormalizePrice reduces a price-like value to its digits. Returns fallback
// when nothing numeric remains.
func NormalizePrice(value, fallback string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return fallback
	}
	return b.String()
}
