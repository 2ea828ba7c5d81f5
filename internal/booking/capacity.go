// Package booking derives seat availability from the configured schedule
// slots and the existing order set, and validates new submissions against it.
//
// Reservation policy: every non-cancelled order (pending or confirmed) holds
// its seats. The capacity check and the subsequent insert are two separate
// store calls, so concurrent submissions can overbook a slot under load.
package booking

import (
	"errors"
	"fmt"

	"class-booking-backend/internal/models"
)

// ErrCapacityExceeded is returned when a submission would overbook a slot.
var ErrCapacityExceeded = errors.New("schedule capacity exceeded")

// ReservationStore provides the reserved seat total for one schedule label.
type ReservationStore interface {
	CountReserved(schedule string) (int, error)
}

// CapacityFor returns the configured capacity for a schedule label, or
// models.DefaultCapacity when the label is not in the config.
func CapacityFor(schedules []models.ScheduleEntry, label string) int {
	for _, entry := range schedules {
		if entry.Time == label {
			return entry.Capacity
		}
	}
	return models.DefaultCapacity
}

// Availability computes per-slot reserved and remaining counts. Orders
// referencing labels absent from the config are not represented here; they
// still show up in the admin summary.
func Availability(schedules []models.ScheduleEntry, reserved map[string]int) []models.ScheduleAvailability {
	availability := make([]models.ScheduleAvailability, len(schedules))
	for i, entry := range schedules {
		taken := reserved[entry.Time]
		remaining := entry.Capacity - taken
		if remaining < 0 {
			remaining = 0
		}
		availability[i] = models.ScheduleAvailability{
			Time:      entry.Time,
			Capacity:  entry.Capacity,
			Reserved:  taken,
			Remaining: remaining,
		}
	}
	return availability
}

type Validator struct {
	store ReservationStore
}

func NewValidator(store ReservationStore) *Validator {
	return &Validator{store: store}
}

// Validate checks whether partySize more seats fit into the slot. Returns
// ErrCapacityExceeded when they do not.
func (v *Validator) Validate(schedules []models.ScheduleEntry, label string, partySize int) error {
	capacity := CapacityFor(schedules, label)

	reserved, err := v.store.CountReserved(label)
	if err != nil {
		return fmt.Errorf("failed to check capacity: %w", err)
	}

	if reserved+partySize > capacity {
		return ErrCapacityExceeded
	}
	return nil
}
