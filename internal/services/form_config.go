package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"class-booking-backend/internal/models"
)

// ConfigStore is the persistence surface FormConfigService needs.
type ConfigStore interface {
	GetFormConfig() (*models.FormConfigRow, error)
	UpsertFormConfig(row *models.FormConfigRow) (*models.FormConfigRow, error)
}

// FormConfigService reads and writes the singleton order form configuration.
// Reads never fail the caller: a missing row or a store error falls back to
// the hard-coded defaults field by field.
type FormConfigService struct {
	store ConfigStore
}

func NewFormConfigService(store ConfigStore) *FormConfigService {
	return &FormConfigService{store: store}
}

func (s *FormConfigService) Get() models.FormConfig {
	row, err := s.store.GetFormConfig()
	if err != nil {
		log.Printf("Failed to fetch form config, using defaults: %v", err)
		return models.DefaultFormConfig()
	}
	if row == nil {
		return models.DefaultFormConfig()
	}

	defaults := models.DefaultFormConfig()
	cfg := models.FormConfig{
		Schedules:          models.ParseSchedules(row.Schedules),
		Details:            fallback(row.Details, defaults.Details),
		BankName:           fallback(row.BankName, defaults.BankName),
		AccountNumber:      fallback(row.AccountNumber, defaults.AccountNumber),
		Depositor:          fallback(row.Depositor, defaults.Depositor),
		Price:              fallback(row.Price, defaults.Price),
		WreathPrice:        fallback(row.WreathPrice, defaults.WreathPrice),
		BackgroundImage:    row.BackgroundImage,
		NotifyEmailEnabled: row.NotifyEmailEnabled,
		AdminEmail:         row.AdminEmail,
	}
	if len(cfg.Schedules) == 0 {
		cfg.Schedules = defaults.Schedules
	}
	updatedAt := row.UpdatedAt
	cfg.UpdatedAt = &updatedAt

	return cfg
}

// Save normalizes the candidate config and upserts the singleton row,
// overwriting the previous configuration.
func (s *FormConfigService) Save(req *models.SaveConfigRequest) (*models.FormConfig, error) {
	defaults := models.DefaultFormConfig()

	schedules := models.ParseSchedules(req.Schedules)
	if len(schedules) == 0 {
		schedules = defaults.Schedules
	}
	schedulesJSON, err := json.Marshal(schedules)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schedules: %w", err)
	}

	row := &models.FormConfigRow{
		ID:                 models.FormConfigID,
		Schedules:          schedulesJSON,
		Details:            fallback(strings.TrimSpace(req.Details), defaults.Details),
		BankName:           fallback(strings.TrimSpace(req.BankName), defaults.BankName),
		AccountNumber:      fallback(strings.TrimSpace(req.AccountNumber), defaults.AccountNumber),
		Depositor:          fallback(strings.TrimSpace(req.Depositor), defaults.Depositor),
		Price:              models.NormalizePrice(req.Price, defaults.Price),
		WreathPrice:        models.NormalizePrice(req.WreathPrice, defaults.WreathPrice),
		BackgroundImage:    strings.TrimSpace(req.BackgroundImage),
		NotifyEmailEnabled: req.NotifyEmailEnabled,
		AdminEmail:         strings.TrimSpace(req.AdminEmail),
	}

	saved, err := s.store.UpsertFormConfig(row)
	if err != nil {
		return nil, err
	}

	cfg := models.FormConfig{
		Schedules:          models.ParseSchedules(saved.Schedules),
		Details:            saved.Details,
		BankName:           saved.BankName,
		AccountNumber:      saved.AccountNumber,
		Depositor:          saved.Depositor,
		Price:              saved.Price,
		WreathPrice:        saved.WreathPrice,
		BackgroundImage:    saved.BackgroundImage,
		NotifyEmailEnabled: saved.NotifyEmailEnabled,
		AdminEmail:         saved.AdminEmail,
	}
	updatedAt := saved.UpdatedAt
	cfg.UpdatedAt = &updatedAt

	return &cfg, nil
}

// SetBackgroundImage persists a freshly uploaded background image URL on top
// of the current configuration.
func (s *FormConfigService) SetBackgroundImage(url string) (*models.FormConfig, error) {
	current := s.Get()

	schedulesJSON, err := json.Marshal(current.Schedules)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schedules: %w", err)
	}

	return s.Save(&models.SaveConfigRequest{
		Schedules:          schedulesJSON,
		Details:            current.Details,
		BankName:           current.BankName,
		AccountNumber:      current.AccountNumber,
		Depositor:          current.Depositor,
		Price:              current.Price,
		WreathPrice:        current.WreathPrice,
		BackgroundImage:    url,
		NotifyEmailEnabled: current.NotifyEmailEnabled,
		AdminEmail:         current.AdminEmail,
	})
}

func fallback(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
