package services_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"class-booking-backend/internal/models"
	"class-booking-backend/internal/services"
)

type fakeConfigStore struct {
	row    *models.FormConfigRow
	getErr error
	putErr error
}

func (f *fakeConfigStore) GetFormConfig() (*models.FormConfigRow, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.row, nil
}

func (f *fakeConfigStore) UpsertFormConfig(row *models.FormConfigRow) (*models.FormConfigRow, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	saved := *row
	saved.UpdatedAt = time.Now()
	f.row = &saved
	return &saved, nil
}

func TestGet_StoreErrorFallsBackToDefaults(t *testing.T) {
	svc := services.NewFormConfigService(&fakeConfigStore{getErr: errors.New("connection refused")})

	cfg := svc.Get()
	defaults := models.DefaultFormConfig()
	assert.Equal(t, defaults.Schedules, cfg.Schedules)
	assert.Equal(t, defaults.BankName, cfg.BankName)
	assert.Nil(t, cfg.UpdatedAt)
}

func TestGet_NoRowUsesDefaults(t *testing.T) {
	svc := services.NewFormConfigService(&fakeConfigStore{})

	cfg := svc.Get()
	assert.Equal(t, models.DefaultFormConfig().Details, cfg.Details)
}

func TestGet_PartialRowFallsBackPerField(t *testing.T) {
	schedules, _ := json.Marshal([]models.ScheduleEntry{{Time: "A", Capacity: 3}})
	store := &fakeConfigStore{row: &models.FormConfigRow{
		ID:        models.FormConfigID,
		Schedules: schedules,
		BankName:  "신한은행",
		UpdatedAt: time.Now(),
	}}
	svc := services.NewFormConfigService(store)

	cfg := svc.Get()
	defaults := models.DefaultFormConfig()
	assert.Equal(t, "신한은행", cfg.BankName)
	assert.Equal(t, defaults.Depositor, cfg.Depositor)
	assert.Equal(t, defaults.Price, cfg.Price)
	require.Len(t, cfg.Schedules, 1)
	assert.Equal(t, 3, cfg.Schedules[0].Capacity)
	require.NotNil(t, cfg.UpdatedAt)
}

func TestSave_NormalizesAndRoundTrips(t *testing.T) {
	store := &fakeConfigStore{}
	svc := services.NewFormConfigService(store)

	schedules := json.RawMessage(`[{"time":" A ","capacity":5}, "B"]`)
	saved, err := svc.Save(&models.SaveConfigRequest{
		Schedules:   schedules,
		Details:     "  내용  ",
		Price:       "90,000원",
		WreathPrice: "abc",
	})
	require.NoError(t, err)

	require.Len(t, saved.Schedules, 2)
	assert.Equal(t, models.ScheduleEntry{Time: "A", Capacity: 5}, saved.Schedules[0])
	assert.Equal(t, models.ScheduleEntry{Time: "B", Capacity: models.DefaultCapacity}, saved.Schedules[1])
	assert.Equal(t, "내용", saved.Details)
	assert.Equal(t, "90000", saved.Price)
	assert.Equal(t, models.DefaultFormConfig().WreathPrice, saved.WreathPrice)
	require.NotNil(t, saved.UpdatedAt)

	// The saved row comes back unchanged on the next read.
	got := svc.Get()
	assert.Equal(t, saved.Schedules, got.Schedules)
	assert.Equal(t, saved.Price, got.Price)
}

func TestSave_EmptySchedulesUseDefaults(t *testing.T) {
	svc := services.NewFormConfigService(&fakeConfigStore{})

	saved, err := svc.Save(&models.SaveConfigRequest{Schedules: json.RawMessage(`[]`)})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultFormConfig().Schedules, saved.Schedules)
}

func TestSave_StoreErrorPropagates(t *testing.T) {
	svc := services.NewFormConfigService(&fakeConfigStore{putErr: errors.New("write failed")})

	_, err := svc.Save(&models.SaveConfigRequest{})
	assert.Error(t, err)
}

func TestSetBackgroundImage_PreservesConfig(t *testing.T) {
	store := &fakeConfigStore{}
	svc := services.NewFormConfigService(store)

	schedules := json.RawMessage(`[{"time":"A","capacity":5}]`)
	_, err := svc.Save(&models.SaveConfigRequest{Schedules: schedules, BankName: "신한은행"})
	require.NoError(t, err)

	saved, err := svc.SetBackgroundImage("https://example.com/bg.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/bg.jpg", saved.BackgroundImage)
	assert.Equal(t, "신한은행", saved.BankName)
	require.Len(t, saved.Schedules, 1)
	assert.Equal(t, 5, saved.Schedules[0].Capacity)
}
