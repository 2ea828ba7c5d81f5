package handlers

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"class-booking-backend/internal/booking"
	"class-booking-backend/internal/models"
	"class-booking-backend/internal/services"
	"class-booking-backend/internal/supabase"
)

const maxBackgroundImageSize = 5 << 20 // 5 MiB

// ConfigHandler serves the public form configuration and its admin edits.
type ConfigHandler struct {
	store     OrderStore
	configSvc *services.FormConfigService
	storage   *supabase.StorageClient
}

func NewConfigHandler(store OrderStore, configSvc *services.FormConfigService, storage *supabase.StorageClient) *ConfigHandler {
	return &ConfigHandler{
		store:     store,
		configSvc: configSvc,
		storage:   storage,
	}
}

// GetConfig godoc
// @Summary     Get form configuration
// @Description Returns the normalized form configuration with per-slot remaining capacity. Falls back to defaults when nothing has been saved.
// @Tags        config
// @Produce     json
// @Success     200 {object} models.ConfigResponse
// @Router      /config [get]
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	formConfig := h.configSvc.Get()

	reserved, err := h.store.ReservedBySchedule()
	if err != nil {
		// Availability degrades to zero reserved; the form still renders.
		logStoreError("reserved by schedule", err)
		reserved = map[string]int{}
	}

	c.JSON(http.StatusOK, models.ConfigResponse{
		Schedules:          booking.Availability(formConfig.Schedules, reserved),
		Details:            formConfig.Details,
		BankName:           formConfig.BankName,
		AccountNumber:      formConfig.AccountNumber,
		Depositor:          formConfig.Depositor,
		Price:              formConfig.Price,
		WreathPrice:        formConfig.WreathPrice,
		BackgroundImage:    formConfig.BackgroundImage,
		NotifyEmailEnabled: formConfig.NotifyEmailEnabled,
		AdminEmail:         formConfig.AdminEmail,
		UpdatedAt:          formConfig.UpdatedAt,
	})
}

// SaveConfig godoc
// @Summary     Save form configuration
// @Description Normalizes and upserts the singleton form configuration, last write wins.
// @Tags        config
// @Accept      json
// @Produce     json
// @Param       request body models.SaveConfigRequest true "Form configuration"
// @Success     200 {object} models.SaveConfigResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /config [put]
func (h *ConfigHandler) SaveConfig(c *gin.Context) {
	var req models.SaveConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	saved, err := h.configSvc.Save(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to save config"})
		logStoreError("save form config", err)
		return
	}

	c.JSON(http.StatusOK, models.SaveConfigResponse{Config: *saved})
}

// UploadBackground godoc
// @Summary     Upload form background image
// @Description Stores the image in the Supabase Storage bucket and persists its public URL on the form configuration.
// @Tags        config
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Image file"
// @Success     200 {object} models.UploadBackgroundResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/config/background [post]
func (h *ConfigHandler) UploadBackground(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "storage not available"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing file"})
		return
	}
	if fileHeader.Size > maxBackgroundImageSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	url, err := h.storage.UploadBackground(filepath.Base(fileHeader.Filename), contentType, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to upload image"})
		logStoreError("upload background image", err)
		return
	}

	if _, err := h.configSvc.SetBackgroundImage(url); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to save config"})
		logStoreError("save background image", err)
		return
	}

	c.JSON(http.StatusOK, models.UploadBackgroundResponse{URL: url})
}
