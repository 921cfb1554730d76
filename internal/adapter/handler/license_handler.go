package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/royalguard/activity-api/internal/adapter/presenter"
	"github.com/royalguard/activity-api/internal/usecase"
)

// LicenseHandler serves the weapons license lifecycle endpoints.
type LicenseHandler struct {
	issueLicenseUC  *usecase.IssueLicenseUseCase
	getLicenseUC    *usecase.GetLicenseUseCase
	revokeLicenseUC *usecase.RevokeLicenseUseCase
}

// NewLicenseHandler creates a new LicenseHandler.
func NewLicenseHandler(
	issueLicenseUC *usecase.IssueLicenseUseCase,
	getLicenseUC *usecase.GetLicenseUseCase,
	revokeLicenseUC *usecase.RevokeLicenseUseCase,
) *LicenseHandler {
	return &LicenseHandler{
		issueLicenseUC:  issueLicenseUC,
		getLicenseUC:    getLicenseUC,
		revokeLicenseUC: revokeLicenseUC,
	}
}

type issueLicenseRequest struct {
	UserID   *int64 `json:"user_id"`
	IssuedBy *int64 `json:"issued_by"`
}

// GetLicense is the GET /license handler. Absence of a license is a
// successful answer, never an error.
func (h *LicenseHandler) GetLicense(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, presenter.Error(msgInvalidUserID))
		return
	}

	output, err := h.getLicenseUC.Execute(c.Request.Context(), usecase.GetLicenseInput{UserID: userID})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	if !output.HasLicense {
		c.JSON(http.StatusOK, gin.H{
			"status":      "success",
			"has_license": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"has_license": true,
		"issued_by":   output.IssuedBy,
		"issued_at":   output.IssuedAt.UTC().Format(time.RFC3339),
	})
}

// IssueLicense is the POST /license handler.
func (h *LicenseHandler) IssueLicense(c *gin.Context) {
	var req issueLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == nil || req.IssuedBy == nil {
		c.JSON(http.StatusBadRequest, presenter.Error(msgInvalidData))
		return
	}

	input := usecase.IssueLicenseInput{
		UserID:   *req.UserID,
		IssuedBy: *req.IssuedBy,
	}
	if _, err := h.issueLicenseUC.Execute(c.Request.Context(), input); err != nil {
		if errors.Is(err, usecase.ErrAlreadyLicensed) {
			c.JSON(http.StatusConflict, presenter.Error("User already has a license"))
			return
		}
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.SuccessMessage("License issued"))
}

// RevokeLicense is the DELETE /license handler.
func (h *LicenseHandler) RevokeLicense(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, presenter.Error(msgInvalidUserID))
		return
	}

	if err := h.revokeLicenseUC.Execute(c.Request.Context(), usecase.RevokeLicenseInput{UserID: userID}); err != nil {
		if errors.Is(err, usecase.ErrNotLicensed) {
			c.JSON(http.StatusNotFound, presenter.Error("User does not have a license"))
			return
		}
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.SuccessMessage("License revoked"))
}

// RegisterRoutes registers the license routes behind the API key
// middleware. These endpoints only accept the credential in the header.
func (h *LicenseHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	license := r.Group("/license", auth)
	{
		license.GET("", h.GetLicense)
		license.POST("", h.IssueLicense)
		license.DELETE("", h.RevokeLicense)
	}
}
