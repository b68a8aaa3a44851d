package handler

import (
	"net/http"

	"healthhub/internal/middleware"
	"healthhub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the role-scoped dashboard endpoints
type DashboardHandler struct {
	service service.DashboardService
	logger  *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(s service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: s, logger: logger}
}

// PatientDashboard returns patient info + recent appointments + allergy info
func (h *DashboardHandler) PatientDashboard(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok || identity.PatientID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No patient linked to this user"})
		return
	}

	dashboard, err := h.service.PatientDashboard(c.Request.Context(), *identity.PatientID)
	if err != nil {
		h.logger.Error("patient dashboard failed", zap.Int("patient_id", *identity.PatientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load patient dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"patient":      dashboard.Patient,
		"appointments": dashboard.Appointments,
		"allergies":    dashboard.Allergies,
	})
}

// DoctorDashboard returns the doctor's upcoming schedule + patient list
func (h *DashboardHandler) DoctorDashboard(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok || identity.DoctorID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No doctor linked to this user"})
		return
	}

	dashboard, err := h.service.DoctorDashboard(c.Request.Context(), *identity.DoctorID)
	if err != nil {
		h.logger.Error("doctor dashboard failed", zap.Int("doctor_id", *identity.DoctorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load doctor dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"appointments": dashboard.Appointments,
		"patients":     dashboard.Patients,
	})
}

// RegisterDashboardRoutes registers the protected dashboard routes.
// Guards run in order: session presence first, then role.
func (h *DashboardHandler) RegisterDashboardRoutes(r gin.IRouter, requireSession gin.HandlerFunc) {
	api := r.Group("/api")
	api.GET("/patient/dashboard", requireSession, middleware.RequirePatient(), h.PatientDashboard)
	api.GET("/doctor/dashboard", requireSession, middleware.RequireDoctor(), h.DoctorDashboard)
}
