package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gradproject-teams/internal/database/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoints
const Version = "1.0.0"

const pingTimeout = 2 * time.Second

// HealthHandler reports whether the team backend can serve requests
type HealthHandler struct {
	db        *gorm.DB
	directory string
}

// NewHealthHandler creates a new health handler. ldapEnabled selects how
// student names are resolved and is reported as the directory service.
func NewHealthHandler(db *gorm.DB, ldapEnabled bool) *HealthHandler {
	directory := "local"
	if ldapEnabled {
		directory = "ldap"
	}
	return &HealthHandler{db: db, directory: directory}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// checkSchema verifies the student, idea and invitation tables exist
func (h *HealthHandler) checkSchema(ctx context.Context) error {
	migrator := h.db.WithContext(ctx).Migrator()
	for _, model := range []interface{}{&models.Student{}, &models.SavedIdea{}, &models.TeamInvitation{}} {
		if !migrator.HasTable(model) {
			return fmt.Errorf("missing table for %T", model)
		}
	}
	return nil
}

// Health returns the health status of the application
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Services: map[string]string{
			"database":  "healthy",
			"directory": h.directory,
		},
	}

	if err := h.pingDatabase(c.Request.Context()); err != nil {
		resp.Status = "unhealthy"
		resp.Services["database"] = "error: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Ready reports ready once the database answers and the schema is migrated
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()
	services := map[string]string{"database": "ready", "schema": "ready"}

	err := h.pingDatabase(ctx)
	if err != nil {
		services["database"] = "not ready: " + err.Error()
		services["schema"] = "unknown"
	} else if err = h.checkSchema(ctx); err != nil {
		services["schema"] = "not ready: " + err.Error()
	}

	status := http.StatusOK
	if err != nil {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"ready":     err == nil,
		"timestamp": time.Now().UTC(),
		"services":  services,
	})
}

// Live always answers while the process is up
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true, "timestamp": time.Now().UTC()})
}
