package handlers

import (
	"net/http"

	"gradproject-teams/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the profile polled by clients
type ProfileHandler struct {
	teamService service.TeamServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(teamService service.TeamServiceInterface) *ProfileHandler {
	return &ProfileHandler{teamService: teamService}
}

// GetProfile handles POST /api/profile/get
// @Summary Get a student's profile
// @Description Returns the team, invitations and saved ideas of the student
// @Tags profile
// @Accept json
// @Produce json
// @Param body body emailRequest true "Student email"
// @Success 200 {object} map[string]interface{} "Profile"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /api/profile/get [post]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	var err error
	if req.Email, err = actorEmail(c, req.Email); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.teamService.GetProfile(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
