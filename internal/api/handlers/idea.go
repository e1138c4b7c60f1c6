package handlers

import (
	"net/http"

	"gradproject-teams/internal/service"

	"github.com/gin-gonic/gin"
)

// IdeaHandler handles the team's agreed idea and idea visibility
type IdeaHandler struct {
	ideaService service.IdeaServiceInterface
}

// NewIdeaHandler creates a new idea handler
func NewIdeaHandler(ideaService service.IdeaServiceInterface) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

// AgreeIdea handles POST /api/group/agree-idea
// @Summary Make an idea the team's agreed idea
// @Tags group
// @Accept json
// @Produce json
// @Param body body service.AgreeIdeaRequest true "Idea"
// @Success 200 {object} service.AgreementResponse "Idea agreed"
// @Failure 400 {object} ErrorResponse "User is not in a group"
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Failure 409 {object} ErrorResponse "Another idea is already agreed"
// @Router /api/group/agree-idea [post]
func (h *IdeaHandler) AgreeIdea(c *gin.Context) {
	var req service.AgreeIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	var err error
	if req.UserEmail, err = actorEmail(c, req.UserEmail); err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.ideaService.AgreeIdea(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Idea agreed successfully",
		"agreedIdeaId":   resp.AgreedIdeaID,
		"updatedMembers": resp.UpdatedMembers,
	})
}

// RemoveAgreement handles POST /api/group/remove-agreement
func (h *IdeaHandler) RemoveAgreement(c *gin.Context) {
	var req service.RemoveAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	var err error
	if req.UserEmail, err = actorEmail(c, req.UserEmail); err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.ideaService.RemoveAgreement(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Agreement removed successfully",
		"updatedMembers": resp.UpdatedMembers,
	})
}

// UpdateVisibility handles POST /api/profile/update-idea-visibility
func (h *IdeaHandler) UpdateVisibility(c *gin.Context) {
	var req service.UpdateVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	var err error
	if req.Email, err = actorEmail(c, req.Email); err != nil {
		respondError(c, err)
		return
	}

	if err := h.ideaService.UpdateVisibility(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Visibility updated successfully"})
}
