package handlers

import (
	"net/http"

	"gradproject-teams/internal/service"

	"github.com/gin-gonic/gin"
)

// InvitationHandler handles HTTP requests for team invitations
type InvitationHandler struct {
	invitationService service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(invitationService service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

// ListInvitations handles GET /api/team/invitations?userId=&userEmail=
// @Summary List the invitations addressed to a student
// @Tags team
// @Produce json
// @Param userId query string true "Student ID"
// @Param userEmail query string false "Student email, required when it differs from the token"
// @Success 200 {object} map[string]interface{} "Invitations"
// @Failure 400 {object} ErrorResponse "userId missing"
// @Failure 403 {object} ErrorResponse "userId belongs to someone else"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /api/team/invitations [get]
func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "userId is required"})
		return
	}
	email, err := actorEmail(c, c.Query("userEmail"))
	if err != nil {
		respondError(c, err)
		return
	}

	invitations, err := h.invitationService.ListInvitations(c.Request.Context(), userID, email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "invitations": invitations})
}

// AcceptInvitation handles POST /api/team/accept-invitation
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	h.respond(c, true, "Invitation accepted successfully")
}

// RejectInvitation handles POST /api/team/reject-invitation
func (h *InvitationHandler) RejectInvitation(c *gin.Context) {
	h.respond(c, false, "Invitation rejected successfully")
}

func (h *InvitationHandler) respond(c *gin.Context, accept bool, message string) {
	var req service.RespondInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	var err error
	if req.UserEmail, err = actorEmail(c, req.UserEmail); err != nil {
		respondError(c, err)
		return
	}

	invitation, err := h.invitationService.Respond(c.Request.Context(), &req, accept)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "invitation": invitation})
}
