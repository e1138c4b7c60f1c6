package handlers

import (
	"net/http"
	"strings"

	"gradproject-teams/internal/domain"
	"gradproject-teams/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team membership
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

type emailRequest struct {
	Email string `json:"email"`
}

// GetStudent handles POST /api/team/get-student
// @Summary Look up a student by email
// @Tags team
// @Accept json
// @Produce json
// @Param body body emailRequest true "Student email"
// @Success 200 {object} map[string]interface{} "Student found"
// @Failure 400 {object} ErrorResponse "Email missing"
// @Failure 404 {object} ErrorResponse "Student not found"
// @Router /api/team/get-student [post]
func (h *TeamHandler) GetStudent(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	student, err := h.teamService.GetStudent(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "student": student})
}

// SyncTeam handles POST /api/team/sync
// @Summary Store the full team on every member
// @Tags team
// @Accept json
// @Produce json
// @Param body body service.SyncTeamRequest true "Team"
// @Success 200 {object} service.TeamResponse "Team stored"
// @Failure 400 {object} ErrorResponse "Invalid team"
// @Failure 409 {object} ErrorResponse "Members already in another team"
// @Router /api/team/sync [post]
func (h *TeamHandler) SyncTeam(c *gin.Context) {
	var req service.SyncTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	var err error
	if req.UserEmail, err = actorEmail(c, req.UserEmail); err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.teamService.SyncTeam(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teamBody(resp, "Team synced successfully"))
}

// RemoveMember handles POST /api/team/remove-member
// @Summary Remove a member from the caller's team
// @Tags team
// @Accept json
// @Produce json
// @Param body body service.RemoveMemberRequest true "Member to remove"
// @Success 200 {object} service.TeamResponse "Member removed"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Router /api/team/remove-member [post]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	var req service.RemoveMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	var err error
	if req.UserEmail, err = actorEmail(c, req.UserEmail); err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.teamService.RemoveMember(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teamBody(resp, "Member removed successfully"))
}

// UpdateLeader handles POST /api/team/update-leader
func (h *TeamHandler) UpdateLeader(c *gin.Context) {
	var req service.UpdateLeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	var err error
	if req.UserEmail, err = actorEmail(c, req.UserEmail); err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.teamService.UpdateLeader(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teamBody(resp, "Team leader updated successfully"))
}

func teamBody(resp *service.TeamResponse, message string) gin.H {
	return gin.H{
		"success":        true,
		"message":        message,
		"groupName":      resp.GroupName,
		"groupMembers":   resp.GroupMembers,
		"updatedMembers": resp.UpdatedMembers,
		"results":        resp.Results,
	}
}

func sameEmail(a, b string) bool {
	return domain.NormalizeEmail(a) == domain.NormalizeEmail(b) && strings.TrimSpace(a) != ""
}
