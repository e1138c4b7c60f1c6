package repository

import (
	"gradproject-teams/internal/database/models"
	"gradproject-teams/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationRepository handles database operations for team invitations
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create creates a new invitation
func (r *InvitationRepository) Create(invitation *models.TeamInvitation) error {
	invitation.InviteeEmail = domain.NormalizeEmail(invitation.InviteeEmail)
	if invitation.Status == "" {
		invitation.Status = models.InvitationPending
	}
	return r.db.Create(invitation).Error
}

// GetByID retrieves an invitation by ID
func (r *InvitationRepository) GetByID(id uuid.UUID) (*models.TeamInvitation, error) {
	var invitation models.TeamInvitation
	err := r.db.First(&invitation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetByInvitee retrieves every invitation addressed to a student, oldest first
func (r *InvitationRepository) GetByInvitee(inviteeID uuid.UUID) ([]models.TeamInvitation, error) {
	var invitations []models.TeamInvitation
	err := r.db.Where("invitee_id = ?", inviteeID).Order("invited_at, id").Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

// GetPending retrieves the pending invitation of a student to a team
func (r *InvitationRepository) GetPending(inviteeID uuid.UUID, teamName string) (*models.TeamInvitation, error) {
	var invitation models.TeamInvitation
	err := r.db.First(&invitation, "invitee_id = ? AND team_name = ? AND status = ?",
		inviteeID, teamName, models.InvitationPending).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// Update saves every column of the invitation
func (r *InvitationRepository) Update(invitation *models.TeamInvitation) error {
	return r.db.Save(invitation).Error
}
