package models

import (
	"time"

	"github.com/google/uuid"

	"gradproject-teams/internal/domain"
)

// TeamInvitation is an offer for a student to join a team. Members is the
// team as it stood when the invitation was sent.
type TeamInvitation struct {
	BaseModel
	InviteeID     uuid.UUID        `json:"invitee_id" gorm:"type:uuid;not null;index"`
	InviteeEmail  string           `json:"invitee_email" gorm:"size:255;not null;index"`
	TeamName      string           `json:"teamName" gorm:"size:100"`
	InvitedBy     string           `json:"invitedBy" gorm:"size:255;not null"`
	InvitedByName string           `json:"invitedByName" gorm:"size:200"`
	InvitedAt     time.Time        `json:"invitedAt"`
	Status        InvitationStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	Members       []domain.Member  `json:"members" gorm:"type:text;serializer:json"`
}

// TableName returns the table name for TeamInvitation
func (TeamInvitation) TableName() string {
	return "team_invitations"
}

// ToDomain converts the stored invitation to its wire form
func (i *TeamInvitation) ToDomain() domain.Invitation {
	return domain.Invitation{
		ID:            i.ID.String(),
		TeamName:      i.TeamName,
		InvitedBy:     i.InvitedBy,
		InvitedByName: i.InvitedByName,
		InvitedAt:     i.InvitedAt.UTC().Format(time.RFC3339),
		Status:        domain.Status(i.Status),
		Members:       nonNilMembers(i.Members),
	}
}
