package invitation

import (
	"context"

	"gradproject-teams/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/invitation_mocks.go -package=mocks

// InvitationService reads and answers invitations on the server
type InvitationService interface {
	ListInvitations(ctx context.Context, actor domain.Actor) ([]domain.Invitation, error)
	RespondToInvitation(ctx context.Context, actor domain.Actor, invitationID string, accept bool) (*domain.Invitation, error)
}
