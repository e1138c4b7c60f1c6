package service

import (
	"context"

	"gradproject-teams/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	GetStudent(ctx context.Context, email string) (*domain.DirectoryEntry, error)
	GetProfile(ctx context.Context, email string) (*domain.User, error)
	SyncTeam(ctx context.Context, req *SyncTeamRequest) (*TeamResponse, error)
	RemoveMember(ctx context.Context, req *RemoveMemberRequest) (*TeamResponse, error)
	UpdateLeader(ctx context.Context, req *UpdateLeaderRequest) (*TeamResponse, error)
}

// InvitationServiceInterface defines the interface for invitation service
type InvitationServiceInterface interface {
	ListInvitations(ctx context.Context, userID, email string) ([]domain.Invitation, error)
	Respond(ctx context.Context, req *RespondInvitationRequest, accept bool) (*domain.Invitation, error)
}

// IdeaServiceInterface defines the interface for idea agreement and visibility service
type IdeaServiceInterface interface {
	AgreeIdea(ctx context.Context, req *AgreeIdeaRequest) (*AgreementResponse, error)
	RemoveAgreement(ctx context.Context, req *RemoveAgreementRequest) (*AgreementResponse, error)
	UpdateVisibility(ctx context.Context, req *UpdateVisibilityRequest) error
}

// DirectoryInterface resolves display names from the institutional directory
type DirectoryInterface interface {
	LookupName(ctx context.Context, email string) (string, error)
}
