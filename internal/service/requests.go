package service

import (
	"gradproject-teams/internal/domain"
)

// ActorRequest identifies the student performing a mutation
type ActorRequest struct {
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail" validate:"required,email"`
}

// SyncTeamRequest carries the full team as the acting student wants it stored
type SyncTeamRequest struct {
	ActorRequest
	GroupName    string          `json:"groupName" validate:"max=100"`
	GroupMembers []domain.Member `json:"groupMembers" validate:"required,min=1"`
}

// RemoveMemberRequest removes one member from the acting student's team
type RemoveMemberRequest struct {
	ActorRequest
	MemberEmailToRemove string `json:"memberEmailToRemove" validate:"required,email"`
}

// UpdateLeaderRequest makes one member the team leader
type UpdateLeaderRequest struct {
	ActorRequest
	NewLeaderID  string          `json:"newLeaderId" validate:"required"`
	GroupName    string          `json:"groupName"`
	GroupMembers []domain.Member `json:"groupMembers"`
}

// RespondInvitationRequest accepts or rejects an invitation
type RespondInvitationRequest struct {
	UserID       string `json:"userId" validate:"required"`
	UserEmail    string `json:"userEmail" validate:"required,email"`
	InvitationID string `json:"invitationId" validate:"required"`
}

// AgreeIdeaRequest makes an idea the team's agreed idea
type AgreeIdeaRequest struct {
	UserID    string `json:"userId" validate:"required"`
	UserEmail string `json:"userEmail" validate:"required,email"`
	IdeaID    string `json:"ideaId" validate:"required"`
}

// RemoveAgreementRequest clears the team's agreed idea
type RemoveAgreementRequest struct {
	UserID    string `json:"userId" validate:"required"`
	UserEmail string `json:"userEmail" validate:"required,email"`
}

// UpdateVisibilityRequest sets the visible flag of one saved idea
type UpdateVisibilityRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	IdeaID  string `json:"ideaId" validate:"required"`
	Visible *bool  `json:"visible" validate:"required"`
}

// SyncResult reports whether one member's copy of the team changed
type SyncResult struct {
	Email   string `json:"email"`
	Updated bool   `json:"updated"`
}

// TeamResponse is the team as stored after a mutation
type TeamResponse struct {
	GroupName      string          `json:"groupName"`
	GroupMembers   []domain.Member `json:"groupMembers"`
	UpdatedMembers []domain.Member `json:"updatedMembers"`
	Results        []SyncResult    `json:"results"`
}

// AgreementResponse reports the outcome of an agreement change
type AgreementResponse struct {
	AgreedIdeaID   string `json:"agreedIdeaId,omitempty"`
	UpdatedMembers int    `json:"updatedMembers"`
}
