package agreement

import (
	"context"

	"gradproject-teams/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/agreement_mocks.go -package=mocks

// IdeaService persists agreement and visibility changes on the server
type IdeaService interface {
	AgreeIdea(ctx context.Context, actor domain.Actor, ideaID string) error
	RemoveAgreement(ctx context.Context, actor domain.Actor) error
	UpdateIdeaVisibility(ctx context.Context, actor domain.Actor, ideaID string, visible bool) error
}

// Refresher schedules an early reconciliation tick
type Refresher interface {
	RefreshSoon()
}
