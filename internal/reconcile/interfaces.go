package reconcile

import (
	"context"

	"gradproject-teams/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/reconcile_mocks.go -package=mocks

// ProfileFetcher loads the authoritative profile of a student
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, email string) (*domain.User, error)
}
