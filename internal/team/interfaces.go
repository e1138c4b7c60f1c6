package team

import (
	"context"

	"gradproject-teams/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/team_mocks.go -package=mocks

// Directory resolves university emails to student records
type Directory interface {
	LookupStudent(ctx context.Context, email string) (*domain.DirectoryEntry, error)
}

// TeamStore persists team state on the server. Every call carries or returns a
// complete team snapshot.
type TeamStore interface {
	SyncTeam(ctx context.Context, actor domain.Actor, team domain.Team) (*domain.Team, error)
	RemoveMember(ctx context.Context, actor domain.Actor, email string) (*domain.Team, error)
	UpdateLeader(ctx context.Context, actor domain.Actor, team domain.Team, leaderID string) (*domain.Team, error)
}
