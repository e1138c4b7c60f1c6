package repository

import (
	"gradproject-teams/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// StudentRepositoryInterface defines the interface for student repository operations
type StudentRepositoryInterface interface {
	Create(student *models.Student) error
	GetByID(id uuid.UUID) (*models.Student, error)
	GetByEmail(email string) (*models.Student, error)
	GetStudentByEmail(email string) (*models.Student, error)
	GetByEmails(emails []string) ([]models.Student, error)
	LockByEmails(emails []string) ([]models.Student, error)
	GetProfile(email string) (*models.Student, error)
	Update(student *models.Student) error
}

// SavedIdeaRepositoryInterface defines the interface for saved idea repository operations
type SavedIdeaRepositoryInterface interface {
	Create(idea *models.SavedIdea) error
	GetByStudentID(studentID uuid.UUID) ([]models.SavedIdea, error)
	GetByStudentAndIdea(studentID uuid.UUID, ideaID string) (*models.SavedIdea, error)
	Update(idea *models.SavedIdea) error
}

// InvitationRepositoryInterface defines the interface for team invitation repository operations
type InvitationRepositoryInterface interface {
	Create(invitation *models.TeamInvitation) error
	GetByID(id uuid.UUID) (*models.TeamInvitation, error)
	GetByInvitee(inviteeID uuid.UUID) ([]models.TeamInvitation, error)
	GetPending(inviteeID uuid.UUID, teamName string) (*models.TeamInvitation, error)
	Update(invitation *models.TeamInvitation) error
}
