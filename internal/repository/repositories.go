package repository

import (
	"gorm.io/gorm"
)

// Repositories bundles the repositories that share one database handle
type Repositories struct {
	Students    StudentRepositoryInterface
	Ideas       SavedIdeaRepositoryInterface
	Invitations InvitationRepositoryInterface

	db *gorm.DB
}

// NewRepositories creates all repositories on db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Students:    NewStudentRepository(db),
		Ideas:       NewSavedIdeaRepository(db),
		Invitations: NewInvitationRepository(db),
		db:          db,
	}
}

// Transaction runs fn with repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (r *Repositories) Transaction(fn func(tx *Repositories) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
