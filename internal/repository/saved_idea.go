package repository

import (
	"gradproject-teams/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedIdeaRepository handles database operations for saved ideas
type SavedIdeaRepository struct {
	db *gorm.DB
}

// NewSavedIdeaRepository creates a new saved idea repository
func NewSavedIdeaRepository(db *gorm.DB) *SavedIdeaRepository {
	return &SavedIdeaRepository{db: db}
}

// Create creates a new saved idea
func (r *SavedIdeaRepository) Create(idea *models.SavedIdea) error {
	return r.db.Create(idea).Error
}

// GetByStudentID retrieves all ideas saved by a student
func (r *SavedIdeaRepository) GetByStudentID(studentID uuid.UUID) ([]models.SavedIdea, error) {
	var ideas []models.SavedIdea
	err := r.db.Where("student_id = ?", studentID).Order("created_at, idea_id").Find(&ideas).Error
	if err != nil {
		return nil, err
	}
	return ideas, nil
}

// GetByStudentAndIdea retrieves one student's copy of an idea
func (r *SavedIdeaRepository) GetByStudentAndIdea(studentID uuid.UUID, ideaID string) (*models.SavedIdea, error) {
	var idea models.SavedIdea
	err := r.db.First(&idea, "student_id = ? AND idea_id = ?", studentID, ideaID).Error
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// Update saves every column of the idea, including false and nil values
func (r *SavedIdeaRepository) Update(idea *models.SavedIdea) error {
	return r.db.Save(idea).Error
}
