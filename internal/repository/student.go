package repository

import (
	"gradproject-teams/internal/database/models"
	"gradproject-teams/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create creates a new student. The email is stored normalized.
func (r *StudentRepository) Create(student *models.Student) error {
	student.Email = domain.NormalizeEmail(student.Email)
	if student.Role == "" {
		student.Role = models.RoleStudent
	}
	if student.GroupMembers == nil {
		student.GroupMembers = []domain.Member{}
	}
	return r.db.Create(student).Error
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(id uuid.UUID) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByEmail retrieves an account of any role by email
func (r *StudentRepository) GetByEmail(email string) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, "email = ?", domain.NormalizeEmail(email)).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetStudentByEmail retrieves an account with the student role by email
func (r *StudentRepository) GetStudentByEmail(email string) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, "email = ? AND role = ?", domain.NormalizeEmail(email), models.RoleStudent).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByEmails retrieves every student whose email is in emails. Unknown
// emails are skipped.
func (r *StudentRepository) GetByEmails(emails []string) ([]models.Student, error) {
	return r.findByEmails(r.db, emails)
}

// LockByEmails is GetByEmails taking row locks until the surrounding
// transaction ends. SQLite ignores the lock and serializes writers instead.
func (r *StudentRepository) LockByEmails(emails []string) ([]models.Student, error) {
	return r.findByEmails(r.db.Clauses(clause.Locking{Strength: "UPDATE"}), emails)
}

func (r *StudentRepository) findByEmails(db *gorm.DB, emails []string) ([]models.Student, error) {
	if len(emails) == 0 {
		return []models.Student{}, nil
	}
	normalized := make([]string, 0, len(emails))
	for _, e := range emails {
		normalized = append(normalized, domain.NormalizeEmail(e))
	}

	var students []models.Student
	err := db.Where("email IN ?", normalized).Order("email").Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

// GetProfile retrieves a student with its saved ideas and invitations
func (r *StudentRepository) GetProfile(email string) (*models.Student, error) {
	var student models.Student
	err := r.db.
		Preload("SavedIdeas", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, idea_id") }).
		Preload("Invitations", func(db *gorm.DB) *gorm.DB { return db.Order("invited_at, id") }).
		First(&student, "email = ?", domain.NormalizeEmail(email)).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Update saves every column of the student
func (r *StudentRepository) Update(student *models.Student) error {
	return r.db.Omit("SavedIdeas", "Invitations").Save(student).Error
}
