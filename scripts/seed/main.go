package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gradproject-teams/internal/config"
	"gradproject-teams/internal/database"
	"gradproject-teams/internal/database/models"
	"gradproject-teams/internal/domain"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed files
type StudentData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  string `yaml:"role,omitempty"`
}

type TeamMemberData struct {
	Email    string `yaml:"email"`
	IsLeader bool   `yaml:"is_leader,omitempty"`
	Status   string `yaml:"status,omitempty"`
}

type TeamData struct {
	Name    string           `yaml:"name"`
	Members []TeamMemberData `yaml:"members"`
}

type IdeaData struct {
	Email    string `yaml:"email"`
	IdeaID   string `yaml:"idea_id"`
	Title    string `yaml:"title"`
	Analysis string `yaml:"analysis,omitempty"`
	Visible  *bool  `yaml:"visible,omitempty"`
}

type InvitationData struct {
	Team      string `yaml:"team"`
	Invitee   string `yaml:"invitee"`
	InvitedBy string `yaml:"invited_by"`
	Status    string `yaml:"status,omitempty"`
}

type SeedFile struct {
	Students    []StudentData    `yaml:"students"`
	Teams       []TeamData       `yaml:"teams"`
	Ideas       []IdeaData       `yaml:"ideas"`
	Invitations []InvitationData `yaml:"invitations"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, cfg.DatabaseDriver, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}
	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn, driver string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   driver,
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	seed, err := readSeedFiles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to read seed files: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		students := make(map[string]*models.Student)
		created := 0
		for _, data := range seed.Students {
			student, isNew, err := createStudent(tx, data)
			if err != nil {
				return fmt.Errorf("failed to create student %s: %w", data.Email, err)
			}
			students[domain.NormalizeEmail(student.Email)] = student
			if isNew {
				created++
			}
		}
		log.Printf("Students: %d created, %d total", created, len(seed.Students))

		for _, data := range seed.Teams {
			if err := applyTeam(tx, data, students); err != nil {
				return fmt.Errorf("failed to apply team %s: %w", data.Name, err)
			}
		}
		log.Printf("Teams: %d applied", len(seed.Teams))

		created = 0
		for _, data := range seed.Ideas {
			isNew, err := createIdea(tx, data, students)
			if err != nil {
				return fmt.Errorf("failed to create idea %s: %w", data.IdeaID, err)
			}
			if isNew {
				created++
			}
		}
		log.Printf("Saved ideas: %d created, %d total", created, len(seed.Ideas))

		created = 0
		for _, data := range seed.Invitations {
			isNew, err := createInvitation(tx, data, students)
			if err != nil {
				return fmt.Errorf("failed to create invitation for %s: %w", data.Invitee, err)
			}
			if isNew {
				created++
			}
		}
		log.Printf("Invitations: %d created, %d total", created, len(seed.Invitations))
		return nil
	})
}

// readSeedFiles merges every .yaml file under dataDir into one seed
func readSeedFiles(dataDir string) (*SeedFile, error) {
	var all SeedFile

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		all.Students = append(all.Students, file.Students...)
		all.Teams = append(all.Teams, file.Teams...)
		all.Ideas = append(all.Ideas, file.Ideas...)
		all.Invitations = append(all.Invitations, file.Invitations...)
		return nil
	})

	return &all, err
}

func createStudent(db *gorm.DB, data StudentData) (*models.Student, bool, error) {
	email := domain.NormalizeEmail(data.Email)
	if email == "" {
		return nil, false, errors.New("email is required")
	}

	var student models.Student
	err := db.Where("LOWER(email) = ?", email).First(&student).Error
	if err == nil {
		return &student, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query student: %w", err)
	}

	role := models.RoleStudent
	if data.Role != "" {
		role = models.StudentRole(data.Role)
	}
	if !role.IsValid() {
		return nil, false, fmt.Errorf("invalid role %q", data.Role)
	}

	student = models.Student{
		Email:        email,
		Name:         data.Name,
		Role:         role,
		GroupMembers: []domain.Member{},
	}
	if err := db.Create(&student).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create student: %w", err)
	}
	return &student, true, nil
}

// applyTeam writes the team to every accepted member's record
func applyTeam(db *gorm.DB, data TeamData, students map[string]*models.Student) error {
	team := domain.Team{Name: strings.TrimSpace(data.Name)}
	for _, m := range data.Members {
		student := students[domain.NormalizeEmail(m.Email)]
		if student == nil {
			return fmt.Errorf("student %s not found", m.Email)
		}
		status := domain.StatusAccepted
		if m.Status != "" {
			status = domain.Status(m.Status)
		}
		if !status.IsValid() {
			return fmt.Errorf("invalid member status %q", m.Status)
		}
		team.Members = append(team.Members, domain.Member{
			ID:       student.ID.String(),
			Name:     student.Name,
			Email:    student.Email,
			IsLeader: m.IsLeader,
			Status:   status,
		})
	}
	if team.LeaderCount() > 1 {
		return errors.New("a team has at most one leader")
	}

	for _, m := range team.Members {
		if !m.IsAccepted() {
			continue
		}
		student := students[m.Key()]
		student.SetTeam(team)
		if err := db.Model(student).Select("GroupName", "GroupMembers").Updates(student).Error; err != nil {
			return fmt.Errorf("failed to update %s: %w", student.Email, err)
		}
	}
	return nil
}

func createIdea(db *gorm.DB, data IdeaData, students map[string]*models.Student) (bool, error) {
	student := students[domain.NormalizeEmail(data.Email)]
	if student == nil {
		return false, fmt.Errorf("student %s not found", data.Email)
	}

	var idea models.SavedIdea
	err := db.Where("student_id = ? AND idea_id = ?", student.ID, data.IdeaID).First(&idea).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query idea: %w", err)
	}

	visible := true
	if data.Visible != nil {
		visible = *data.Visible
	}
	idea = models.SavedIdea{
		StudentID: student.ID,
		IdeaID:    data.IdeaID,
		Title:     data.Title,
		Analysis:  data.Analysis,
		Visible:   visible,
	}
	if err := db.Create(&idea).Error; err != nil {
		return false, fmt.Errorf("failed to create idea: %w", err)
	}
	return true, nil
}

// createInvitation snapshots the inviter's current team into the invitation
func createInvitation(db *gorm.DB, data InvitationData, students map[string]*models.Student) (bool, error) {
	invitee := students[domain.NormalizeEmail(data.Invitee)]
	if invitee == nil {
		return false, fmt.Errorf("invitee %s not found", data.Invitee)
	}
	inviter := students[domain.NormalizeEmail(data.InvitedBy)]
	if inviter == nil {
		return false, fmt.Errorf("inviter %s not found", data.InvitedBy)
	}

	var existing models.TeamInvitation
	err := db.Where("invitee_id = ? AND team_name = ?", invitee.ID, data.Team).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query invitation: %w", err)
	}

	status := models.InvitationPending
	if data.Status != "" {
		status = models.InvitationStatus(data.Status)
	}
	inv := models.TeamInvitation{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		InviteeID:     invitee.ID,
		InviteeEmail:  invitee.Email,
		TeamName:      data.Team,
		InvitedBy:     inviter.Email,
		InvitedByName: inviter.Name,
		InvitedAt:     time.Now().UTC(),
		Status:        status,
		Members:       domain.CloneMembers(inviter.GroupMembers),
	}
	if err := db.Create(&inv).Error; err != nil {
		return false, fmt.Errorf("failed to create invitation: %w", err)
	}
	return true, nil
}
