package testutils

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"gradproject-teams/internal/database/models"
	"gradproject-teams/internal/domain"

	"github.com/google/uuid"
)

var factorySeq atomic.Int64

func nextSeq() int64 {
	return factorySeq.Add(1)
}

// StudentFactory provides methods to create test Student data
type StudentFactory struct {
	Domain string
}

// NewStudentFactory creates a new StudentFactory
func NewStudentFactory() *StudentFactory {
	return &StudentFactory{Domain: "stu.bu.edu.sa"}
}

// Create creates a test Student with default values and no team
func (f *StudentFactory) Create() *models.Student {
	n := nextSeq()
	return &models.Student{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        fmt.Sprintf("student%d@%s", n, f.Domain),
		Name:         fmt.Sprintf("Student %d", n),
		Role:         models.RoleStudent,
		GroupMembers: []domain.Member{},
	}
}

// WithName creates a student whose email is derived from name
func (f *StudentFactory) WithName(name string) *models.Student {
	s := f.Create()
	s.Name = name
	s.Email = strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@" + f.Domain
	return s
}

// Member returns the team member entry for a student
func (f *StudentFactory) Member(s *models.Student, leader bool) domain.Member {
	return domain.Member{
		ID:       s.ID.String(),
		Name:     s.Name,
		Email:    s.Email,
		IsLeader: leader,
		Status:   domain.StatusAccepted,
	}
}

// Team builds a team from students, the first one leading it
func (f *StudentFactory) Team(name string, students ...*models.Student) domain.Team {
	team := domain.Team{Name: name, Members: make([]domain.Member, 0, len(students))}
	for i, s := range students {
		team.Members = append(team.Members, f.Member(s, i == 0))
	}
	return team
}

// SavedIdeaFactory provides methods to create test SavedIdea data
type SavedIdeaFactory struct{}

// NewSavedIdeaFactory creates a new SavedIdeaFactory
func NewSavedIdeaFactory() *SavedIdeaFactory {
	return &SavedIdeaFactory{}
}

// Create creates a visible idea saved by studentID
func (f *SavedIdeaFactory) Create(studentID uuid.UUID, ideaID string) *models.SavedIdea {
	return &models.SavedIdea{
		StudentID: studentID,
		IdeaID:    ideaID,
		Title:     "Idea " + ideaID,
		Analysis:  `{"score":7}`,
		Visible:   true,
	}
}

// Hidden creates a hidden idea saved by studentID
func (f *SavedIdeaFactory) Hidden(studentID uuid.UUID, ideaID string) *models.SavedIdea {
	idea := f.Create(studentID, ideaID)
	idea.Visible = false
	return idea
}

// InvitationFactory provides methods to create test TeamInvitation data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a pending invitation for invitee to the inviter's team
func (f *InvitationFactory) Create(invitee, inviter *models.Student, team domain.Team) *models.TeamInvitation {
	return &models.TeamInvitation{
		InviteeID:     invitee.ID,
		InviteeEmail:  invitee.Email,
		TeamName:      team.Name,
		InvitedBy:     inviter.Email,
		InvitedByName: inviter.Name,
		InvitedAt:     time.Now().UTC(),
		Status:        models.InvitationPending,
		Members:       domain.CloneMembers(team.Members),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Student    *StudentFactory
	SavedIdea  *SavedIdeaFactory
	Invitation *InvitationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Student:    NewStudentFactory(),
		SavedIdea:  NewSavedIdeaFactory(),
		Invitation: NewInvitationFactory(),
	}
}
