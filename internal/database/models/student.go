package models

import (
	"gradproject-teams/internal/domain"
)

// Student is a registered account together with the team it belongs to.
// Every member of a team holds its own copy of the member list; team
// mutations rewrite the copy of each member.
type Student struct {
	BaseModel
	Email        string          `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name         string          `json:"name" gorm:"size:200"`
	Role         StudentRole     `json:"role" gorm:"type:varchar(20);not null;index"`
	GroupName    string          `json:"groupName" gorm:"size:100"`
	GroupMembers []domain.Member `json:"groupMembers" gorm:"type:text;serializer:json"`
	AgreedIdeaID string          `json:"agreed_idea_id" gorm:"size:64"`

	// Relationships
	SavedIdeas  []SavedIdea      `json:"savedIdeas,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Invitations []TeamInvitation `json:"teamInvitations,omitempty" gorm:"foreignKey:InviteeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Student
func (Student) TableName() string {
	return "students"
}

// Team returns the student's copy of its team
func (s *Student) Team() domain.Team {
	return domain.Team{Name: s.GroupName, Members: s.GroupMembers}
}

// SetTeam overwrites the student's copy of its team
func (s *Student) SetTeam(team domain.Team) {
	s.GroupName = team.Name
	s.GroupMembers = domain.CloneMembers(team.Members)
	if s.GroupMembers == nil {
		s.GroupMembers = []domain.Member{}
	}
}

// ToDirectoryEntry converts the student to its directory lookup form
func (s *Student) ToDirectoryEntry() domain.DirectoryEntry {
	return domain.DirectoryEntry{
		ID:           s.ID.String(),
		Name:         s.Name,
		Email:        s.Email,
		GroupName:    s.GroupName,
		GroupMembers: nonNilMembers(s.GroupMembers),
	}
}

// ToDomain converts the student and its loaded relations to a profile
func (s *Student) ToDomain() domain.User {
	user := domain.User{
		ID:              s.ID.String(),
		Email:           s.Email,
		Name:            s.Name,
		GroupName:       s.GroupName,
		GroupMembers:    nonNilMembers(s.GroupMembers),
		TeamInvitations: make([]domain.Invitation, 0, len(s.Invitations)),
		SavedIdeas:      make([]domain.SavedIdea, 0, len(s.SavedIdeas)),
		AgreedIdeaID:    s.AgreedIdeaID,
	}
	for i := range s.Invitations {
		user.TeamInvitations = append(user.TeamInvitations, s.Invitations[i].ToDomain())
	}
	for i := range s.SavedIdeas {
		user.SavedIdeas = append(user.SavedIdeas, s.SavedIdeas[i].ToDomain())
	}
	return user
}

func nonNilMembers(members []domain.Member) []domain.Member {
	if members == nil {
		return []domain.Member{}
	}
	return domain.CloneMembers(members)
}
