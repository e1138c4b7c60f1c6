package models

import (
	"encoding/json"

	"github.com/google/uuid"

	"gradproject-teams/internal/domain"
)

// SavedIdea is one student's copy of a saved project idea. Teammates that
// saved the same idea share IdeaID.
type SavedIdea struct {
	BaseModel
	StudentID       uuid.UUID `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_saved_ideas_student_idea"`
	IdeaID          string    `json:"idea_id" gorm:"size:64;not null;uniqueIndex:idx_saved_ideas_student_idea"`
	Title           string    `json:"title" gorm:"size:300"`
	Analysis        string    `json:"analysis" gorm:"type:text"`
	Visible         bool      `json:"visible" gorm:"not null"`
	IsAgreed        bool      `json:"is_agreed" gorm:"not null"`
	PreviousVisible *bool     `json:"_previous_visible,omitempty"`
}

// TableName returns the table name for SavedIdea
func (SavedIdea) TableName() string {
	return "saved_ideas"
}

// ToDomain converts the stored idea to its wire form
func (i *SavedIdea) ToDomain() domain.SavedIdea {
	out := domain.SavedIdea{
		ID:         i.IdeaID,
		Title:      i.Title,
		Visibility: domain.Manual(i.Visible),
		IsAgreed:   i.IsAgreed,
	}
	if i.Analysis != "" {
		out.Analysis = json.RawMessage(i.Analysis)
	}
	if i.IsAgreed && i.PreviousVisible != nil {
		out.Visibility = domain.ForcedByAgreement(*i.PreviousVisible)
	}
	return out
}

// ForceVisible marks the idea agreed and visible, remembering the manual
// value. Calling it on an already agreed idea keeps the first remembered value.
func (i *SavedIdea) ForceVisible() {
	if i.PreviousVisible == nil {
		prev := i.Visible
		i.PreviousVisible = &prev
	}
	i.Visible = true
	i.IsAgreed = true
}

// RestoreVisibility clears the agreement and puts back the manual value
func (i *SavedIdea) RestoreVisibility() {
	if i.PreviousVisible != nil {
		i.Visible = *i.PreviousVisible
	}
	i.PreviousVisible = nil
	i.IsAgreed = false
}
