package domain

import (
	"encoding/json"
)

// Visibility is either set manually by the student or forced on while the
// idea is the team's agreed idea. A forced visibility remembers the manual
// value to restore when the agreement is removed.
type Visibility struct {
	value  bool
	forced bool
}

// Manual returns a student-controlled visibility
func Manual(visible bool) Visibility {
	return Visibility{value: visible}
}

// ForcedByAgreement returns a visibility forced on by an agreement, keeping
// prior for restoration
func ForcedByAgreement(prior bool) Visibility {
	return Visibility{value: prior, forced: true}
}

// Visible reports whether the idea is currently shown
func (v Visibility) Visible() bool {
	return v.forced || v.value
}

// Forced reports whether an agreement currently forces the idea visible
func (v Visibility) Forced() bool {
	return v.forced
}

// Prior returns the value to restore on un-agreement. ok is false when the
// visibility is not forced.
func (v Visibility) Prior() (prior bool, ok bool) {
	if !v.forced {
		return false, false
	}
	return v.value, true
}

// Restore consumes the forced state and returns the manual visibility it
// replaced. A manual visibility is returned unchanged.
func (v Visibility) Restore() Visibility {
	if v.forced {
		return Manual(v.value)
	}
	return v
}

// Toggle flips a manual visibility. Forced visibilities are returned unchanged.
func (v Visibility) Toggle() Visibility {
	if v.forced {
		return v
	}
	return Manual(!v.value)
}

// Equal reports whether two visibilities are identical
func (v Visibility) Equal(other Visibility) bool {
	return v == other
}

// SavedIdea is a student's saved project idea together with its opaque
// analysis payload.
type SavedIdea struct {
	ID         string
	Title      string
	Analysis   json.RawMessage
	Visibility Visibility
	IsAgreed   bool
}

type savedIdeaJSON struct {
	ID              string          `json:"id,omitempty"`
	MongoID         string          `json:"_id,omitempty"`
	Title           string          `json:"title"`
	Analysis        json.RawMessage `json:"analysis,omitempty"`
	Visible         *bool           `json:"visible"`
	IsAgreed        bool            `json:"is_agreed"`
	PreviousVisible *bool           `json:"_previous_visible,omitempty"`
}

// MarshalJSON writes the wire shape with visible and _previous_visible
func (i SavedIdea) MarshalJSON() ([]byte, error) {
	visible := i.Visibility.Visible()
	out := savedIdeaJSON{
		ID:       i.ID,
		Title:    i.Title,
		Analysis: i.Analysis,
		Visible:  &visible,
		IsAgreed: i.IsAgreed,
	}
	if prior, ok := i.Visibility.Prior(); ok {
		out.PreviousVisible = &prior
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts either id or _id. A missing visible flag means
// visible. _previous_visible is only honoured on an agreed idea.
func (i *SavedIdea) UnmarshalJSON(data []byte) error {
	var in savedIdeaJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	id := in.ID
	if id == "" {
		id = in.MongoID
	}
	visible := true
	if in.Visible != nil {
		visible = *in.Visible
	}

	*i = SavedIdea{
		ID:         id,
		Title:      in.Title,
		Analysis:   in.Analysis,
		Visibility: Manual(visible),
		IsAgreed:   in.IsAgreed,
	}
	if in.IsAgreed && in.PreviousVisible != nil {
		i.Visibility = ForcedByAgreement(*in.PreviousVisible)
	}
	return nil
}

// CloneIdeas deep-copies an idea slice, preserving nil
func CloneIdeas(ideas []SavedIdea) []SavedIdea {
	if ideas == nil {
		return nil
	}
	out := make([]SavedIdea, len(ideas))
	for i, idea := range ideas {
		if idea.Analysis != nil {
			idea.Analysis = append(json.RawMessage(nil), idea.Analysis...)
		}
		out[i] = idea
	}
	return out
}
