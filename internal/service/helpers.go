package service

import (
	"errors"
	"fmt"

	"gradproject-teams/internal/database/models"
	"gradproject-teams/internal/domain"
	apperrors "gradproject-teams/internal/errors"
	"gradproject-teams/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// validationFailed converts validator output into a ValidationError naming
// the first offending field
func validationFailed(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

// lookupFailed maps a missing record onto notFound and wraps anything else
func lookupFailed(err error, notFound error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func parseID(id string, notFound error) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, notFound
	}
	return parsed, nil
}

func sameTeam(a, b domain.Team) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

// writeTeam stores team as the copy held by every accepted member found in
// students. Students not on the team, and pending members, are left alone.
func writeTeam(tx *repository.Repositories, students []models.Student, team domain.Team) ([]SyncResult, error) {
	results := make([]SyncResult, 0, len(students))
	for i := range students {
		st := &students[i]
		idx := team.IndexByEmail(st.Email)
		if idx < 0 || !team.Members[idx].IsAccepted() {
			continue
		}
		changed := !sameTeam(st.Team(), team)
		if changed {
			st.SetTeam(team)
			if err := tx.Students.Update(st); err != nil {
				return nil, fmt.Errorf("failed to update team of %s: %w", st.Email, err)
			}
		}
		results = append(results, SyncResult{Email: st.Email, Updated: changed})
	}
	return results, nil
}

func teamResponse(team domain.Team, results []SyncResult) *TeamResponse {
	members := team.Members
	if members == nil {
		members = []domain.Member{}
	}
	if results == nil {
		results = []SyncResult{}
	}
	return &TeamResponse{
		GroupName:      team.Name,
		GroupMembers:   members,
		UpdatedMembers: members,
		Results:        results,
	}
}

func indexStudents(students []models.Student) map[string]*models.Student {
	out := make(map[string]*models.Student, len(students))
	for i := range students {
		out[domain.NormalizeEmail(students[i].Email)] = &students[i]
	}
	return out
}

func sameEmail(a, b string) bool {
	return domain.NormalizeEmail(a) == domain.NormalizeEmail(b)
}
