package service

import (
	"context"
	"fmt"

	"gradproject-teams/internal/database/models"
	apperrors "gradproject-teams/internal/errors"
	"gradproject-teams/internal/logger"
	"gradproject-teams/internal/repository"

	"github.com/go-playground/validator/v10"
)

// IdeaService handles the team's agreed idea and per-student idea visibility.
// Teammates share an idea by IdeaID; each keeps their own saved copy.
type IdeaService struct {
	repos     *repository.Repositories
	validator *validator.Validate
}

// NewIdeaService creates a new idea service
func NewIdeaService(repos *repository.Repositories, validator *validator.Validate) *IdeaService {
	return &IdeaService{repos: repos, validator: validator}
}

// AgreeIdea makes IdeaID the agreed idea of the user's whole team. Every
// member's copy of the idea is forced visible and remembers its previous
// visibility.
func (s *IdeaService) AgreeIdea(ctx context.Context, req *AgreeIdeaRequest) (*AgreementResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	user, err := s.actor(req.UserID, req.UserEmail)
	if err != nil {
		return nil, err
	}
	team := user.Team()
	if team.IsEmpty() {
		return nil, apperrors.ErrNotInGroup
	}
	if _, err := s.repos.Ideas.GetByStudentAndIdea(user.ID, req.IdeaID); err != nil {
		return nil, lookupFailed(err, apperrors.ErrIdeaNotFound, "get idea")
	}

	changed := 0
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		members, err := tx.Students.LockByEmails(team.Emails())
		if err != nil {
			return fmt.Errorf("failed to load team members: %w", err)
		}
		for _, m := range members {
			if m.AgreedIdeaID != "" && m.AgreedIdeaID != req.IdeaID {
				return apperrors.ErrIdeaAlreadyAgreed
			}
		}
		for i := range members {
			m := &members[i]
			ideas, err := tx.Ideas.GetByStudentID(m.ID)
			if err != nil {
				return fmt.Errorf("failed to load ideas of %s: %w", m.Email, err)
			}
			for j := range ideas {
				idea := &ideas[j]
				switch {
				case idea.IdeaID == req.IdeaID && !idea.IsAgreed:
					idea.ForceVisible()
				case idea.IdeaID != req.IdeaID && (idea.IsAgreed || idea.PreviousVisible != nil):
					idea.RestoreVisibility()
				default:
					continue
				}
				if err := tx.Ideas.Update(idea); err != nil {
					return fmt.Errorf("failed to update idea: %w", err)
				}
			}
			if m.AgreedIdeaID != req.IdeaID {
				m.AgreedIdeaID = req.IdeaID
				if err := tx.Students.Update(m); err != nil {
					return fmt.Errorf("failed to update %s: %w", m.Email, err)
				}
				changed++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"idea":    req.IdeaID,
		"team":    team.Name,
		"members": changed,
	}).Info("Idea agreed")
	return &AgreementResponse{AgreedIdeaID: req.IdeaID, UpdatedMembers: changed}, nil
}

// RemoveAgreement clears the team's agreed idea and restores each member's
// previous visibility
func (s *IdeaService) RemoveAgreement(ctx context.Context, req *RemoveAgreementRequest) (*AgreementResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	user, err := s.actor(req.UserID, req.UserEmail)
	if err != nil {
		return nil, err
	}
	team := user.Team()
	if team.IsEmpty() {
		return nil, apperrors.ErrNotInGroup
	}
	if user.AgreedIdeaID == "" {
		return nil, apperrors.ErrNoAgreement
	}
	agreed := user.AgreedIdeaID

	changed := 0
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		members, err := tx.Students.LockByEmails(team.Emails())
		if err != nil {
			return fmt.Errorf("failed to load team members: %w", err)
		}
		for i := range members {
			m := &members[i]
			ideas, err := tx.Ideas.GetByStudentID(m.ID)
			if err != nil {
				return fmt.Errorf("failed to load ideas of %s: %w", m.Email, err)
			}
			for j := range ideas {
				idea := &ideas[j]
				if !idea.IsAgreed && idea.PreviousVisible == nil {
					continue
				}
				idea.RestoreVisibility()
				if err := tx.Ideas.Update(idea); err != nil {
					return fmt.Errorf("failed to update idea: %w", err)
				}
			}
			if m.AgreedIdeaID != "" {
				m.AgreedIdeaID = ""
				if err := tx.Students.Update(m); err != nil {
					return fmt.Errorf("failed to update %s: %w", m.Email, err)
				}
				changed++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"idea":    agreed,
		"team":    team.Name,
		"members": changed,
	}).Info("Agreement removed")
	return &AgreementResponse{UpdatedMembers: changed}, nil
}

// UpdateVisibility sets the visible flag of one of the user's saved ideas.
// The agreed idea stays visible until the agreement is removed.
func (s *IdeaService) UpdateVisibility(ctx context.Context, req *UpdateVisibilityRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationFailed(err)
	}

	user, err := s.actor(req.UserID, req.Email)
	if err != nil {
		return err
	}

	idea, err := s.repos.Ideas.GetByStudentAndIdea(user.ID, req.IdeaID)
	if err != nil {
		return lookupFailed(err, apperrors.ErrIdeaNotFound, "get idea")
	}
	if idea.IsAgreed {
		return apperrors.ErrVisibilityLocked
	}
	if idea.Visible == *req.Visible {
		return nil
	}

	idea.Visible = *req.Visible
	if err := s.repos.Ideas.Update(idea); err != nil {
		return fmt.Errorf("failed to update idea: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"idea":    req.IdeaID,
		"visible": idea.Visible,
	}).Debug("Idea visibility updated")
	return nil
}

// actor loads the acting student and rejects a userId that belongs to
// someone other than email
func (s *IdeaService) actor(userID, email string) (*models.Student, error) {
	id, err := parseID(userID, apperrors.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	user, err := s.repos.Students.GetByID(id)
	if err != nil {
		return nil, lookupFailed(err, apperrors.ErrUserNotFound, "get user")
	}
	if !sameEmail(user.Email, email) {
		return nil, apperrors.ErrActorMismatch
	}
	return user, nil
}
