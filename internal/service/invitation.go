package service

import (
	"context"
	"errors"
	"fmt"

	"gradproject-teams/internal/database/models"
	"gradproject-teams/internal/domain"
	apperrors "gradproject-teams/internal/errors"
	"gradproject-teams/internal/logger"
	"gradproject-teams/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// InvitationService handles answering team invitations
type InvitationService struct {
	repos       *repository.Repositories
	validator   *validator.Validate
	maxTeamSize int
}

// NewInvitationService creates a new invitation service
func NewInvitationService(repos *repository.Repositories, validator *validator.Validate, maxTeamSize int) *InvitationService {
	return &InvitationService{
		repos:       repos,
		validator:   validator,
		maxTeamSize: maxTeamSize,
	}
}

// ListInvitations returns every invitation addressed to the user, oldest
// first. A non-empty email must belong to that user.
func (s *InvitationService) ListInvitations(ctx context.Context, userID, email string) ([]domain.Invitation, error) {
	id, err := parseID(userID, apperrors.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	user, err := s.repos.Students.GetByID(id)
	if err != nil {
		return nil, lookupFailed(err, apperrors.ErrUserNotFound, "get user")
	}
	if email != "" && !sameEmail(user.Email, email) {
		return nil, apperrors.ErrActorMismatch
	}

	stored, err := s.repos.Invitations.GetByInvitee(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	out := make([]domain.Invitation, 0, len(stored))
	for i := range stored {
		out = append(out, stored[i].ToDomain())
	}
	return out, nil
}

// Respond accepts or rejects a pending invitation. Accepting joins the
// invitee to the inviter's current team; rejecting drops them from it.
func (s *InvitationService) Respond(ctx context.Context, req *RespondInvitationRequest, accept bool) (*domain.Invitation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	userID, err := parseID(req.UserID, apperrors.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	invID, err := parseID(req.InvitationID, apperrors.ErrInvitationNotFound)
	if err != nil {
		return nil, err
	}

	inv, err := s.repos.Invitations.GetByID(invID)
	if err != nil {
		return nil, lookupFailed(err, apperrors.ErrInvitationNotFound, "get invitation")
	}
	if inv.InviteeID != userID {
		return nil, apperrors.ErrNotYourInvite
	}
	if inv.Status.IsFinal() {
		return nil, apperrors.ErrInvitationFinal
	}

	invitee, err := s.repos.Students.GetByID(userID)
	if err != nil {
		return nil, lookupFailed(err, apperrors.ErrUserNotFound, "get user")
	}
	if !sameEmail(invitee.Email, req.UserEmail) {
		return nil, apperrors.ErrActorMismatch
	}

	team, err := s.invitingTeam(inv)
	if err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"invitation": inv.ID.String(),
		"team":       team.Name,
	})

	if accept {
		if err := s.accept(inv, invitee, team); err != nil {
			log.WithError(err).Warn("Failed to accept invitation")
			return nil, err
		}
		log.Info("Invitation accepted")
	} else {
		if err := s.reject(inv, invitee, team); err != nil {
			log.WithError(err).Warn("Failed to reject invitation")
			return nil, err
		}
		log.Info("Invitation rejected")
	}

	out := inv.ToDomain()
	return &out, nil
}

// invitingTeam is the inviter's stored team, or the snapshot taken when the
// invitation was sent if the inviter has since left it
func (s *InvitationService) invitingTeam(inv *models.TeamInvitation) (domain.Team, error) {
	snapshot := domain.Team{Name: inv.TeamName, Members: domain.CloneMembers(inv.Members)}
	inviter, err := s.repos.Students.GetByEmail(inv.InvitedBy)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return snapshot, nil
		}
		return domain.Team{}, fmt.Errorf("failed to get inviter: %w", err)
	}
	if current := inviter.Team(); !current.IsEmpty() {
		return current, nil
	}
	return snapshot, nil
}

func (s *InvitationService) accept(inv *models.TeamInvitation, invitee *models.Student, team domain.Team) error {
	if current := invitee.Team(); current.ConflictsWith(invitee.Email, team) {
		return apperrors.NewConflictError("You are already a member of another team", apperrors.ConflictingMember{
			Email:       invitee.Email,
			Name:        invitee.Name,
			CurrentTeam: current.Name,
			TeamSize:    current.AcceptedCount(),
		})
	}

	if team.Without(invitee.Email).AcceptedCount() >= s.maxTeamSize {
		return apperrors.ErrTeamFull
	}

	updated := team.Clone()
	if idx := updated.IndexByEmail(invitee.Email); idx >= 0 {
		updated.Members[idx].Status = domain.StatusAccepted
		if updated.Members[idx].ID == "" {
			updated.Members[idx].ID = invitee.ID.String()
		}
	} else {
		updated.Members = append(updated.Members, domain.Member{
			ID:        invitee.ID.String(),
			Name:      invitee.Name,
			Email:     invitee.Email,
			Status:    domain.StatusAccepted,
			InvitedBy: inv.InvitedBy,
		})
	}

	students, err := s.repos.Students.GetByEmails(updated.Emails())
	if err != nil {
		return fmt.Errorf("failed to load team members: %w", err)
	}
	// members who left since the invitation was sent are not brought back
	for _, st := range students {
		if !sameEmail(st.Email, invitee.Email) && !st.Team().Contains(invitee.Email) {
			updated = updated.Without(st.Email)
		}
	}

	return s.repos.Transaction(func(tx *repository.Repositories) error {
		inv.Status = models.InvitationAccepted
		if err := tx.Invitations.Update(inv); err != nil {
			return fmt.Errorf("failed to update invitation: %w", err)
		}
		_, err := writeTeam(tx, students, updated)
		return err
	})
}

func (s *InvitationService) reject(inv *models.TeamInvitation, invitee *models.Student, team domain.Team) error {
	var students []models.Student
	updated := team
	if team.Contains(invitee.Email) {
		updated = team.Without(invitee.Email)
		var err error
		if students, err = s.repos.Students.GetByEmails(updated.Emails()); err != nil {
			return fmt.Errorf("failed to load team members: %w", err)
		}
	}

	return s.repos.Transaction(func(tx *repository.Repositories) error {
		inv.Status = models.InvitationRejected
		if err := tx.Invitations.Update(inv); err != nil {
			return fmt.Errorf("failed to update invitation: %w", err)
		}
		_, err := writeTeam(tx, students, updated)
		return err
	})
}
