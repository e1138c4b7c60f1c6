package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gradproject-teams/internal/database/models"
	"gradproject-teams/internal/domain"
	apperrors "gradproject-teams/internal/errors"
	"gradproject-teams/internal/logger"
	"gradproject-teams/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TeamService handles business logic for team membership. The member list
// is replicated onto every accepted member; each mutation rewrites all
// copies in one transaction.
type TeamService struct {
	repos       *repository.Repositories
	directory   DirectoryInterface
	validator   *validator.Validate
	maxTeamSize int
}

// NewTeamService creates a new team service. directory may be nil.
func NewTeamService(repos *repository.Repositories, directory DirectoryInterface, validator *validator.Validate, maxTeamSize int) *TeamService {
	return &TeamService{
		repos:       repos,
		directory:   directory,
		validator:   validator,
		maxTeamSize: maxTeamSize,
	}
}

// GetStudent looks a student up by email. Missing names are filled from the
// directory when one is configured.
func (s *TeamService) GetStudent(ctx context.Context, email string) (*domain.DirectoryEntry, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}

	student, err := s.repos.Students.GetStudentByEmail(email)
	if err != nil {
		return nil, lookupFailed(err, apperrors.ErrStudentNotFound, "get student")
	}

	entry := student.ToDirectoryEntry()
	if entry.Name == "" && s.directory != nil {
		if name, err := s.directory.LookupName(ctx, email); err == nil && name != "" {
			entry.Name = name
		}
	}
	return &entry, nil
}

// GetProfile returns the profile polled by clients: team, invitations and
// saved ideas
func (s *TeamService) GetProfile(ctx context.Context, email string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.ErrEmailRequired
	}
	student, err := s.repos.Students.GetProfile(email)
	if err != nil {
		return nil, lookupFailed(err, apperrors.ErrUserNotFound, "get profile")
	}
	user := student.ToDomain()
	return &user, nil
}

// SyncTeam stores the full team sent by a member. Accepted members receive
// the team; pending members receive an invitation. Accepted members already
// on an unrelated team are reported as conflicts and nothing is written.
func (s *TeamService) SyncTeam(ctx context.Context, req *SyncTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	team := domain.Team{Name: strings.TrimSpace(req.GroupName), Members: domain.CloneMembers(req.GroupMembers)}
	if !team.Contains(req.UserEmail) {
		return nil, apperrors.ErrNotTeamMember
	}
	if team.AcceptedCount() > s.maxTeamSize {
		return nil, apperrors.ErrTeamFull
	}
	if team.LeaderCount() > 1 {
		return nil, apperrors.NewValidationError("groupMembers", "a team has at most one leader")
	}

	students, err := s.repos.Students.GetByEmails(team.Emails())
	if err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}
	byEmail := indexStudents(students)

	var conflicts []apperrors.ConflictingMember
	for i, m := range team.Members {
		st, ok := byEmail[m.Key()]
		if !ok {
			continue
		}
		if team.Members[i].ID == "" {
			team.Members[i].ID = st.ID.String()
		}
		current := st.Team()
		if m.IsAccepted() && current.ConflictsWith(st.Email, team) {
			conflicts = append(conflicts, apperrors.ConflictingMember{
				Email:       st.Email,
				Name:        st.Name,
				CurrentTeam: current.Name,
				TeamSize:    current.AcceptedCount(),
			})
		}
	}
	if len(conflicts) > 0 {
		logger.WithContext(ctx).WithField("conflicts", len(conflicts)).Warn("Team sync rejected, members already in another team")
		return nil, apperrors.NewConflictError(apperrors.ErrMemberInOtherTeam.Message, conflicts...)
	}

	actor := byEmail[domain.NormalizeEmail(req.UserEmail)]
	var results []SyncResult
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		var err error
		if results, err = writeTeam(tx, students, team); err != nil {
			return err
		}
		for _, m := range team.Members {
			st, ok := byEmail[m.Key()]
			if !ok || m.IsAccepted() {
				continue
			}
			if err := ensureInvitation(tx, st, actor, team, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team":    team.Name,
		"members": len(team.Members),
	}).Info("Team synced")
	return teamResponse(team, results), nil
}

// ensureInvitation creates a pending invitation for a pending member unless
// one to the same team already exists
func ensureInvitation(tx *repository.Repositories, invitee, actor *models.Student, team domain.Team, m domain.Member) error {
	_, err := tx.Invitations.GetPending(invitee.ID, team.Name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check invitations: %w", err)
	}

	inv := &models.TeamInvitation{
		InviteeID:    invitee.ID,
		InviteeEmail: invitee.Email,
		TeamName:     team.Name,
		InvitedBy:    m.InvitedBy,
		InvitedAt:    time.Now().UTC(),
		Status:       models.InvitationPending,
		Members:      domain.CloneMembers(team.Members),
	}
	if actor != nil {
		if inv.InvitedBy == "" {
			inv.InvitedBy = actor.Email
		}
		inv.InvitedByName = actor.Name
	}
	if err := tx.Invitations.Create(inv); err != nil {
		return fmt.Errorf("failed to create invitation: %w", err)
	}
	return nil
}

// RemoveMember removes a member from the acting student's team. The removed
// student's team is cleared and leadership is not reassigned.
func (s *TeamService) RemoveMember(ctx context.Context, req *RemoveMemberRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	actor, err := s.repos.Students.GetByEmail(req.UserEmail)
	if err != nil {
		return nil, lookupFailed(err, apperrors.ErrUserNotFound, "get user")
	}
	team := actor.Team()
	if team.IsEmpty() {
		return nil, apperrors.ErrNotInGroup
	}
	if !team.Contains(req.MemberEmailToRemove) {
		return nil, apperrors.ErrMemberNotFound
	}

	updated := team.Without(req.MemberEmailToRemove)
	if updated.IsEmpty() {
		updated.Name = ""
	}
	students, err := s.repos.Students.GetByEmails(team.Emails())
	if err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}

	removedKey := domain.NormalizeEmail(req.MemberEmailToRemove)
	var results []SyncResult
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		for i := range students {
			st := &students[i]
			if domain.NormalizeEmail(st.Email) != removedKey {
				continue
			}
			if !st.Team().IsEmpty() && st.Team().Contains(actor.Email) {
				st.SetTeam(domain.Team{})
				if err := tx.Students.Update(st); err != nil {
					return fmt.Errorf("failed to clear team of %s: %w", st.Email, err)
				}
			}
			if inv, err := tx.Invitations.GetPending(st.ID, team.Name); err == nil {
				inv.Status = models.InvitationRejected
				if err := tx.Invitations.Update(inv); err != nil {
					return fmt.Errorf("failed to withdraw invitation: %w", err)
				}
			}
		}
		var err error
		results, err = writeTeam(tx, students, updated)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team":    team.Name,
		"removed": removedKey,
	}).Info("Team member removed")
	return teamResponse(updated, results), nil
}

// UpdateLeader makes the member with NewLeaderID the only leader of the
// acting student's team
func (s *TeamService) UpdateLeader(ctx context.Context, req *UpdateLeaderRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	actor, err := s.repos.Students.GetByEmail(req.UserEmail)
	if err != nil {
		return nil, lookupFailed(err, apperrors.ErrUserNotFound, "get user")
	}
	team := actor.Team()
	if team.IsEmpty() {
		return nil, apperrors.ErrNotInGroup
	}
	updated, ok := team.WithLeader(req.NewLeaderID)
	if !ok {
		return nil, apperrors.ErrMemberNotFound
	}

	students, err := s.repos.Students.GetByEmails(team.Emails())
	if err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}

	var results []SyncResult
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		var err error
		results, err = writeTeam(tx, students, updated)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team":   team.Name,
		"leader": req.NewLeaderID,
	}).Info("Team leader updated")
	return teamResponse(updated, results), nil
}
