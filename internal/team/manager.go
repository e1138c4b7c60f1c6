package team

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"gradproject-teams/internal/controls"
	"gradproject-teams/internal/domain"
	apperrors "gradproject-teams/internal/errors"
	"gradproject-teams/internal/logger"
	"gradproject-teams/internal/session"
)

// Confirmer asks the student to confirm leaving their own team
type Confirmer func(ctx context.Context, team domain.Team) bool

// Options holds the team rules
type Options struct {
	EmailDomain string
	MaxTeamSize int
}

// AddResult is the outcome of AddMember. Added is false when the student was
// already on the team and nothing was sent.
type AddResult struct {
	Member domain.Member
	Added  bool
}

// Manager applies team membership changes for the signed-in student
type Manager struct {
	session   *session.Session
	directory Directory
	store     TeamStore
	guard     *controls.Guard
	validator *validator.Validate
	opts      Options
	now       func() time.Time
	log       *logger.Logger
}

// NewManager creates a new team membership manager
func NewManager(sess *session.Session, directory Directory, store TeamStore, guard *controls.Guard, opts Options) *Manager {
	opts.EmailDomain = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(opts.EmailDomain)), "@")
	return &Manager{
		session:   sess,
		directory: directory,
		store:     store,
		guard:     guard,
		validator: validator.New(),
		opts:      opts,
		now:       time.Now,
		log:       logger.Component("team"),
	}
}

// CanEdit reports whether the signed-in student may change the team. A
// student without a team may start one.
func (m *Manager) CanEdit() bool {
	user := m.session.User()
	team := user.Team()
	if team.IsEmpty() {
		return true
	}
	idx := team.IndexByEmail(user.Email)
	return idx >= 0 && team.Members[idx].IsAccepted()
}

// ValidateEmail checks an email against the institutional pattern
func (m *Manager) ValidateEmail(email string) error {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return apperrors.ErrEmailRequired
	}
	if err := m.validator.Var(email, "required,email"); err != nil {
		return apperrors.NewValidationError("email", "please enter a valid email address")
	}
	if m.opts.EmailDomain != "" && !strings.HasSuffix(email, "@"+m.opts.EmailDomain) {
		return apperrors.ErrInvalidEmailDomain
	}
	return nil
}

// AddMember adds the student with email to the team and pushes the complete
// member list to the server
func (m *Manager) AddMember(ctx context.Context, email string) (*AddResult, error) {
	release, err := m.guard.TryAcquire(controls.KeyAddMember)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := m.ValidateEmail(email); err != nil {
		return nil, err
	}
	email = domain.NormalizeEmail(email)

	user := m.session.User()
	team := user.Team()
	log := m.log.WithContext(ctx).WithField("email", email)

	if !m.CanEdit() {
		return nil, apperrors.ErrNotTeamMember
	}
	if idx := team.IndexByEmail(email); idx >= 0 {
		log.Debug("Student already on the team, nothing to add")
		return &AddResult{Member: team.Members[idx], Added: false}, nil
	}
	if m.opts.MaxTeamSize > 0 && len(team.Members) >= m.opts.MaxTeamSize {
		return nil, apperrors.ErrTeamFull
	}

	candidate, err := m.directory.LookupStudent(ctx, email)
	if err != nil {
		return nil, err
	}
	if current := candidate.Team(); current.ConflictsWith(email, team) {
		log.WithField("current_team", current.Name).Info("Student already belongs to another team")
		return nil, apperrors.NewTeamConflictError(candidate.Name, email, current.Name, current.AcceptedCount())
	}

	member := domain.Member{
		ID:        candidate.ID,
		Name:      candidate.Name,
		Email:     email,
		IsLeader:  team.IsEmpty(),
		Status:    domain.StatusAccepted,
		InvitedBy: user.Email,
		InvitedAt: m.now().UTC().Format(time.RFC3339),
	}
	desired := team.Clone()
	desired.Members = append(desired.Members, member)

	stored, err := m.store.SyncTeam(ctx, user.Actor(), desired)
	if err != nil {
		log.WithError(err).Warn("Failed to add member")
		return nil, err
	}
	m.apply(ctx, *stored)

	if idx := stored.IndexByEmail(email); idx >= 0 {
		member = stored.Members[idx]
	}
	log.Info("Member added to team")
	return &AddResult{Member: member, Added: true}, nil
}

// RemoveMember removes the member with id. Removing yourself requires confirm
// to return true before anything is sent.
func (m *Manager) RemoveMember(ctx context.Context, id string, confirm Confirmer) error {
	release, err := m.guard.TryAcquire(controls.RemoveKey(id))
	if err != nil {
		return err
	}
	defer release()

	user := m.session.User()
	team := user.Team()
	idx := team.IndexByID(id)
	if idx < 0 {
		return apperrors.ErrMemberNotFound
	}
	if !m.CanEdit() {
		return apperrors.ErrNotTeamMember
	}

	member := team.Members[idx]
	leaving := member.Key() == domain.NormalizeEmail(user.Email)
	if leaving && (confirm == nil || !confirm(ctx, team)) {
		return apperrors.ErrRemovalNotConfirmed
	}

	stored, err := m.store.RemoveMember(ctx, user.Actor(), member.Email)
	if err != nil {
		m.log.WithContext(ctx).WithError(err).Warn("Failed to remove member")
		return err
	}

	if leaving {
		m.apply(ctx, domain.Team{Members: []domain.Member{}})
	} else {
		if stored.Name == "" {
			stored.Name = team.Name
		}
		m.apply(ctx, *stored)
	}
	m.log.WithContext(ctx).WithField("email", member.Email).Info("Member removed from team")
	return nil
}

// SetLeader makes the member with id the only leader of the team
func (m *Manager) SetLeader(ctx context.Context, id string) error {
	release, err := m.guard.TryAcquire(controls.KeyLeader)
	if err != nil {
		return err
	}
	defer release()

	user := m.session.User()
	team := user.Team()
	idx := team.IndexByID(id)
	if idx < 0 {
		return apperrors.ErrMemberNotFound
	}
	if !m.CanEdit() {
		return apperrors.ErrNotTeamMember
	}
	if team.Members[idx].IsLeader && team.LeaderCount() == 1 {
		return nil
	}

	stored, err := m.store.UpdateLeader(ctx, user.Actor(), team, id)
	if err != nil {
		m.log.WithContext(ctx).WithError(err).Warn("Failed to transfer leadership")
		return err
	}
	if n := stored.LeaderCount(); n != 1 {
		m.log.WithContext(ctx).WithField("leaders", n).Warn("Server returned a team without exactly one leader")
	}
	if stored.Name == "" {
		stored.Name = team.Name
	}
	m.apply(ctx, *stored)
	return nil
}

// RenameTeam changes the team name through a full team push
func (m *Manager) RenameTeam(ctx context.Context, name string) error {
	release, err := m.guard.TryAcquire(controls.KeyRename)
	if err != nil {
		return err
	}
	defer release()

	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.ErrTeamNameRequired
	}

	user := m.session.User()
	team := user.Team()
	if team.IsEmpty() {
		return apperrors.ErrNotInGroup
	}
	if !m.CanEdit() {
		return apperrors.ErrNotTeamMember
	}
	if team.Name == name {
		return nil
	}

	desired := team.Clone()
	desired.Name = name
	stored, err := m.store.SyncTeam(ctx, user.Actor(), desired)
	if err != nil {
		m.log.WithContext(ctx).WithError(err).Warn("Failed to rename team")
		return err
	}
	m.apply(ctx, *stored)
	return nil
}

// apply installs a server-returned team as the provisional local state.
// Results arriving after the session is closed are dropped.
func (m *Manager) apply(ctx context.Context, team domain.Team) {
	if err := m.session.UpdateUser(session.TeamPartial(team)); err != nil {
		m.log.WithContext(ctx).WithError(err).Debug("Discarding team update for closed session")
	}
}
