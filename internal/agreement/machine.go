package agreement

import (
	"context"

	"gradproject-teams/internal/controls"
	"gradproject-teams/internal/domain"
	apperrors "gradproject-teams/internal/errors"
	"gradproject-teams/internal/logger"
	"gradproject-teams/internal/session"
)

// Machine drives the team's agreed idea. It moves between no agreement and
// Agreed(id) and is the only writer of the agreed flags on saved ideas.
type Machine struct {
	session   *session.Session
	service   IdeaService
	refresher Refresher
	guard     *controls.Guard
	log       *logger.Logger
}

// NewMachine creates a new agreement state machine. refresher may be nil.
func NewMachine(sess *session.Session, service IdeaService, refresher Refresher, guard *controls.Guard) *Machine {
	return &Machine{
		session:   sess,
		service:   service,
		refresher: refresher,
		guard:     guard,
		log:       logger.Component("agreement"),
	}
}

// Agreed returns the id of the agreed idea, if there is one
func (m *Machine) Agreed() (string, bool) {
	id := m.session.User().AgreedIdeaID
	return id, id != ""
}

// CanToggle reports whether the visibility of ideaID may be changed
func (m *Machine) CanToggle(ideaID string) bool {
	user := m.session.User()
	idx := user.IdeaIndex(ideaID)
	if idx < 0 {
		return false
	}
	idea := user.SavedIdeas[idx]
	return !idea.IsAgreed && !idea.Visibility.Forced() && !m.guard.Busy(controls.IdeaKey(ideaID))
}

// Agree makes ideaID the team's agreed idea. The idea is forced visible and
// its previous visibility is kept for RemoveAgreement.
func (m *Machine) Agree(ctx context.Context, ideaID string) error {
	release, err := m.guard.TryAcquire(controls.KeyAgreement, controls.IdeaKey(ideaID))
	if err != nil {
		return err
	}
	defer release()

	user := m.session.User()
	if len(user.GroupMembers) == 0 {
		return apperrors.ErrNotInGroup
	}
	if user.AgreedIdeaID != "" {
		return apperrors.ErrAgreementExists
	}
	idx := user.IdeaIndex(ideaID)
	if idx < 0 {
		return apperrors.ErrIdeaNotFound
	}

	target := user.SavedIdeas[idx].Visibility
	prior := target.Visible()
	if p, ok := target.Prior(); ok {
		prior = p
	}

	log := m.log.WithContext(ctx).WithField("idea", ideaID)
	if err := m.service.AgreeIdea(ctx, user.Actor(), ideaID); err != nil {
		log.WithError(err).Warn("Failed to agree on idea")
		return err
	}

	ideas := domain.CloneIdeas(user.SavedIdeas)
	for i := range ideas {
		if i == idx {
			ideas[i].IsAgreed = true
			ideas[i].Visibility = domain.ForcedByAgreement(prior)
			continue
		}
		ideas[i].IsAgreed = false
		ideas[i].Visibility = ideas[i].Visibility.Restore()
	}
	m.publish(ctx, ideas, ideaID)

	log.WithField("previous_visible", prior).Info("Idea agreed")
	return nil
}

// RemoveAgreement clears the agreed idea and restores its visibility
func (m *Machine) RemoveAgreement(ctx context.Context) error {
	agreedID := m.session.User().AgreedIdeaID
	if agreedID == "" {
		return apperrors.ErrNoAgreement
	}

	release, err := m.guard.TryAcquire(controls.KeyAgreement, controls.IdeaKey(agreedID))
	if err != nil {
		return err
	}
	defer release()

	user := m.session.User()
	if user.AgreedIdeaID == "" {
		return apperrors.ErrNoAgreement
	}

	log := m.log.WithContext(ctx).WithField("idea", user.AgreedIdeaID)
	if err := m.service.RemoveAgreement(ctx, user.Actor()); err != nil {
		log.WithError(err).Warn("Failed to remove agreement")
		return err
	}

	ideas := domain.CloneIdeas(user.SavedIdeas)
	for i := range ideas {
		ideas[i].IsAgreed = false
		ideas[i].Visibility = ideas[i].Visibility.Restore()
	}
	m.publish(ctx, ideas, "")

	log.Info("Agreement removed")
	return nil
}

// ToggleVisibility flips the visible flag of one idea and returns the new
// value. Agreed ideas are locked visible.
func (m *Machine) ToggleVisibility(ctx context.Context, ideaID string) (bool, error) {
	release, err := m.guard.TryAcquire(controls.IdeaKey(ideaID))
	if err != nil {
		return false, err
	}
	defer release()

	user := m.session.User()
	idx := user.IdeaIndex(ideaID)
	if idx < 0 {
		return false, apperrors.ErrIdeaNotFound
	}
	idea := user.SavedIdeas[idx]
	if idea.IsAgreed || idea.Visibility.Forced() {
		return false, apperrors.ErrVisibilityLocked
	}

	next := idea.Visibility.Toggle()
	if err := m.service.UpdateIdeaVisibility(ctx, user.Actor(), ideaID, next.Visible()); err != nil {
		m.log.WithContext(ctx).WithError(err).WithField("idea", ideaID).Warn("Failed to update idea visibility")
		return idea.Visibility.Visible(), err
	}

	latest := m.session.User()
	ideas := domain.CloneIdeas(latest.SavedIdeas)
	if i := latest.IdeaIndex(ideaID); i >= 0 {
		ideas[i].Visibility = next
	}
	if err := m.session.UpdateUser(session.Partial{SavedIdeas: &ideas}); err != nil {
		m.log.WithContext(ctx).WithError(err).Debug("Discarding visibility update for closed session")
	}
	return next.Visible(), nil
}

func (m *Machine) publish(ctx context.Context, ideas []domain.SavedIdea, agreedID string) {
	if err := m.session.UpdateUser(session.IdeasPartial(ideas, agreedID)); err != nil {
		m.log.WithContext(ctx).WithError(err).Debug("Discarding agreement update for closed session")
		return
	}
	if m.refresher != nil {
		m.refresher.RefreshSoon()
	}
}
