package invitation

import (
	"context"

	"gradproject-teams/internal/controls"
	"gradproject-teams/internal/domain"
	apperrors "gradproject-teams/internal/errors"
	"gradproject-teams/internal/logger"
	"gradproject-teams/internal/session"
)

// Queue holds the invitations addressed to the signed-in student. Only
// pending invitations can be answered; answered ones stay in the list with
// their final status.
type Queue struct {
	session *session.Session
	service InvitationService
	guard   *controls.Guard
	log     *logger.Logger
}

// NewQueue creates a new invitation queue
func NewQueue(sess *session.Session, service InvitationService, guard *controls.Guard) *Queue {
	return &Queue{
		session: sess,
		service: service,
		guard:   guard,
		log:     logger.Component("invitation"),
	}
}

// All returns every known invitation
func (q *Queue) All() []domain.Invitation {
	return q.session.User().TeamInvitations
}

// Pending returns the invitations that can still be answered
func (q *Queue) Pending() []domain.Invitation {
	return domain.PendingInvitations(q.All())
}

// Refresh reloads the invitation list from the server
func (q *Queue) Refresh(ctx context.Context) error {
	invitations, err := q.service.ListInvitations(ctx, q.session.Actor())
	if err != nil {
		return err
	}
	if err := q.session.UpdateUser(session.InvitationsPartial(invitations)); err != nil {
		q.log.WithContext(ctx).WithError(err).Debug("Discarding invitation list for closed session")
	}
	return nil
}

// Accept accepts a pending invitation. Joining the team happens on the
// server and shows up on the next reconciliation.
func (q *Queue) Accept(ctx context.Context, id string) (*domain.Invitation, error) {
	return q.respond(ctx, id, true)
}

// Decline rejects a pending invitation
func (q *Queue) Decline(ctx context.Context, id string) (*domain.Invitation, error) {
	return q.respond(ctx, id, false)
}

func (q *Queue) respond(ctx context.Context, id string, accept bool) (*domain.Invitation, error) {
	release, err := q.guard.TryAcquire(controls.InvitationKey(id))
	if err != nil {
		return nil, err
	}
	defer release()

	current := q.All()
	idx := indexOf(current, id)
	if idx < 0 {
		return nil, apperrors.ErrInvitationNotFound
	}
	if !current[idx].IsPending() {
		return nil, apperrors.ErrInvitationFinal
	}

	log := q.log.WithContext(ctx).WithFields(map[string]interface{}{
		"invitation": id,
		"accept":     accept,
	})

	answered, err := q.service.RespondToInvitation(ctx, q.session.Actor(), id, accept)
	if err != nil {
		log.WithError(err).Warn("Failed to answer invitation")
		return nil, err
	}

	final := current[idx]
	final.Status = domain.StatusRejected
	if accept {
		final.Status = domain.StatusAccepted
	}
	if answered != nil && answered.Status != "" && answered.Status != domain.StatusPending {
		final.Status = answered.Status
	}

	// re-read so a reconciliation that landed during the call is not undone
	latest := q.All()
	if i := indexOf(latest, id); i >= 0 {
		latest[i] = final
	} else {
		latest = append(latest, final)
	}
	if err := q.session.UpdateUser(session.InvitationsPartial(latest)); err != nil {
		log.WithError(err).Debug("Discarding invitation answer for closed session")
	}

	log.Info("Invitation answered")
	return &final, nil
}

func indexOf(invitations []domain.Invitation, id string) int {
	for i, inv := range invitations {
		if inv.ID == id {
			return i
		}
	}
	return -1
}
