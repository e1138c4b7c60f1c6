package session

import (
	"context"
	"sync"

	"gradproject-teams/internal/domain"
	apperrors "gradproject-teams/internal/errors"
	"gradproject-teams/internal/logger"
)

// Partial is a narrow update of the user state. Nil fields are left as they
// are; a non-nil field replaces the whole value.
type Partial struct {
	GroupName       *string
	GroupMembers    *[]domain.Member
	TeamInvitations *[]domain.Invitation
	SavedIdeas      *[]domain.SavedIdea
	// AgreedIdeaID set to "" clears the agreement
	AgreedIdeaID *string
}

// TeamPartial builds a partial replacing the whole team
func TeamPartial(team domain.Team) Partial {
	name := team.Name
	members := domain.CloneMembers(team.Members)
	if members == nil {
		members = []domain.Member{}
	}
	return Partial{GroupName: &name, GroupMembers: &members}
}

// InvitationsPartial builds a partial replacing the invitation list
func InvitationsPartial(invitations []domain.Invitation) Partial {
	cloned := domain.CloneInvitations(invitations)
	if cloned == nil {
		cloned = []domain.Invitation{}
	}
	return Partial{TeamInvitations: &cloned}
}

// IdeasPartial builds a partial replacing the ideas and the agreed idea id
func IdeasPartial(ideas []domain.SavedIdea, agreedIdeaID string) Partial {
	cloned := domain.CloneIdeas(ideas)
	if cloned == nil {
		cloned = []domain.SavedIdea{}
	}
	return Partial{SavedIdeas: &cloned, AgreedIdeaID: &agreedIdeaID}
}

func (p Partial) isEmpty() bool {
	return p.GroupName == nil && p.GroupMembers == nil && p.TeamInvitations == nil &&
		p.SavedIdeas == nil && p.AgreedIdeaID == nil
}

// merge layers next on top of p
func (p Partial) merge(next Partial) Partial {
	if next.GroupName != nil {
		p.GroupName = next.GroupName
	}
	if next.GroupMembers != nil {
		p.GroupMembers = next.GroupMembers
	}
	if next.TeamInvitations != nil {
		p.TeamInvitations = next.TeamInvitations
	}
	if next.SavedIdeas != nil {
		p.SavedIdeas = next.SavedIdeas
	}
	if next.AgreedIdeaID != nil {
		p.AgreedIdeaID = next.AgreedIdeaID
	}
	return p
}

func (p Partial) applyTo(u domain.User) domain.User {
	if p.GroupName != nil {
		u.GroupName = *p.GroupName
	}
	if p.GroupMembers != nil {
		u.GroupMembers = domain.CloneMembers(*p.GroupMembers)
	}
	if p.TeamInvitations != nil {
		u.TeamInvitations = domain.CloneInvitations(*p.TeamInvitations)
	}
	if p.SavedIdeas != nil {
		u.SavedIdeas = domain.CloneIdeas(*p.SavedIdeas)
	}
	if p.AgreedIdeaID != nil {
		u.AgreedIdeaID = *p.AgreedIdeaID
	}
	return u
}

// Session is the application state of one signed-in student. It keeps the
// last confirmed server state and a provisional overlay of local updates on
// top of it. Readers see the overlay applied to the confirmed state.
type Session struct {
	mu        sync.RWMutex
	confirmed domain.User
	overlay   Partial
	closed    bool
	done      chan struct{}
	nextSub   int
	subs      map[int]chan domain.User
	log       *logger.Logger
}

// New starts a session for user
func New(user domain.User) *Session {
	return &Session{
		confirmed: user.Clone(),
		done:      make(chan struct{}),
		subs:      make(map[int]chan domain.User),
		log:       logger.Component("session").WithField("user", user.Email),
	}
}

// User returns the effective user state
func (s *Session) User() domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overlay.applyTo(s.confirmed.Clone())
}

// Confirmed returns the last state confirmed by the server
func (s *Session) Confirmed() domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.confirmed.Clone()
}

// HasProvisional reports whether local updates are waiting for reconciliation
func (s *Session) HasProvisional() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.overlay.isEmpty()
}

// Actor returns the identity of the signed-in student
func (s *Session) Actor() domain.Actor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.confirmed.Actor()
}

// Context attaches the student's email to ctx for request logging
func (s *Session) Context(ctx context.Context) context.Context {
	return logger.ContextWithUser(ctx, s.Actor().Email)
}

// UpdateUser layers a provisional update on top of the confirmed state and
// publishes the new effective state to subscribers.
func (s *Session) UpdateUser(p Partial) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrSessionClosed
	}
	if p.isEmpty() {
		s.mu.Unlock()
		return nil
	}
	s.overlay = s.overlay.merge(p)
	current := s.overlay.applyTo(s.confirmed.Clone())
	s.publishLocked(current)
	s.mu.Unlock()
	return nil
}

// Replace installs a freshly fetched server state wholesale and drops the
// provisional overlay.
func (s *Session) Replace(user domain.User) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrSessionClosed
	}
	s.confirmed = user.Clone()
	s.overlay = Partial{}
	current := s.confirmed.Clone()
	s.publishLocked(current)
	s.mu.Unlock()
	s.log.Debug("Session state replaced from server")
	return nil
}

// Subscribe returns a channel receiving the latest effective state after
// each change. Slow readers only see the most recent state. The returned
// function cancels the subscription.
func (s *Session) Subscribe() (<-chan domain.User, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan domain.User, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if sub, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(sub)
			}
		})
	}
}

func (s *Session) publishLocked(user domain.User) {
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- user.Clone()
	}
}

// Alive reports whether the session is still open
func (s *Session) Alive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed
}

// Done is closed when the session is torn down
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close tears the session down. Later updates are rejected.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
	s.log.Info("Session closed")
}
