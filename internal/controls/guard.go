package controls

import (
	"sync"

	apperrors "gradproject-teams/internal/errors"
)

// Control keys. A key stands for one triggering control; while an action
// holding the key is outstanding the control is disabled.
const (
	KeyAddMember = "team:add"
	KeyLeader    = "team:leader"
	KeyRename    = "team:rename"
	KeyAgreement = "idea:agreement"
)

// RemoveKey is the key of the remove control on one member row
func RemoveKey(memberID string) string {
	return "team:remove:" + memberID
}

// IdeaKey is the key of one idea row
func IdeaKey(ideaID string) string {
	return "idea:" + ideaID
}

// InvitationKey is the key of one invitation row
func InvitationKey(invitationID string) string {
	return "invitation:" + invitationID
}

// Guard tracks which controls have an outstanding call
type Guard struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

// NewGuard creates an empty guard
func NewGuard() *Guard {
	return &Guard{busy: make(map[string]struct{})}
}

// TryAcquire marks all keys busy, or none of them if any is already busy.
// The returned release function frees the keys and is safe to call twice.
func (g *Guard) TryAcquire(keys ...string) (func(), error) {
	keys = dedupe(keys)

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, k := range keys {
		if _, ok := g.busy[k]; ok {
			return nil, apperrors.ErrControlBusy
		}
	}
	for _, k := range keys {
		g.busy[k] = struct{}{}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			for _, k := range keys {
				delete(g.busy, k)
			}
		})
	}, nil
}

// Busy reports whether the control identified by key is disabled
func (g *Guard) Busy(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.busy[key]
	return ok
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := keys[:0:0]
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
