package reconcile

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"gradproject-teams/internal/domain"
)

// Kind classifies a team change notification. Kinds are listed in priority
// order.
type Kind string

const (
	KindNewInvitations Kind = "new_invitations"
	KindMembersJoined  Kind = "members_joined"
	KindMembersLeft    Kind = "members_left"
	KindLeaderChanged  Kind = "leader_changed"
	KindTeamRenamed    Kind = "team_renamed"
)

// Notification is the single human-readable message surfaced for one tick
type Notification struct {
	Kind        Kind                `json:"kind"`
	Message     string              `json:"message"`
	Members     []domain.Member     `json:"members,omitempty"`
	Invitations []domain.Invitation `json:"invitations,omitempty"`
}

// Changes lists every difference between two snapshots
type Changes struct {
	NewInvitations []domain.Invitation
	Joined         []domain.Member
	Left           []domain.Member
	NewLeader      *domain.Member
	NewName        string
}

var equalOpts = []cmp.Option{cmpopts.EquateEmpty()}

// SnapshotsEqual reports whether two snapshots hold the same values
func SnapshotsEqual(a, b domain.Snapshot) bool {
	return cmp.Equal(a, b, equalOpts...)
}

// ideasEqual reports whether the idea state of two profiles matches
func ideasEqual(a, b domain.User) bool {
	return a.AgreedIdeaID == b.AgreedIdeaID && cmp.Equal(a.SavedIdeas, b.SavedIdeas, equalOpts...)
}

// Compare computes the changes from prev to next
func Compare(prev, next domain.Snapshot) Changes {
	var c Changes

	seen := make(map[string]struct{}, len(prev.TeamInvitations))
	for _, inv := range prev.TeamInvitations {
		seen[inv.ID] = struct{}{}
	}
	for _, inv := range next.TeamInvitations {
		if _, ok := seen[inv.ID]; !ok && inv.IsPending() {
			c.NewInvitations = append(c.NewInvitations, inv)
		}
	}

	prevTeam, nextTeam := prev.Team(), next.Team()
	for _, m := range next.GroupMembers {
		if !prevTeam.Contains(m.Email) {
			c.Joined = append(c.Joined, m)
		}
	}
	for _, m := range prev.GroupMembers {
		if !nextTeam.Contains(m.Email) {
			c.Left = append(c.Left, m)
		}
	}

	oldLeader, hadLeader := prevTeam.Leader()
	if leader, ok := nextTeam.Leader(); ok && (!hadLeader || oldLeader.Key() != leader.Key()) {
		c.NewLeader = &leader
	}

	if next.GroupName != "" && next.GroupName != prev.GroupName {
		c.NewName = next.GroupName
	}
	return c
}

// Notify picks the highest-priority change. ok is false when none of the
// changes deserve a message.
func (c Changes) Notify() (Notification, bool) {
	switch {
	case len(c.NewInvitations) > 0:
		return Notification{
			Kind:        KindNewInvitations,
			Message:     fmt.Sprintf("You have %d new team invitation(s)!", len(c.NewInvitations)),
			Invitations: c.NewInvitations,
		}, true
	case len(c.Joined) > 0:
		return Notification{
			Kind:    KindMembersJoined,
			Message: fmt.Sprintf("%s joined the team!", names(c.Joined)),
			Members: c.Joined,
		}, true
	case len(c.Left) > 0:
		return Notification{
			Kind:    KindMembersLeft,
			Message: fmt.Sprintf("%s left the team!", names(c.Left)),
			Members: c.Left,
		}, true
	case c.NewLeader != nil:
		return Notification{
			Kind:    KindLeaderChanged,
			Message: fmt.Sprintf("%s is now the team leader!", displayName(*c.NewLeader)),
			Members: []domain.Member{*c.NewLeader},
		}, true
	case c.NewName != "":
		return Notification{
			Kind:    KindTeamRenamed,
			Message: fmt.Sprintf("Team name updated: %q", c.NewName),
		}, true
	}
	return Notification{}, false
}

func names(members []domain.Member) string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, displayName(m))
	}
	return strings.Join(out, ", ")
}

func displayName(m domain.Member) string {
	if m.Name != "" {
		return m.Name
	}
	return m.Email
}
