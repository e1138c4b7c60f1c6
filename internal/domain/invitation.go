package domain

// Invitation is an offer to join a team. Members is a snapshot of the team at
// invite time and does not follow the live team.
type Invitation struct {
	ID            string   `json:"id"`
	TeamName      string   `json:"teamName"`
	InvitedBy     string   `json:"invitedBy"`
	InvitedByName string   `json:"invitedByName"`
	InvitedAt     string   `json:"invitedAt"`
	Status        Status   `json:"status"`
	Members       []Member `json:"members"`
}

// IsPending reports whether the invitation can still be acted on
func (i Invitation) IsPending() bool {
	return i.Status == StatusPending
}

// PendingInvitations filters invitations down to the actionable ones
func PendingInvitations(invitations []Invitation) []Invitation {
	out := make([]Invitation, 0, len(invitations))
	for _, inv := range invitations {
		if inv.IsPending() {
			out = append(out, inv)
		}
	}
	return out
}

// CloneInvitations deep-copies an invitation slice, preserving nil
func CloneInvitations(invitations []Invitation) []Invitation {
	if invitations == nil {
		return nil
	}
	out := make([]Invitation, len(invitations))
	for i, inv := range invitations {
		inv.Members = CloneMembers(inv.Members)
		out[i] = inv
	}
	return out
}
