package domain

import "strings"

// Status is the lifecycle state shared by team members and invitations
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// IsValid checks if the Status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Member is one entry of a team's member list. Identity is the
// case-normalized email.
type Member struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsLeader  bool   `json:"isLeader"`
	Status    Status `json:"status,omitempty"`
	InvitedBy string `json:"invitedBy,omitempty"`
	InvitedAt string `json:"invitedAt,omitempty"`
}

// Key returns the identity key of the member
func (m Member) Key() string {
	return NormalizeEmail(m.Email)
}

// IsAccepted reports whether the member has joined. Records written before
// statuses existed carry no status and count as accepted.
func (m Member) IsAccepted() bool {
	return m.Status == "" || m.Status == StatusAccepted
}

// NormalizeEmail lower-cases and trims an email for identity comparisons
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Actor identifies the user performing a mutation
type Actor struct {
	UserID string `json:"userId"`
	Email  string `json:"userEmail"`
	Name   string `json:"-"`
}

// DirectoryEntry is the result of a directory lookup by email: the student
// record together with the team they currently belong to, if any.
type DirectoryEntry struct {
	ID           string   `json:"_id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	GroupName    string   `json:"groupName"`
	GroupMembers []Member `json:"groupMembers"`
}

// HasTeam reports whether the student already belongs to a team
func (d DirectoryEntry) HasTeam() bool {
	return len(d.GroupMembers) > 0
}

// Team returns the student's stored team
func (d DirectoryEntry) Team() Team {
	return Team{Name: d.GroupName, Members: CloneMembers(d.GroupMembers)}
}
