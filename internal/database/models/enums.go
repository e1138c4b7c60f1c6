package models

// StudentRole distinguishes students from staff accounts sharing the table
type StudentRole string

const (
	RoleStudent    StudentRole = "student"
	RoleSupervisor StudentRole = "supervisor"
)

// InvitationStatus is the lifecycle state of a team invitation
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
)

// IsValid checks if the StudentRole is valid
func (r StudentRole) IsValid() bool {
	switch r {
	case RoleStudent, RoleSupervisor:
		return true
	}
	return false
}

// IsFinal reports whether the invitation has been answered
func (s InvitationStatus) IsFinal() bool {
	return s == InvitationAccepted || s == InvitationRejected
}
