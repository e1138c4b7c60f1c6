package domain

// Team is a named, ordered set of members
type Team struct {
	Name    string   `json:"groupName"`
	Members []Member `json:"groupMembers"`
}

// IsEmpty reports whether the team has no members
func (t Team) IsEmpty() bool {
	return len(t.Members) == 0
}

// IndexByEmail returns the position of the member with the given email, or -1
func (t Team) IndexByEmail(email string) int {
	key := NormalizeEmail(email)
	for i, m := range t.Members {
		if m.Key() == key {
			return i
		}
	}
	return -1
}

// IndexByID returns the position of the member with the given id, or -1
func (t Team) IndexByID(id string) int {
	for i, m := range t.Members {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether email is on the member list
func (t Team) Contains(email string) bool {
	return t.IndexByEmail(email) >= 0
}

// Leader returns the current leader, if one is set
func (t Team) Leader() (Member, bool) {
	for _, m := range t.Members {
		if m.IsLeader {
			return m, true
		}
	}
	return Member{}, false
}

// LeaderCount returns how many members carry the leader flag
func (t Team) LeaderCount() int {
	n := 0
	for _, m := range t.Members {
		if m.IsLeader {
			n++
		}
	}
	return n
}

// AcceptedCount returns the number of accepted members
func (t Team) AcceptedCount() int {
	n := 0
	for _, m := range t.Members {
		if m.IsAccepted() {
			n++
		}
	}
	return n
}

// Emails returns the normalized emails of all members
func (t Team) Emails() []string {
	out := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		out = append(out, m.Key())
	}
	return out
}

// Overlaps reports whether any member of t also appears in members
func (t Team) Overlaps(members []Member) bool {
	for _, m := range members {
		if t.Contains(m.Email) {
			return true
		}
	}
	return false
}

// ConflictsWith reports whether t, the stored team of the student with
// email, is a team unrelated to next. A stored team holding only that
// student, or only pending members besides them, is not a team.
func (t Team) ConflictsWith(email string, next Team) bool {
	others := t.Without(email)
	return others.AcceptedCount() > 0 && !others.Overlaps(next.Members)
}

// Clone returns a deep copy of the team
func (t Team) Clone() Team {
	return Team{Name: t.Name, Members: CloneMembers(t.Members)}
}

// WithLeader returns a copy of the team where exactly the member with id is
// the leader. The second return value is false when id is not on the team.
func (t Team) WithLeader(id string) (Team, bool) {
	if t.IndexByID(id) < 0 {
		return t.Clone(), false
	}
	out := t.Clone()
	for i := range out.Members {
		out.Members[i].IsLeader = out.Members[i].ID == id
	}
	return out, true
}

// Without returns a copy of the team with the member identified by email
// removed. Leadership is not reassigned.
func (t Team) Without(email string) Team {
	key := NormalizeEmail(email)
	out := Team{Name: t.Name, Members: make([]Member, 0, len(t.Members))}
	for _, m := range t.Members {
		if m.Key() != key {
			out.Members = append(out.Members, m)
		}
	}
	return out
}

// CloneMembers copies a member slice, preserving nil
func CloneMembers(members []Member) []Member {
	if members == nil {
		return nil
	}
	out := make([]Member, len(members))
	copy(out, members)
	return out
}
