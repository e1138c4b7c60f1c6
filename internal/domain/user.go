package domain

// User is the profile of the signed-in student as returned by the profile
// endpoint. Team fields and idea fields are both authoritative on the server.
type User struct {
	ID              string       `json:"_id"`
	Email           string       `json:"email"`
	Name            string       `json:"name"`
	GroupName       string       `json:"groupName"`
	GroupMembers    []Member     `json:"groupMembers"`
	TeamInvitations []Invitation `json:"teamInvitations"`
	SavedIdeas      []SavedIdea  `json:"savedIdeas"`
	AgreedIdeaID    string       `json:"agreed_idea_id,omitempty"`
}

// Team returns the team view of the user
func (u User) Team() Team {
	return Team{Name: u.GroupName, Members: u.GroupMembers}
}

// Actor returns the actor identity of the user
func (u User) Actor() Actor {
	return Actor{UserID: u.ID, Email: u.Email, Name: u.Name}
}

// Snapshot returns the team-related fields the reconciliation loop watches
func (u User) Snapshot() Snapshot {
	return Snapshot{
		GroupMembers:    u.GroupMembers,
		GroupName:       u.GroupName,
		TeamInvitations: u.TeamInvitations,
	}
}

// IdeaIndex returns the position of the idea with the given id, or -1
func (u User) IdeaIndex(id string) int {
	for i, idea := range u.SavedIdeas {
		if idea.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the user
func (u User) Clone() User {
	out := u
	out.GroupMembers = CloneMembers(u.GroupMembers)
	out.TeamInvitations = CloneInvitations(u.TeamInvitations)
	out.SavedIdeas = CloneIdeas(u.SavedIdeas)
	return out
}

// Snapshot is the server's view of a user's team state at one poll
type Snapshot struct {
	GroupMembers    []Member     `json:"groupMembers"`
	GroupName       string       `json:"groupName"`
	TeamInvitations []Invitation `json:"teamInvitations"`
}

// Team returns the team view of the snapshot
func (s Snapshot) Team() Team {
	return Team{Name: s.GroupName, Members: s.GroupMembers}
}
