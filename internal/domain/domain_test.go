package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTeam() Team {
	return Team{
		Name: "Phoenix",
		Members: []Member{
			{ID: "u1", Name: "Sara", Email: "Sara@stu.bu.edu.sa", IsLeader: true},
			{ID: "u2", Name: "Omar", Email: "omar@stu.bu.edu.sa", Status: StatusAccepted},
			{ID: "u3", Name: "Lina", Email: "lina@stu.bu.edu.sa", Status: StatusPending},
		},
	}
}

func TestTeamLookupsAreCaseInsensitive(t *testing.T) {
	team := sampleTeam()

	assert.True(t, team.Contains("  sara@STU.bu.edu.sa "))
	assert.Equal(t, 1, team.IndexByEmail("OMAR@stu.bu.edu.sa"))
	assert.Equal(t, -1, team.IndexByEmail("nobody@stu.bu.edu.sa"))
	assert.Equal(t, 2, team.IndexByID("u3"))
	assert.Equal(t, []string{"sara@stu.bu.edu.sa", "omar@stu.bu.edu.sa", "lina@stu.bu.edu.sa"}, team.Emails())
}

func TestTeamLeaderAndCounts(t *testing.T) {
	team := sampleTeam()

	leader, ok := team.Leader()
	require.True(t, ok)
	assert.Equal(t, "u1", leader.ID)
	assert.Equal(t, 1, team.LeaderCount())
	assert.Equal(t, 2, team.AcceptedCount())

	_, ok = Team{}.Leader()
	assert.False(t, ok)
	assert.True(t, Team{}.IsEmpty())
}

func TestTeamWithLeader(t *testing.T) {
	team := sampleTeam()

	updated, ok := team.WithLeader("u2")
	require.True(t, ok)
	assert.Equal(t, 1, updated.LeaderCount())
	leader, _ := updated.Leader()
	assert.Equal(t, "u2", leader.ID)

	// the original is untouched
	assert.True(t, team.Members[0].IsLeader)

	_, ok = team.WithLeader("missing")
	assert.False(t, ok)
}

func TestTeamWithoutKeepsLeadership(t *testing.T) {
	team := sampleTeam()

	withoutLeader := team.Without("SARA@stu.bu.edu.sa")
	assert.Len(t, withoutLeader.Members, 2)
	assert.Equal(t, 0, withoutLeader.LeaderCount())
	assert.Len(t, team.Members, 3)
}

func TestTeamOverlaps(t *testing.T) {
	team := sampleTeam()

	assert.True(t, team.Overlaps([]Member{{Email: "x@stu.bu.edu.sa"}, {Email: "LINA@stu.bu.edu.sa"}}))
	assert.False(t, team.Overlaps([]Member{{Email: "x@stu.bu.edu.sa"}}))
}

func TestTeamConflictsWith(t *testing.T) {
	stored := sampleTeam()
	unrelated := Team{Name: "Owls", Members: []Member{{Email: "x@stu.bu.edu.sa"}}}
	shared := Team{Name: "Owls", Members: []Member{{Email: "x@stu.bu.edu.sa"}, {Email: "omar@stu.bu.edu.sa"}}}

	assert.True(t, stored.ConflictsWith("sara@stu.bu.edu.sa", unrelated))
	assert.False(t, stored.ConflictsWith("sara@stu.bu.edu.sa", shared))

	solo := Team{Name: "Solo", Members: []Member{stored.Members[0], stored.Members[2]}}
	assert.False(t, solo.ConflictsWith("SARA@stu.bu.edu.sa", unrelated))
	assert.False(t, Team{}.ConflictsWith("sara@stu.bu.edu.sa", unrelated))
}

func TestStatus(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.False(t, Status("maybe").IsValid())
	assert.True(t, Member{}.IsAccepted())
	assert.False(t, Member{Status: StatusRejected}.IsAccepted())
}

func TestPendingInvitations(t *testing.T) {
	invitations := []Invitation{
		{ID: "a", Status: StatusPending},
		{ID: "b", Status: StatusAccepted},
		{ID: "c", Status: StatusPending},
		{ID: "d", Status: StatusRejected},
	}

	pending := PendingInvitations(invitations)
	require.Len(t, pending, 2)
	assert.Equal(t, "a", pending[0].ID)
	assert.Equal(t, "c", pending[1].ID)
	assert.Empty(t, PendingInvitations(nil))
}

func TestVisibility(t *testing.T) {
	manual := Manual(false)
	assert.False(t, manual.Visible())
	assert.False(t, manual.Forced())
	_, ok := manual.Prior()
	assert.False(t, ok)
	assert.True(t, manual.Toggle().Visible())

	forced := ForcedByAgreement(false)
	assert.True(t, forced.Visible())
	assert.True(t, forced.Forced())
	prior, ok := forced.Prior()
	require.True(t, ok)
	assert.False(t, prior)
	assert.Equal(t, forced, forced.Toggle())

	restored := forced.Restore()
	assert.False(t, restored.Forced())
	assert.False(t, restored.Visible())
	assert.Equal(t, Manual(true), Manual(true).Restore())
	assert.True(t, Manual(true).Equal(Manual(true)))
	assert.False(t, Manual(true).Equal(ForcedByAgreement(true)))
}

func TestSavedIdeaUnmarshal(t *testing.T) {
	t.Run("missing visible defaults to true", func(t *testing.T) {
		var idea SavedIdea
		require.NoError(t, json.Unmarshal([]byte(`{"_id":"i1","title":"Drone mapping"}`), &idea))

		assert.Equal(t, "i1", idea.ID)
		assert.True(t, idea.Visibility.Visible())
		assert.False(t, idea.Visibility.Forced())
	})

	t.Run("id wins over _id", func(t *testing.T) {
		var idea SavedIdea
		require.NoError(t, json.Unmarshal([]byte(`{"id":"a","_id":"b","visible":false}`), &idea))

		assert.Equal(t, "a", idea.ID)
		assert.False(t, idea.Visibility.Visible())
	})

	t.Run("agreed idea keeps previous visibility", func(t *testing.T) {
		var idea SavedIdea
		raw := `{"id":"i2","visible":true,"is_agreed":true,"_previous_visible":false,"analysis":{"score":7}}`
		require.NoError(t, json.Unmarshal([]byte(raw), &idea))

		assert.True(t, idea.IsAgreed)
		assert.Equal(t, ForcedByAgreement(false), idea.Visibility)
		assert.JSONEq(t, `{"score":7}`, string(idea.Analysis))
	})

	t.Run("stray previous visibility on non-agreed idea is ignored", func(t *testing.T) {
		var idea SavedIdea
		require.NoError(t, json.Unmarshal([]byte(`{"id":"i3","visible":false,"_previous_visible":true}`), &idea))

		assert.Equal(t, Manual(false), idea.Visibility)
	})
}

func TestSavedIdeaMarshal(t *testing.T) {
	forced := SavedIdea{ID: "i1", Title: "Smart campus", Visibility: ForcedByAgreement(false), IsAgreed: true}
	data, err := json.Marshal(forced)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"i1","title":"Smart campus","visible":true,"is_agreed":true,"_previous_visible":false}`, string(data))

	manual := SavedIdea{ID: "i2", Title: "Library bot", Visibility: Manual(false)}
	data, err = json.Marshal(manual)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"i2","title":"Library bot","visible":false,"is_agreed":false}`, string(data))
}

func TestUserCloneIsDeep(t *testing.T) {
	user := User{
		ID:              "u1",
		Email:           "sara@stu.bu.edu.sa",
		GroupName:       "Phoenix",
		GroupMembers:    sampleTeam().Members,
		TeamInvitations: []Invitation{{ID: "inv", Status: StatusPending, Members: []Member{{ID: "x"}}}},
		SavedIdeas:      []SavedIdea{{ID: "i1", Analysis: json.RawMessage(`{}`)}},
	}

	clone := user.Clone()
	clone.GroupMembers[0].Name = "changed"
	clone.TeamInvitations[0].Members[0].ID = "changed"
	clone.SavedIdeas[0].IsAgreed = true

	assert.Equal(t, "Sara", user.GroupMembers[0].Name)
	assert.Equal(t, "x", user.TeamInvitations[0].Members[0].ID)
	assert.False(t, user.SavedIdeas[0].IsAgreed)

	assert.Equal(t, 0, user.IdeaIndex("i1"))
	assert.Equal(t, -1, user.IdeaIndex("nope"))
	assert.Equal(t, "Phoenix", user.Snapshot().Team().Name)
	assert.Equal(t, Actor{UserID: "u1", Email: "sara@stu.bu.edu.sa"}, user.Actor())
}
