package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradproject-teams/internal/config"
	"gradproject-teams/internal/domain"
	apperrors "gradproject-teams/internal/errors"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func newClientWithTransport(t *testing.T, rt roundTripFunc) *Client {
	t.Helper()
	c, err := New(&config.Config{APIURL: "api.example.edu/", Token: "token-123"})
	require.NoError(t, err)
	c.httpClient = &http.Client{Transport: rt}
	return c
}

func decodeBody(t *testing.T, req *http.Request) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
	return body
}

var actor = domain.Actor{UserID: "u1", Email: "sara@stu.bu.edu.sa"}

func TestNew_RequiresURL(t *testing.T) {
	_, err := New(&config.Config{})
	assert.Error(t, err)
}

func TestLookupStudent_Success(t *testing.T) {
	c := newClientWithTransport(t, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "http://api.example.edu/api/team/get-student", req.URL.String())
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "Bearer token-123", req.Header.Get("Authorization"))
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		assert.Equal(t, "omar@stu.bu.edu.sa", decodeBody(t, req)["email"])

		return jsonResponse(200, `{
			"success": true,
			"student": {
				"_id": "u2", "name": "Omar", "email": "omar@stu.bu.edu.sa",
				"groupName": "Falcon",
				"groupMembers": [{"id":"u5","name":"Huda","email":"huda@stu.bu.edu.sa","isLeader":true}]
			}
		}`), nil
	})

	entry, err := c.LookupStudent(context.Background(), "omar@stu.bu.edu.sa")
	require.NoError(t, err)
	assert.Equal(t, "u2", entry.ID)
	assert.Equal(t, "Falcon", entry.GroupName)
	assert.True(t, entry.HasTeam())
}

func TestLookupStudent_NotFound(t *testing.T) {
	c := newClientWithTransport(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(404, `{"success":false,"error":"Student not found"}`), nil
	})

	_, err := c.LookupStudent(context.Background(), "ghost@stu.bu.edu.sa")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestSyncTeam_SendsFullSnapshot(t *testing.T) {
	c := newClientWithTransport(t, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/api/team/sync", req.URL.Path)
		body := decodeBody(t, req)
		assert.Equal(t, "u1", body["userId"])
		assert.Equal(t, "sara@stu.bu.edu.sa", body["userEmail"])
		assert.Equal(t, "Phoenix", body["groupName"])
		assert.Len(t, body["groupMembers"], 2)

		return jsonResponse(200, `{"success":true,"groupName":"Phoenix","groupMembers":[
			{"id":"u1","email":"sara@stu.bu.edu.sa","isLeader":true,"status":"accepted"},
			{"id":"u2","email":"omar@stu.bu.edu.sa","isLeader":false,"status":"accepted"}
		]}`), nil
	})

	team, err := c.SyncTeam(context.Background(), actor, domain.Team{
		Name: "Phoenix",
		Members: []domain.Member{
			{ID: "u1", Email: "sara@stu.bu.edu.sa", IsLeader: true},
			{ID: "u2", Email: "omar@stu.bu.edu.sa"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Phoenix", team.Name)
	assert.Len(t, team.Members, 2)
}

func TestSyncTeam_Conflict(t *testing.T) {
	c := newClientWithTransport(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(409, `{
			"success": false,
			"error": "Some members are already in another team",
			"conflictingMembers": [{"email":"omar@stu.bu.edu.sa","name":"Omar","currentTeam":"Falcon","teamSize":3}]
		}`), nil
	})

	_, err := c.SyncTeam(context.Background(), actor, domain.Team{Name: "Phoenix"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.ErrorIs(t, err, apperrors.ErrMemberInOtherTeam)

	var conflict *apperrors.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "Falcon", conflict.TeamName)
	assert.Equal(t, 3, conflict.TeamSize)
	require.Len(t, conflict.Members, 1)
	assert.Equal(t, "omar@stu.bu.edu.sa", conflict.Members[0].Email)
}

func TestRemoveMember_UsesUpdatedMembers(t *testing.T) {
	c := newClientWithTransport(t, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/api/team/remove-member", req.URL.Path)
		assert.Equal(t, "omar@stu.bu.edu.sa", decodeBody(t, req)["memberEmailToRemove"])
		return jsonResponse(200, `{"success":true,"updatedMembers":[{"id":"u1","email":"sara@stu.bu.edu.sa"}]}`), nil
	})

	team, err := c.RemoveMember(context.Background(), actor, "omar@stu.bu.edu.sa")
	require.NoError(t, err)
	require.Len(t, team.Members, 1)
	assert.Equal(t, "u1", team.Members[0].ID)
}

func TestRemoveMember_EmptyTeam(t *testing.T) {
	c := newClientWithTransport(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{"success":true}`), nil
	})

	team, err := c.RemoveMember(context.Background(), actor, "sara@stu.bu.edu.sa")
	require.NoError(t, err)
	assert.NotNil(t, team.Members)
	assert.Empty(t, team.Members)
}

func TestUpdateLeader(t *testing.T) {
	c := newClientWithTransport(t, func(req *http.Request) (*http.Response, error) {
		body := decodeBody(t, req)
		assert.Equal(t, "u2", body["newLeaderId"])
		assert.Len(t, body["groupMembers"], 2)
		return jsonResponse(200, `{"success":true,"updatedMembers":[
			{"id":"u1","email":"sara@stu.bu.edu.sa","isLeader":false},
			{"id":"u2","email":"omar@stu.bu.edu.sa","isLeader":true}
		]}`), nil
	})

	team, err := c.UpdateLeader(context.Background(), actor, domain.Team{
		Name:    "Phoenix",
		Members: []domain.Member{{ID: "u1", IsLeader: true}, {ID: "u2"}},
	}, "u2")
	require.NoError(t, err)
	assert.Equal(t, "Phoenix", team.Name)
	leader, ok := team.Leader()
	require.True(t, ok)
	assert.Equal(t, "u2", leader.ID)
}

func TestListInvitations(t *testing.T) {
	c := newClientWithTransport(t, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "u1", req.URL.Query().Get("userId"))
		assert.Equal(t, actor.Email, req.URL.Query().Get("userEmail"))
		assert.Empty(t, req.Header.Get("Content-Type"))
		return jsonResponse(200, `{"success":true,"invitations":[
			{"id":"inv1","teamName":"Falcon","status":"pending"},
			{"id":"inv2","teamName":"Hawk","status":"rejected"}
		]}`), nil
	})

	invitations, err := c.ListInvitations(context.Background(), actor)
	require.NoError(t, err)
	require.Len(t, invitations, 2)
	assert.True(t, invitations[0].IsPending())
}

func TestRespondToInvitation(t *testing.T) {
	var paths []string
	c := newClientWithTransport(t, func(req *http.Request) (*http.Response, error) {
		paths = append(paths, req.URL.Path)
		assert.Equal(t, "inv1", decodeBody(t, req)["invitationId"])
		if req.URL.Path == "/api/team/accept-invitation" {
			return jsonResponse(200, `{"success":true,"invitation":{"id":"inv1","status":"accepted"}}`), nil
		}
		return jsonResponse(200, `{"success":true}`), nil
	})

	inv, err := c.RespondToInvitation(context.Background(), actor, "inv1", true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, inv.Status)

	inv, err = c.RespondToInvitation(context.Background(), actor, "inv1", false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, inv.Status)

	assert.Equal(t, []string{"/api/team/accept-invitation", "/api/team/reject-invitation"}, paths)
}

func TestFetchProfile(t *testing.T) {
	c := newClientWithTransport(t, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/api/profile/get", req.URL.Path)
		return jsonResponse(200, `{"success":true,"user":{
			"_id":"u1","email":"sara@stu.bu.edu.sa","groupName":"Phoenix",
			"groupMembers":[{"id":"u1","email":"sara@stu.bu.edu.sa","isLeader":true}],
			"teamInvitations":[],
			"savedIdeas":[{"_id":"i1","title":"Drone mapping","is_agreed":true,"visible":true,"_previous_visible":false}],
			"agreed_idea_id":"i1"
		}}`), nil
	})

	user, err := c.FetchProfile(context.Background(), "sara@stu.bu.edu.sa")
	require.NoError(t, err)
	assert.Equal(t, "i1", user.AgreedIdeaID)
	require.Len(t, user.SavedIdeas, 1)
	assert.Equal(t, domain.ForcedByAgreement(false), user.SavedIdeas[0].Visibility)
}

func TestAgreeIdea_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "not in a group",
			status: 400,
			body:   `{"success":false,"error":"User is not in a group"}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, apperrors.ErrNotInGroup)
			},
		},
		{
			name:   "already agreed",
			status: 409,
			body:   `{"success":false,"error":"Another idea is already agreed. Remove it first."}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, apperrors.ErrIdeaAlreadyAgreed)
				assert.Equal(t, "Another idea is already agreed. Remove it first.", err.Error())
			},
		},
		{
			name:   "idea missing",
			status: 404,
			body:   `{"success":false,"error":"Idea not found"}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, apperrors.ErrIdeaNotFound)
			},
		},
		{
			name:   "forbidden",
			status: 403,
			body:   `{"success":false,"error":"you are not a member of this team"}`,
			check: func(t *testing.T, err error) {
				assert.True(t, apperrors.IsAuthorization(err))
			},
		},
		{
			name:   "server error",
			status: 502,
			body:   `bad gateway`,
			check: func(t *testing.T, err error) {
				assert.True(t, apperrors.IsTransient(err))
				assert.Contains(t, err.Error(), "please try again")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClientWithTransport(t, func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "i1", decodeBody(t, req)["ideaId"])
				return jsonResponse(tt.status, tt.body), nil
			})
			err := c.AgreeIdea(context.Background(), actor, "i1")
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestNetworkFailureIsTransient(t *testing.T) {
	netErr := errors.New("connection refused")
	c := newClientWithTransport(t, func(req *http.Request) (*http.Response, error) {
		return nil, netErr
	})

	err := c.RemoveAgreement(context.Background(), actor)
	require.Error(t, err)
	assert.True(t, apperrors.IsTransient(err))
	assert.ErrorIs(t, err, netErr)
}

func TestUpdateIdeaVisibility(t *testing.T) {
	c := newClientWithTransport(t, func(req *http.Request) (*http.Response, error) {
		body := decodeBody(t, req)
		assert.Equal(t, "/api/profile/update-idea-visibility", req.URL.Path)
		assert.Equal(t, "i1", body["ideaId"])
		assert.Equal(t, false, body["visible"])
		assert.Equal(t, "sara@stu.bu.edu.sa", body["email"])
		return jsonResponse(200, `{"success":true}`), nil
	})

	assert.NoError(t, c.UpdateIdeaVisibility(context.Background(), actor, "i1", false))
}
