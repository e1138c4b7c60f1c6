package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gradproject-teams/internal/config"
	"gradproject-teams/internal/domain"
	apperrors "gradproject-teams/internal/errors"
	"gradproject-teams/internal/logger"
)

// Client talks to the team backend over REST/JSON
type Client struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	log        *logger.Logger
}

// New creates a client for the API configured in cfg
func New(cfg *config.Config) (*Client, error) {
	base := strings.TrimSpace(cfg.APIURL)
	if base == "" {
		return nil, fmt.Errorf("api url is required (TEAMSYNC_API_URL)")
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	baseURL, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api url '%s': %w", base, err)
	}

	timeout := cfg.HTTPClientTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:    baseURL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.Component("client"),
	}, nil
}

// errorBody is the error envelope returned by every endpoint
type errorBody struct {
	Success            bool                          `json:"success"`
	Error              string                        `json:"error"`
	Message            string                        `json:"message"`
	ConflictingMembers []apperrors.ConflictingMember `json:"conflictingMembers"`
}

func (b errorBody) text() string {
	if b.Error != "" {
		return b.Error
	}
	return b.Message
}

type call struct {
	op       string
	method   string
	path     string
	query    url.Values
	body     interface{}
	notFound error
}

// do performs one API call and decodes a 2xx body into out. Non-2xx
// responses are mapped onto the error taxonomy.
func (c *Client) do(ctx context.Context, cl call, out interface{}) error {
	fullURL := c.baseURL.String() + cl.path
	if len(cl.query) > 0 {
		fullURL += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		payload, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", cl.op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, fullURL, body)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.WithContext(ctx).Debugf("Invoking team API %s %s", cl.method, cl.path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewTransientError(cl.op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewTransientError(cl.op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapError(cl, resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", cl.op, err)
	}
	return nil
}

func (c *Client) mapError(cl call, status int, raw []byte) error {
	var eb errorBody
	_ = json.Unmarshal(raw, &eb)
	msg := eb.text()

	switch {
	case status == http.StatusConflict:
		if msg == "" {
			msg = "request conflicts with the current team state"
		}
		conflict := &apperrors.ConflictError{Message: msg, Members: eb.ConflictingMembers}
		if len(eb.ConflictingMembers) == 1 {
			conflict.TeamName = eb.ConflictingMembers[0].CurrentTeam
			conflict.TeamSize = eb.ConflictingMembers[0].TeamSize
		}
		return conflict
	case status == http.StatusNotFound:
		if cl.notFound != nil {
			return cl.notFound
		}
		return apperrors.NewNotFoundError(cl.op)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if msg == "" {
			msg = "invalid request"
		}
		return apperrors.NewValidationError("", msg)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if msg == "" {
			msg = http.StatusText(status)
		}
		return apperrors.NewAuthorizationError(msg)
	default:
		return apperrors.NewTransientError(cl.op, fmt.Errorf("status=%d body=%s", status, strings.TrimSpace(string(raw))))
	}
}

type actorRequest struct {
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
}

func actorBody(actor domain.Actor) actorRequest {
	return actorRequest{UserID: actor.UserID, UserEmail: actor.Email}
}

type teamResponse struct {
	GroupName      string          `json:"groupName"`
	GroupMembers   []domain.Member `json:"groupMembers"`
	UpdatedMembers []domain.Member `json:"updatedMembers"`
}

func (r teamResponse) team(fallbackName string) *domain.Team {
	members := r.GroupMembers
	if members == nil {
		members = r.UpdatedMembers
	}
	if members == nil {
		members = []domain.Member{}
	}
	name := r.GroupName
	if name == "" {
		name = fallbackName
	}
	return &domain.Team{Name: name, Members: members}
}

// LookupStudent resolves a university email to its directory entry
func (c *Client) LookupStudent(ctx context.Context, email string) (*domain.DirectoryEntry, error) {
	var resp struct {
		Student domain.DirectoryEntry `json:"student"`
	}
	err := c.do(ctx, call{
		op:       "student lookup",
		method:   http.MethodPost,
		path:     "/api/team/get-student",
		body:     map[string]string{"email": email},
		notFound: apperrors.ErrStudentNotFound,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Student, nil
}

// SyncTeam pushes the complete desired team state and returns the state the
// server stored
func (c *Client) SyncTeam(ctx context.Context, actor domain.Actor, team domain.Team) (*domain.Team, error) {
	body := struct {
		actorRequest
		GroupName    string          `json:"groupName"`
		GroupMembers []domain.Member `json:"groupMembers"`
	}{actorBody(actor), team.Name, team.Members}

	var resp teamResponse
	err := c.do(ctx, call{
		op:       "team sync",
		method:   http.MethodPost,
		path:     "/api/team/sync",
		body:     body,
		notFound: apperrors.ErrUserNotFound,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.team(team.Name), nil
}

// RemoveMember removes the member with email from the actor's team
func (c *Client) RemoveMember(ctx context.Context, actor domain.Actor, email string) (*domain.Team, error) {
	body := struct {
		actorRequest
		MemberEmailToRemove string `json:"memberEmailToRemove"`
	}{actorBody(actor), email}

	var resp teamResponse
	err := c.do(ctx, call{
		op:       "member removal",
		method:   http.MethodPost,
		path:     "/api/team/remove-member",
		body:     body,
		notFound: apperrors.ErrMemberNotFound,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.team(""), nil
}

// UpdateLeader transfers leadership in one request carrying the whole team
func (c *Client) UpdateLeader(ctx context.Context, actor domain.Actor, team domain.Team, leaderID string) (*domain.Team, error) {
	body := struct {
		actorRequest
		NewLeaderID  string          `json:"newLeaderId"`
		GroupName    string          `json:"groupName"`
		GroupMembers []domain.Member `json:"groupMembers"`
	}{actorBody(actor), leaderID, team.Name, team.Members}

	var resp teamResponse
	err := c.do(ctx, call{
		op:       "leader update",
		method:   http.MethodPost,
		path:     "/api/team/update-leader",
		body:     body,
		notFound: apperrors.ErrMemberNotFound,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.team(team.Name), nil
}

// ListInvitations returns every invitation addressed to the actor
func (c *Client) ListInvitations(ctx context.Context, actor domain.Actor) ([]domain.Invitation, error) {
	var resp struct {
		Invitations []domain.Invitation `json:"invitations"`
	}
	err := c.do(ctx, call{
		op:       "invitation listing",
		method:   http.MethodGet,
		path:     "/api/team/invitations",
		query:    url.Values{"userId": []string{actor.UserID}, "userEmail": []string{actor.Email}},
		notFound: apperrors.ErrUserNotFound,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Invitations, nil
}

// RespondToInvitation accepts or declines a pending invitation and returns
// it with its final status
func (c *Client) RespondToInvitation(ctx context.Context, actor domain.Actor, invitationID string, accept bool) (*domain.Invitation, error) {
	path, op := "/api/team/reject-invitation", "invitation decline"
	if accept {
		path, op = "/api/team/accept-invitation", "invitation accept"
	}
	body := struct {
		actorRequest
		InvitationID string `json:"invitationId"`
	}{actorBody(actor), invitationID}

	var resp struct {
		Invitation *domain.Invitation `json:"invitation"`
	}
	err := c.do(ctx, call{
		op:       op,
		method:   http.MethodPost,
		path:     path,
		body:     body,
		notFound: apperrors.ErrInvitationNotFound,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Invitation == nil {
		status := domain.StatusRejected
		if accept {
			status = domain.StatusAccepted
		}
		return &domain.Invitation{ID: invitationID, Status: status}, nil
	}
	return resp.Invitation, nil
}

// FetchProfile returns the authoritative profile of the user with email
func (c *Client) FetchProfile(ctx context.Context, email string) (*domain.User, error) {
	var resp struct {
		User domain.User `json:"user"`
	}
	err := c.do(ctx, call{
		op:       "profile fetch",
		method:   http.MethodPost,
		path:     "/api/profile/get",
		body:     map[string]string{"email": email},
		notFound: apperrors.ErrUserNotFound,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// AgreeIdea records ideaID as the team's agreed idea
func (c *Client) AgreeIdea(ctx context.Context, actor domain.Actor, ideaID string) error {
	body := struct {
		actorRequest
		IdeaID string `json:"ideaId"`
	}{actorBody(actor), ideaID}

	return c.do(ctx, call{
		op:       "idea agreement",
		method:   http.MethodPost,
		path:     "/api/group/agree-idea",
		body:     body,
		notFound: apperrors.ErrIdeaNotFound,
	}, nil)
}

// RemoveAgreement clears the team's agreed idea
func (c *Client) RemoveAgreement(ctx context.Context, actor domain.Actor) error {
	return c.do(ctx, call{
		op:       "agreement removal",
		method:   http.MethodPost,
		path:     "/api/group/remove-agreement",
		body:     actorBody(actor),
		notFound: apperrors.ErrUserNotFound,
	}, nil)
}

// UpdateIdeaVisibility persists the visible flag of one saved idea
func (c *Client) UpdateIdeaVisibility(ctx context.Context, actor domain.Actor, ideaID string, visible bool) error {
	body := struct {
		actorRequest
		Email   string `json:"email"`
		IdeaID  string `json:"ideaId"`
		Visible bool   `json:"visible"`
	}{actorBody(actor), actor.Email, ideaID, visible}

	return c.do(ctx, call{
		op:       "visibility update",
		method:   http.MethodPost,
		path:     "/api/profile/update-idea-visibility",
		body:     body,
		notFound: apperrors.ErrIdeaNotFound,
	}, nil)
}
