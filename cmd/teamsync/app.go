package main

import (
	"context"
	"fmt"

	"gradproject-teams/internal/agreement"
	"gradproject-teams/internal/client"
	"gradproject-teams/internal/config"
	"gradproject-teams/internal/controls"
	"gradproject-teams/internal/invitation"
	"gradproject-teams/internal/reconcile"
	"gradproject-teams/internal/session"
	"gradproject-teams/internal/team"
)

// app holds the components of one signed-in session
type app struct {
	cfg         *config.Config
	session     *session.Session
	team        *team.Manager
	invitations *invitation.Queue
	agreement   *agreement.Machine
	loop        *reconcile.Loop
}

// newApp signs the configured student in by loading their profile and wires
// every component against the same session and control guard.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	if cfg.UserEmail == "" {
		return nil, fmt.Errorf("user email is required (TEAMSYNC_USER_EMAIL)")
	}

	api, err := client.New(cfg)
	if err != nil {
		return nil, err
	}

	profile, err := api.FetchProfile(ctx, cfg.UserEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if cfg.UserID != "" && profile.ID != cfg.UserID {
		return nil, fmt.Errorf("profile id %s does not match TEAMSYNC_USER_ID", profile.ID)
	}

	sess := session.New(*profile)
	guard := controls.NewGuard()
	loop := reconcile.NewLoop(sess, api, reconcile.Options{
		InitialDelay: cfg.PollInitialDelay,
		Interval:     cfg.PollInterval,
		RefreshDelay: cfg.RefreshDelay,
	})

	return &app{
		cfg:     cfg,
		session: sess,
		team: team.NewManager(sess, api, api, guard, team.Options{
			EmailDomain: cfg.StudentEmailDomain,
			MaxTeamSize: cfg.MaxTeamSize,
		}),
		invitations: invitation.NewQueue(sess, api, guard),
		agreement:   agreement.NewMachine(sess, api, loop, guard),
		loop:        loop,
	}, nil
}

// Close stops the reconciliation loop and ends the session
func (a *app) Close() {
	a.loop.Stop()
	a.session.Close()
}
