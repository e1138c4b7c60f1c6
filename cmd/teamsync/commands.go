package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"gradproject-teams/internal/domain"
)

func showCMD() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show your team, invitations and saved ideas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			user := a.session.User()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(user)
			}
			printTeam(cmd.OutOrStdout(), user.Team())
			printInvitations(cmd.OutOrStdout(), user.TeamInvitations)
			printIdeas(cmd.OutOrStdout(), user, a.agreement.CanToggle)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the profile as JSON")
	return cmd
}

func watchCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Poll the server and print team changes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			out := cmd.OutOrStdout()
			updates, cancel := a.session.Subscribe()
			defer cancel()

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				a.loop.Run(ctx)
				return nil
			})
			g.Go(func() error {
				last := a.session.User().Team()
				for {
					select {
					case <-ctx.Done():
						return nil
					case <-a.session.Done():
						return nil
					case n := <-a.loop.Notifications():
						fmt.Fprintf(out, "[%s] %s\n", n.Kind, n.Message)
					case user, ok := <-updates:
						if !ok {
							return nil
						}
						if team := user.Team(); !cmp.Equal(team, last, cmpopts.EquateEmpty()) {
							printTeam(out, team)
							last = team
						}
					}
				}
			})
			fmt.Fprintf(out, "Watching team of %s, press Ctrl+C to stop\n", a.session.Actor().Email)
			err := g.Wait()
			a.loop.Stop()
			return err
		},
	}
}

func addCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "add EMAIL",
		Short: "Invite a student to your team by university email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := appFrom(cmd).team.AddMember(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !res.Added {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is already on the team\n", displayName(res.Member))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s added to the team\n", displayName(res.Member))
			return nil
		},
	}
}

func removeCMD() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove MEMBER_ID",
		Short: "Remove a member from your team, or leave it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm := func(ctx context.Context, team domain.Team) bool {
				if yes {
					return true
				}
				return prompt(cmd.InOrStdin(), cmd.OutOrStdout(),
					fmt.Sprintf("Leave team %q? [y/N] ", team.Name))
			}
			if err := appFrom(cmd).team.RemoveMember(cmd.Context(), args[0], confirm); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Member removed")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm leaving your own team without prompting")
	return cmd
}

func leaderCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "leader MEMBER_ID",
		Short: "Make a member the team leader",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			if err := a.team.SetLeader(cmd.Context(), args[0]); err != nil {
				return err
			}
			printTeam(cmd.OutOrStdout(), a.session.User().Team())
			return nil
		},
	}
}

func renameCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "rename NAME",
		Short: "Rename your team",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			if err := a.team.RenameTeam(cmd.Context(), strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Team renamed to %q\n", a.session.User().GroupName)
			return nil
		},
	}
}

func invitationsCMD() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "invitations",
		Short: "List the team invitations you received",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := appFrom(cmd).invitations
			if err := q.Refresh(cmd.Context()); err != nil {
				return err
			}
			list := q.Pending()
			if all {
				list = q.All()
			}
			printInvitations(cmd.OutOrStdout(), list)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include answered invitations")
	return cmd
}

func respondCMD(verb string, accept bool) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " INVITATION_ID",
		Short: strings.ToUpper(verb[:1]) + verb[1:] + " a pending team invitation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := appFrom(cmd).invitations
			if err := q.Refresh(cmd.Context()); err != nil {
				return err
			}
			respond := q.Decline
			if accept {
				respond = q.Accept
			}
			inv, err := respond(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Invitation to %q is now %s\n", inv.TeamName, inv.Status)
			return nil
		},
	}
}

func agreeCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "agree IDEA_ID",
		Short: "Agree on a saved idea as the team's project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appFrom(cmd).agreement.Agree(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Idea %s agreed\n", args[0])
			return nil
		},
	}
}

func unagreeCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "unagree",
		Short: "Remove the team's agreed idea",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			machine := appFrom(cmd).agreement
			agreed, _ := machine.Agreed()
			if err := machine.RemoveAgreement(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Agreement on idea %s removed\n", agreed)
			return nil
		},
	}
}

func toggleCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle IDEA_ID",
		Short: "Show or hide a saved idea from your teammates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			visible, err := appFrom(cmd).agreement.ToggleVisibility(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			state := "hidden"
			if visible {
				state = "visible"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Idea %s is now %s\n", args[0], state)
			return nil
		},
	}
}

func prompt(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprint(out, question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func displayName(m domain.Member) string {
	if m.Name != "" {
		return m.Name
	}
	return m.Email
}

func printTeam(out io.Writer, team domain.Team) {
	if team.IsEmpty() {
		fmt.Fprintln(out, "You are not in a team")
		return
	}
	fmt.Fprintf(out, "Team %q\n", team.Name)
	for _, m := range team.Members {
		role := ""
		if m.IsLeader {
			role = " (leader)"
		}
		status := ""
		if !m.IsAccepted() {
			status = " [" + string(m.Status) + "]"
		}
		fmt.Fprintf(out, "  %s  %s <%s>%s%s\n", m.ID, displayName(m), m.Email, role, status)
	}
}

func printInvitations(out io.Writer, invitations []domain.Invitation) {
	if len(invitations) == 0 {
		fmt.Fprintln(out, "No invitations")
		return
	}
	fmt.Fprintln(out, "Invitations")
	for _, inv := range invitations {
		from := inv.InvitedByName
		if from == "" {
			from = inv.InvitedBy
		}
		fmt.Fprintf(out, "  %s  %q from %s (%d members) %s\n", inv.ID, inv.TeamName, from, len(inv.Members), inv.Status)
	}
}

// printIdeas lists the saved ideas. Ideas whose visibility cannot be toggled
// right now are marked locked.
func printIdeas(out io.Writer, user domain.User, canToggle func(ideaID string) bool) {
	if len(user.SavedIdeas) == 0 {
		fmt.Fprintln(out, "No saved ideas")
		return
	}
	fmt.Fprintln(out, "Saved ideas")
	for _, idea := range user.SavedIdeas {
		flags := "hidden"
		if idea.Visibility.Visible() {
			flags = "visible"
		}
		if idea.IsAgreed {
			flags += ", agreed"
		}
		if !canToggle(idea.ID) {
			flags += ", locked"
		}
		fmt.Fprintf(out, "  %s  %s (%s)\n", idea.ID, idea.Title, flags)
	}
}
