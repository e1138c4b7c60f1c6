package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gradproject-teams/internal/config"
	"gradproject-teams/internal/logger"
)

type appKey struct{}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "teamsync",
		Short: "Manage your graduation project team",
		Long: `Manage your graduation project team from the terminal.
	Configure the signed-in student with environment variables:
TEAMSYNC_API_URL       // example: http://localhost:5000
TEAMSYNC_USER_EMAIL    // example: 441000001@stu.bu.edu.sa
TEAMSYNC_USER_ID       // optional, checked against the loaded profile
TEAMSYNC_TOKEN         // bearer token when the API requires auth
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			level := cfg.LogLevel
			if logLevel != "" {
				level = logLevel
			}
			logger.Setup(level, os.Stderr)

			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(a.session.Context(cmd.Context()), appKey{}, a))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a := appFrom(cmd); a != nil {
				a.Close()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL: [ debug | info | warn | error ]")

	rootCmd.AddCommand(
		showCMD(),
		watchCMD(),
		addCMD(),
		removeCMD(),
		leaderCMD(),
		renameCMD(),
		invitationsCMD(),
		respondCMD("accept", true),
		respondCMD("decline", false),
		agreeCMD(),
		unagreeCMD(),
		toggleCMD(),
	)
	return rootCmd
}

func appFrom(cmd *cobra.Command) *app {
	a, _ := cmd.Context().Value(appKey{}).(*app)
	return a
}
