package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/lumber-inc/internal/config"
	"github.com/appengine-ltd/lumber-inc/internal/game"
	"github.com/appengine-ltd/lumber-inc/internal/script"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type rootOptions struct {
	configPath string
	debug      bool
	mute       bool
}

type playOptions struct {
	rootOptions
	tui bool
	cfg game.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "lumber-inc",
		Short:         "Chop trees, carry logs, sell them at the table",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config layered over the defaults")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "write a debug log under "+logDir+"/")
	rootCmd.PersistentFlags().BoolVar(&opts.mute, "mute", false, "disable sound cues")

	rootCmd.AddCommand(playCmd(opts))
	rootCmd.AddCommand(simCmd(opts))
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func playCmd(root *rootOptions) *cobra.Command {
	var tui bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the game window (or the terminal client with --tui)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			logFile := setupLogging(root.debug)
			if logFile != nil {
				defer logFile.Close()
			}
			cfg, err := config.LoadOrDefault(root.configPath)
			if err != nil {
				return err
			}
			log.Printf("play: version=%s config=%q tui=%v mute=%v", version, root.configPath, tui, root.mute)
			return launchClient(playOptions{rootOptions: *root, tui: tui, cfg: cfg})
		},
	}
	cmd.Flags().BoolVar(&tui, "tui", false, "play in the terminal instead of a window")
	return cmd
}

func simCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sim [script]",
		Short: "Run a command script headlessly and print status reports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logFile := setupLogging(root.debug)
			if logFile != nil {
				defer logFile.Close()
			}
			cfg, err := config.LoadOrDefault(root.configPath)
			if err != nil {
				return err
			}
			return runSim(cmd, cfg, args[0])
		},
	}
}

func runSim(cmd *cobra.Command, cfg game.Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	cmds, err := script.New().ParseScript(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	s, err := game.NewSession(cfg, game.SessionDeps{Logger: log.Default()})
	if err != nil {
		return err
	}
	defer s.Close()

	rep, runErr := script.NewRunner(s, log.Default()).Run(cmds)
	out := cmd.OutOrStdout()
	for _, line := range rep.Lines {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, "final: "+script.StatusLine(rep.Final))
	if runErr != nil {
		return fmt.Errorf("%s: %w", path, runErr)
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Lumber Inc. %s (%s) %s\n", version, commit, date)
		},
	}
}
