// Package app contains the Cobra command tree for repolist.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/repolist/internal/config"
	"github.com/blackwell-systems/repolist/internal/logging"
	"github.com/blackwell-systems/repolist/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagVerbose bool
	flagConfig  string
)

// Populated by setup before any subcommand runs.
var (
	appConfig *config.Config
	appLog    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "repolist",
	Short: "Collect repository folder names and format project lists",
	Long: `repolist prepares input for repository upload scripts. It lists the
subdirectories of a parent folder into a names file, and renders the
configured project list as a PowerShell array literal.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "repolist", appVersion)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Use a subcommand:")
		fmt.Fprintln(out, "  scan      Write subdirectory names to a text file")
		fmt.Fprintln(out, "  projects  Print the project list for automation scripts")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the command tree with the given arguments and returns the
// process exit status.
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	_ = appLog.Sync()
	if err != nil {
		output.Error(stderr, err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/repolist/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

// setup loads configuration and prepares styling and logging.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	appConfig = cfg

	color := !flagNoColor && cfg.Output.Color
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		color = output.ShouldColor(f, color)
	} else {
		color = false
	}
	output.SetNoColor(!color)

	appLog = logging.New(cmd.ErrOrStderr(), flagVerbose)
	appLog.Debug("configuration loaded",
		zap.String("config", flagConfig),
		zap.String("scan.path", cfg.Scan.Path),
		zap.String("scan.output", cfg.Scan.Output),
		zap.Int("projects", len(cfg.Projects)))
	return nil
}
