package app

import (
	"encoding/json"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repolist/internal/config"
	"github.com/blackwell-systems/repolist/internal/output"
	"github.com/blackwell-systems/repolist/internal/scanner"
)

var (
	scanFlagPath   string
	scanFlagOutput string
	scanFlagJSON   bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Write subdirectory names to a text file",
	Long: `Scan lists the immediate subdirectories of the parent directory,
skipping hidden entries and plain files, and writes their names one per
line to the output file. An existing output file is overwritten.

Finding no subdirectories is reported as a warning and is not an error.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanFlagPath, "path", "p", config.DefaultScan.Path, "The parent directory to scan")
	scanCmd.Flags().StringVarP(&scanFlagOutput, "output", "o", config.DefaultScan.Output, "The output text file")
	scanCmd.Flags().BoolVar(&scanFlagJSON, "json", false, "Print the scan result as JSON")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	// Flags win over config; config defaults match the flag defaults.
	parent := appConfig.Scan.Path
	if cmd.Flags().Changed("path") {
		parent = scanFlagPath
	}
	outFile := appConfig.Scan.Output
	if cmd.Flags().Changed("output") {
		outFile = scanFlagOutput
	}

	stdout := cmd.OutOrStdout()
	if !scanFlagJSON {
		abs, err := filepath.Abs(parent)
		if err != nil {
			abs = parent
		}
		output.Info(stdout, "Scanning directory: %s", abs)
	}

	res, err := scanner.Scan(parent, outFile, scanner.Options{Logger: appLog.Named("scan")})
	if err != nil {
		return err
	}

	if scanFlagJSON {
		if res.Names == nil {
			res.Names = []string{}
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if res.Empty() {
		output.Warning(stdout, "No subdirectories found.")
		return nil
	}
	output.Success(stdout, "Success! Found %d projects.", len(res.Names))
	output.Info(stdout, "List saved to: %s", res.Output)
	return nil
}
