package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repolist/internal/output"
	"github.com/blackwell-systems/repolist/internal/projects"
)

var (
	projectsFlagFrom   string
	projectsFlagFormat string
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Print the project list for automation scripts",
	Long: `Projects prints the configured project list. The default format is a
single-line PowerShell array literal such as @("alpha","beta"), ready to be
evaluated by an upload script.

Formats:
  powershell  @("name1","name2") with embedded quotes escaped
  list        human-readable listing
  json        JSON array
  table       styled table

Use --from to read names from a scan output file instead of the config.`,
	Args: cobra.NoArgs,
	RunE: runProjects,
}

func init() {
	projectsCmd.Flags().StringVar(&projectsFlagFrom, "from", "", "Read names from a file (one per line) instead of config")
	projectsCmd.Flags().StringVarP(&projectsFlagFormat, "format", "f", "powershell", "Output format: powershell, list, json, table")

	rootCmd.AddCommand(projectsCmd)
}

func runProjects(cmd *cobra.Command, args []string) error {
	names := projects.List(appConfig.Projects)
	if projectsFlagFrom != "" {
		loaded, err := projects.Load(projectsFlagFrom)
		if err != nil {
			return err
		}
		names = loaded
	}

	out := cmd.OutOrStdout()
	switch projectsFlagFormat {
	case "powershell", "ps":
		fmt.Fprintln(out, names.PowerShell())
	case "list":
		fmt.Fprintf(out, "Loaded %d projects:\n", names.Len())
		for _, name := range names {
			fmt.Fprintf(out, " - %s\n", name)
		}
	case "json":
		s, err := projects.FormatJSON(names)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
	case "table":
		fmt.Fprintln(out, output.Section("Projects"))
		fmt.Fprintln(out)
		tbl := output.NewTable("#", "Project")
		for i, name := range names {
			tbl.AddRow(strconv.Itoa(i+1), name)
		}
		tbl.Fprint(out)
	default:
		return fmt.Errorf("unknown format %q (want powershell, list, json or table)", projectsFlagFormat)
	}
	return nil
}
