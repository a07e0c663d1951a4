// Package projects renders an ordered list of project names for consumption
// by external automation scripts.
package projects

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// DefaultNames seeds the configuration when no project list is configured.
var DefaultNames = []string{
	"project-alpha-game",
	"project-beta-api",
}

// List is an ordered sequence of project names. Duplicates and empty names
// are kept as given.
type List []string

// Len returns the number of names.
func (l List) Len() int { return len(l) }

// PowerShell returns the list as a PowerShell array literal.
func (l List) PowerShell() string { return Format(l) }

// Format renders names as a PowerShell array literal of the form
// @("a","b"). Embedded double quotes are escaped with a backtick.
func Format(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = strings.ReplaceAll(name, `"`, "`\"")
	}
	return `@("` + strings.Join(quoted, `","`) + `")`
}

// FormatJSON renders names as a JSON array. A nil list renders as [].
func FormatJSON(names []string) (string, error) {
	if names == nil {
		names = []string{}
	}
	data, err := json.Marshal(names)
	if err != nil {
		return "", fmt.Errorf("encoding project list: %w", err)
	}
	return string(data), nil
}

// Load reads a names file in the scanner's output format: one name per
// line. Blank lines are skipped and Windows line endings are tolerated.
func Load(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening project list: %w", err)
	}
	defer f.Close()

	var names List
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading project list %s: %w", path, err)
	}
	return names, nil
}
