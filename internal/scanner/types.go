// Package scanner lists the immediate subdirectories of a parent directory
// and writes their names to a plain-text file.
package scanner

import "go.uber.org/zap"

// Result describes a completed scan.
type Result struct {
	// Root is the absolute path of the scanned parent directory.
	Root string `json:"root"`

	// Output is the absolute path of the names file. Empty when nothing
	// was written.
	Output string `json:"output,omitempty"`

	// Names are the qualifying directory names in the order they were written.
	Names []string `json:"names"`
}

// Empty reports whether the scan found no qualifying directories.
func (r *Result) Empty() bool {
	return r == nil || len(r.Names) == 0
}

// Options tunes a scan.
type Options struct {
	// Logger receives debug diagnostics. Nil discards them.
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
