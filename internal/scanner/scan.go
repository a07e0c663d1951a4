package scanner

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Scan lists the non-hidden subdirectories of parentDir and writes their
// names, one per line, to outputFile, replacing any previous content.
//
// When no qualifying directories exist the output file is left untouched
// and the returned Result is empty with a nil error.
func Scan(parentDir, outputFile string, opts Options) (*Result, error) {
	log := opts.logger()

	root, err := filepath.Abs(parentDir)
	if err != nil {
		root = parentDir
	}

	names, err := ListDirs(parentDir, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{Root: root, Names: names}
	if len(names) == 0 {
		log.Debug("no subdirectories found", zap.String("root", root))
		return res, nil
	}

	out, err := filepath.Abs(outputFile)
	if err != nil {
		out = outputFile
	}
	if err := WriteNames(outputFile, names); err != nil {
		return nil, err
	}
	res.Output = out

	log.Debug("names written", zap.String("output", out), zap.Int("count", len(names)))
	return res, nil
}

// ListDirs returns the names of the immediate subdirectories of parentDir,
// skipping entries whose name starts with a dot. Symlinks that resolve to
// directories are included.
func ListDirs(parentDir string, opts Options) ([]string, error) {
	log := opts.logger()

	info, err := os.Stat(parentDir)
	if err != nil {
		return nil, classify(parentDir, err)
	}
	if !info.IsDir() {
		return nil, &ScanError{Kind: ErrNotFound, Path: parentDir}
	}

	entries, err := os.ReadDir(parentDir)
	if err != nil {
		return nil, classify(parentDir, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			log.Debug("skipping hidden entry", zap.String("name", name))
			continue
		}
		if !isDir(parentDir, entry) {
			log.Debug("skipping non-directory", zap.String("name", name))
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// WriteNames writes each name followed by a newline to path, truncating any
// existing file.
func WriteNames(path string, names []string) error {
	f, err := os.Create(path)
	if err != nil {
		return &ScanError{Kind: ErrWrite, Path: path, Err: err}
	}

	w := bufio.NewWriter(f)
	for _, name := range names {
		if _, err := w.WriteString(name + "\n"); err != nil {
			_ = f.Close()
			return &ScanError{Kind: ErrWrite, Path: path, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return &ScanError{Kind: ErrWrite, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &ScanError{Kind: ErrWrite, Path: path, Err: err}
	}
	return nil
}

func isDir(parentDir string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	// Follow the link; dangling links are not directories.
	info, err := os.Stat(filepath.Join(parentDir, entry.Name()))
	return err == nil && info.IsDir()
}

// classify maps a failure to reach or read parentDir onto an error kind.
// Anything other than a permission failure, including ENOTDIR for a path
// running through a regular file, means the directory is not there.
func classify(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return &ScanError{Kind: ErrPermission, Path: path, Err: err}
	}
	return &ScanError{Kind: ErrNotFound, Path: path, Err: err}
}
