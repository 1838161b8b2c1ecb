// Package input loads puzzle input files as lines of text.
package input

import (
	"bufio"
	"fmt"
	"os"

	"github.com/banshee-data/packet.decoder/internal/fsutil"
	"github.com/banshee-data/packet.decoder/internal/monitoring"
)

const (
	// EnvInputPath overrides the default input path when set.
	EnvInputPath = "AOC_INPUT"
	// DefaultInputPath is where the transmission is read from by default.
	DefaultInputPath = "inputs/day_16"

	maxLineBytes = 1 << 20
)

// Loader reads input files through a FileSystem.
type Loader struct {
	fs fsutil.FileSystem
}

// NewLoader returns a Loader backed by fsys. A nil fsys uses the OS filesystem.
func NewLoader(fsys fsutil.FileSystem) *Loader {
	if fsys == nil {
		fsys = fsutil.OSFileSystem{}
	}
	return &Loader{fs: fsys}
}

// ResolvePath returns $AOC_INPUT when set, otherwise defaultPath.
func ResolvePath(defaultPath string) string {
	if p := os.Getenv(EnvInputPath); p != "" {
		return p
	}
	return defaultPath
}

// Load reads the lines of $AOC_INPUT, falling back to defaultPath.
func (l *Loader) Load(defaultPath string) ([]string, error) {
	return l.LoadLines(ResolvePath(defaultPath))
}

// LoadLines returns one string per line of path, without line terminators.
func (l *Loader) LoadLines(path string) ([]string, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not load input: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	monitoring.Logf("input: loaded %d lines from %s", len(lines), path)
	return lines, nil
}
