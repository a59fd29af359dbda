// Package console provides leveled, optionally colorized terminal output for
// the hover CLI, plus tabular rendering for list-style commands.
package console

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log levels, lowest to highest.
const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

// Console writes leveled messages to a writer. Color is enabled only when
// the writer is a terminal and NO_COLOR is unset. Safe for concurrent use.
type Console struct {
	mu    sync.Mutex
	out   io.Writer
	level int
	color bool
}

// New creates a Console writing to out at the given level ("debug", "info",
// "warn", "error"). Empty or unknown levels default to info.
func New(out io.Writer, level string) *Console {
	return &Console{
		out:   out,
		level: parseLevel(level),
		color: isTerminal(out),
	}
}

func parseLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	// color.NoColor already accounts for the NO_COLOR convention.
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Print writes a plain line regardless of level.
func (c *Console) Print(format string, args ...any) {
	c.write(nil, format, args...)
}

// Debug writes a line visible only at the debug level.
func (c *Console) Debug(format string, args ...any) {
	c.log(levelDebug, nil, format, args...)
}

// Info writes a line visible at the info level and below.
func (c *Console) Info(format string, args ...any) {
	c.log(levelInfo, nil, format, args...)
}

// Warn writes a yellow line visible at the warn level and below.
func (c *Console) Warn(format string, args ...any) {
	c.log(levelWarn, color.New(color.FgYellow), format, args...)
}

// Error writes a red line at any level.
func (c *Console) Error(format string, args ...any) {
	c.log(levelError, color.New(color.FgRed), format, args...)
}

// Success writes a green line regardless of level.
func (c *Console) Success(format string, args ...any) {
	c.write(color.New(color.FgGreen), format, args...)
}

// JSON writes v as a single JSON document.
func (c *Console) JSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return json.NewEncoder(c.out).Encode(v)
}

func (c *Console) log(level int, col *color.Color, format string, args ...any) {
	if level < c.level {
		return
	}
	c.write(col, format, args...)
}

func (c *Console) write(col *color.Color, format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if c.color && col != nil {
		msg = col.Sprint(msg)
	}
	fmt.Fprintln(c.out, msg)
}
