package contract

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Correlation strength label constants.
const (
	StrongValue   = "Strong"   // |r| >= 0.7
	ModerateValue = "Moderate" // |r| >= 0.4
	WeakValue     = "Weak"     // |r| >= 0.2
	MinimalValue  = "Minimal"  // everything below
)

// Color variables for console output.
var (
	StrongColor   = color.New(color.FgGreen, color.Bold) // strong transfer signal
	ModerateColor = color.New(color.FgCyan)              // usable but noisy
	WeakColor     = color.New(color.FgYellow)            // weak association
	MinimalColor  = color.New(color.FgRed)               // effectively no association
)

// GetPlainLabel returns a plain text label describing the strength of a
// correlation coefficient. This is the core logic used for CSV, JSON and
// table printing.
func GetPlainLabel(r float64) string {
	abs := math.Abs(r)
	switch {
	case abs >= 0.7:
		return StrongValue
	case abs >= 0.4:
		return ModerateValue
	case abs >= 0.2:
		return WeakValue
	default:
		return MinimalValue
	}
}

// GetColorLabel returns a colored strength label for console output.
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(r float64) string {
	text := GetPlainLabel(r)

	switch text {
	case StrongValue:
		return StrongColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	case WeakValue:
		return WeakColor.Sprint(text)
	default: // "Minimal"
		return MinimalColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided path, falling back to os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetRunDBFilePath returns the path to the SQLite DB file for run tracking.
func GetRunDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".jumplab_runs.db"
	}
	return filepath.Join(homeDir, ".jumplab_runs.db")
}
