package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/chunkkit/container"

	// Register the built-in dialects for auto-detection.
	_ "github.com/joshuapare/chunkkit/iff"
	_ "github.com/joshuapare/chunkkit/riff"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	profilePath string
)

var rootCmd = &cobra.Command{
	Use:   "chunkctl",
	Short: "Inspect chunk container files (RIFF, IFF and kin)",
	Long: `chunkctl is a tool for inspecting chunk container files of the
RIFF/IFF family: WAV, AVI, WebP, AIFF, ILBM and their relatives. It scans
files into chunk trees and supports listing, extraction, validation and
statistics. Custom dialects can be supplied as YAML profiles.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&profilePath, "profile", "", "Force a dialect from a YAML profile file")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// forcedProfile loads the profile named by --profile, or nil when unset.
func forcedProfile() (*container.Profile, error) {
	if profilePath == "" {
		return nil, nil
	}
	prof, err := container.LoadProfile(profilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	printVerbose("Using profile: %s\n", prof.Name)
	return prof, nil
}

// openContainer opens and scans a container file, honoring --profile.
func openContainer(path string) (*container.File, error) {
	prof, err := forcedProfile()
	if err != nil {
		return nil, err
	}

	printVerbose("Opening container: %s\n", path)

	f, err := container.Open(path, container.OpenOptions{Profile: prof})
	if err != nil {
		return nil, fmt.Errorf("failed to open container: %w", err)
	}
	return f, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
