package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/joshuapare/chunkkit/chunk"
	"github.com/joshuapare/chunkkit/container"
)

var (
	validateMaxDepth  int
	validateMaxChunks int
)

func init() {
	cmd := newValidateCmd()
	cmd.Flags().IntVar(&validateMaxDepth, "max-depth", 0, "Reject nesting deeper than this (0 = unlimited)")
	cmd.Flags().IntVar(&validateMaxChunks, "max-chunks", 0, "Reject more chunks than this (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate container structure",
		Long: `The validate command scans a container file end to end, checking
that every declared size is consistent with the bytes actually present
and that nesting stays within the given bounds.

Example:
  chunkctl validate take.wav
  chunkctl validate movie.avi --max-depth 16
  chunkctl validate take.wav --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	filePath := args[0]

	prof, err := forcedProfile()
	if err != nil {
		return err
	}

	printVerbose("Validating container: %s\n", filePath)

	f, scanErr := container.Open(filePath, container.OpenOptions{
		Profile: prof,
		Scan: container.ScanOptions{
			MaxDepth:  validateMaxDepth,
			MaxChunks: validateMaxChunks,
		},
	})
	if scanErr == nil {
		defer f.Close()
	}

	// Prepare result
	result := map[string]interface{}{
		"file":  filePath,
		"valid": scanErr == nil,
	}
	if scanErr == nil {
		result["profile"] = f.Tree.Profile
	} else {
		result["error"] = scanErr.Error()
		var cerr *chunk.Error
		if errors.As(scanErr, &cerr) {
			result["kind"] = cerr.Kind.String()
		}
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(result)
	}

	// Text output
	printInfo("\nValidating %s...\n\n", filePath)

	if scanErr != nil {
		printInfo("  ✗ %v\n", scanErr)
		printInfo("\nResult: ✗ INVALID\n")
		return scanErr
	}

	printInfo("  ✓ Dialect recognized (%s)\n", f.Tree.Profile)
	printInfo("  ✓ Declared sizes consistent\n")
	printInfo("  ✓ Nesting within bounds\n")
	printInfo("\nResult: ✓ VALID\n")

	return nil
}
