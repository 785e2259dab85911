package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Detect the dialect and report basic metadata",
		Long: `The info command scans a container file and displays basic metadata
including file size, detected dialect, form type and chunk counts.

Example:
  chunkctl info take.wav
  chunkctl info take.wav --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	filePath := args[0]

	f, err := openContainer(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	st := f.Tree.Stats()

	form := ""
	if len(f.Tree.Roots) > 0 && f.Tree.Roots[0].Group {
		form = f.Tree.Roots[0].FormType.String()
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":     filePath,
			"size":     f.Tree.Size,
			"profile":  f.Tree.Profile,
			"form":     form,
			"chunks":   st.Chunks,
			"groups":   st.Groups,
			"maxDepth": st.MaxDepth,
		})
	}

	// Text output
	printInfo("\nContainer Information:\n")
	printInfo("  File: %s\n", filePath)

	// Get file size
	if stat, err := os.Stat(filePath); err == nil {
		size := stat.Size()
		if size < 1024 {
			printInfo("  Size: %d bytes\n", size)
		} else if size < 1024*1024 {
			printInfo("  Size: %.1f KB\n", float64(size)/1024)
		} else {
			printInfo("  Size: %.1f MB\n", float64(size)/(1024*1024))
		}
	}

	printInfo("  Dialect: %s\n", f.Tree.Profile)
	if form != "" {
		printInfo("  Form: %s\n", form)
	}
	printInfo("  Chunks: %d (%d groups)\n", st.Chunks, st.Groups)
	printInfo("  Max Depth: %d\n", st.MaxDepth)

	printInfo("\nValidation:\n")
	printInfo("  ✓ Structure valid\n")
	printInfo("  ✓ Declared sizes consistent\n")

	return nil
}
