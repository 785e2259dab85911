package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/chunkkit/container/printer"
)

var (
	treeDepth    int
	treeOffsets  bool
	treePreviews bool
	treeMeta     bool
	treeCompact  bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeOffsets, "offsets", false, "Show chunk offsets")
	cmd.Flags().BoolVar(&treePreviews, "previews", false, "Show hex payload previews")
	cmd.Flags().BoolVar(&treeMeta, "meta", false, "Show sizes and child counts")
	cmd.Flags().BoolVar(&treeCompact, "compact", false, "Compact output")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file> [path]",
		Short: "Display the chunk tree",
		Long: `The tree command displays the hierarchical chunk structure of a
container file. An optional path restricts output to one subtree.

With --json and --meta the full nested structure is emitted; --json alone
lists tags only.

Example:
  chunkctl tree take.wav
  chunkctl tree movie.avi "RIFF/LIST" --depth 2
  chunkctl tree take.wav --previews --offsets`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	filePath := args[0]
	var chunkPath string
	if len(args) > 1 {
		chunkPath = args[1]
	}

	f, err := openContainer(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	// Configure printer options
	opts := printer.DefaultOptions()
	opts.MaxDepth = treeDepth
	opts.ShowOffsets = treeOffsets
	opts.ShowPreviews = treePreviews
	opts.PrintMetadata = treeMeta

	// Handle JSON output
	if jsonOut {
		opts.Format = printer.FormatJSON
		return printer.New(f.Tree, f.Data, os.Stdout, opts).PrintTree(chunkPath)
	}

	// Text output
	opts.Format = printer.FormatText
	if treeCompact {
		opts.IndentSize = 1
	}

	if err := printer.New(f.Tree, f.Data, os.Stdout, opts).PrintTree(chunkPath); err != nil {
		return fmt.Errorf("failed to display tree: %w", err)
	}

	return nil
}
