package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/chunkkit/container/printer"
)

var (
	getRaw   bool
	getOut   string
	getBytes int
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getRaw, "raw", false, "Write the raw payload to stdout")
	cmd.Flags().StringVarP(&getOut, "out", "o", "", "Write the raw payload to a file")
	cmd.Flags().IntVar(&getBytes, "bytes", 64, "Hex preview length (0 = whole payload)")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Get a specific chunk",
		Long: `The get command retrieves one chunk by path and displays it, or
extracts its payload with --raw or --out.

Example:
  chunkctl get take.wav "RIFF/fmt"
  chunkctl get take.wav "RIFF/data" --raw > samples.pcm
  chunkctl get take.wav "RIFF/data" -o samples.pcm`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	filePath := args[0]
	chunkPath := args[1]

	f, err := openContainer(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	// Raw extraction writes payload bytes and nothing else
	if getRaw || getOut != "" {
		node, err := f.Find(chunkPath)
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}
		payload, ok := f.Payload(node)
		if !ok {
			return fmt.Errorf("chunk %q: payload out of bounds", chunkPath)
		}
		if getOut != "" {
			if err := os.WriteFile(getOut, payload, 0o644); err != nil {
				return fmt.Errorf("failed to write payload: %w", err)
			}
			printVerbose("Wrote %d bytes to %s\n", len(payload), getOut)
			return nil
		}
		_, err = os.Stdout.Write(payload)
		return err
	}

	// Configure printer options
	opts := printer.DefaultOptions()
	opts.MaxPreviewBytes = getBytes

	// Handle JSON output
	if jsonOut {
		opts.Format = printer.FormatJSON
		return printer.New(f.Tree, f.Data, os.Stdout, opts).PrintNode(chunkPath)
	}

	// Text output
	opts.Format = printer.FormatText
	return printer.New(f.Tree, f.Data, os.Stdout, opts).PrintNode(chunkPath)
}
