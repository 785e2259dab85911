package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/chunkkit/container"
)

var statsPath string

func init() {
	cmd := newStatsCmd()
	cmd.Flags().StringVar(&statsPath, "path", "", "Stats for a specific subtree")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show detailed statistics",
		Long: `The stats command shows detailed statistics about a container file
including chunk counts, per-tag distribution and payload/overhead split.

Example:
  chunkctl stats movie.avi
  chunkctl stats movie.avi --path "RIFF/LIST"
  chunkctl stats movie.avi --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

func runStats(args []string) error {
	filePath := args[0]

	f, err := openContainer(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	tree := f.Tree
	if statsPath != "" {
		node, err := f.Find(statsPath)
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}
		tree = &container.Tree{Roots: []*container.Node{node}, Size: tree.Size, Profile: tree.Profile}
	}

	st := tree.Stats()

	// Output as JSON if requested
	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    filePath,
			"path":    statsPath,
			"profile": f.Tree.Profile,
			"size":    f.Tree.Size,
			"stats":   st,
		})
	}

	// Text output
	printInfo("\nContainer Statistics: %s\n\n", filePath)

	// File information
	printInfo("File Information:\n")
	printInfo("  Path: %s\n", filePath)
	printInfo("  Dialect: %s\n", f.Tree.Profile)
	if fileInfo, err := os.Stat(filePath); err == nil {
		printInfo("  Size: %s (%s bytes)\n", formatBytes(fileInfo.Size()), formatNumber(fileInfo.Size()))
		printInfo("  Last Modified: %s\n", fileInfo.ModTime().Format("2006-01-02 15:04:05"))
	}
	printInfo("\n")

	// Structure
	printInfo("Structure:\n")
	printInfo("  Total Chunks: %s\n", formatNumber(int64(st.Chunks)))
	printInfo("  Groups: %s\n", formatNumber(int64(st.Groups)))
	printInfo("  Max Depth: %d levels\n", st.MaxDepth)
	printInfo("  Payload: %s\n", formatBytes(st.PayloadBytes))
	if statsPath == "" && f.Tree.Size >= st.PayloadBytes {
		printInfo("  Structural Overhead: %s\n", formatBytes(f.Tree.Size-st.PayloadBytes))
	}
	printInfo("\n")

	// Chunks by tag, largest first
	if len(st.ByID) > 0 {
		printInfo("Chunks by Tag:\n")
		type tagStat struct {
			Tag  string
			Stat container.IDStat
		}
		tags := make([]tagStat, 0, len(st.ByID))
		for tag, s := range st.ByID {
			tags = append(tags, tagStat{tag, s})
		}
		sort.Slice(tags, func(i, j int) bool {
			if tags[i].Stat.Bytes != tags[j].Stat.Bytes {
				return tags[i].Stat.Bytes > tags[j].Stat.Bytes
			}
			return tags[i].Tag < tags[j].Tag
		})

		for _, ts := range tags {
			percentage := 0.0
			if f.Tree.Size > 0 {
				percentage = float64(ts.Stat.Bytes) * 100.0 / float64(f.Tree.Size)
			}
			printInfo("  [%s] %s chunks, %s (%.1f%%)\n",
				ts.Tag, formatNumber(int64(ts.Stat.Count)), formatBytes(ts.Stat.Bytes), percentage)
		}
	}

	return nil
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func formatNumber(n int64) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	// Add commas
	var result strings.Builder
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(c)
	}
	return result.String()
}
