package main

import (
	"fmt"
	"strings"

	"github.com/casbin/govaluate"
	"github.com/spf13/cobra"

	"github.com/joshuapare/chunkkit/container"
)

var lsWhere string

func init() {
	cmd := newLsCmd()
	cmd.Flags().
		StringVar(&lsWhere, "where", "", "Filter expression over tag, form, size, offset, depth, group, children")
	rootCmd.AddCommand(cmd)
}

func newLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls <file> [path]",
		Short: "List chunks at a given path",
		Long: `The ls command lists the chunks directly under a path in a container
file. If no path is specified, lists the top-level chunks.

The --where flag filters rows with an expression over the fields tag,
form, size, offset, depth, group and children. Tags compare without
their trailing padding spaces, so tag == 'fmt' matches "fmt ".

Example:
  chunkctl ls take.wav
  chunkctl ls take.wav "RIFF"
  chunkctl ls movie.avi "RIFF" --where "size > 1024"
  chunkctl ls take.wav "RIFF/LIST" --where "tag == 'IART'" --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLs(args)
		},
	}
	return cmd
}

// chunkRow is one ls output row.
type chunkRow struct {
	Tag      string `json:"tag"`
	Form     string `json:"form,omitempty"`
	Offset   int64  `json:"offset"`
	Size     int64  `json:"size"`
	Group    bool   `json:"group,omitempty"`
	Children int    `json:"children,omitempty"`
}

func runLs(args []string) error {
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

	// Resolve the listing level
	level := f.Tree.Roots
	if chunkPath != "" {
		node, err := f.Find(chunkPath)
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}
		level = node.Children
	}

	// Compile the filter once
	var filter *govaluate.EvaluableExpression
	if lsWhere != "" {
		filter, err = govaluate.NewEvaluableExpression(lsWhere)
		if err != nil {
			return fmt.Errorf("bad --where expression: %w", err)
		}
	}

	rows := make([]chunkRow, 0, len(level))
	for _, n := range level {
		if filter != nil {
			keep, err := matchChunk(filter, n)
			if err != nil {
				return err
			}
			if !keep {
				continue
			}
		}
		row := chunkRow{
			Tag:      n.ID.String(),
			Offset:   n.Offset,
			Size:     n.Size,
			Group:    n.Group,
			Children: len(n.Children),
		}
		if n.Group {
			row.Form = n.FormType.String()
		}
		rows = append(rows, row)
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":   filePath,
			"path":   chunkPath,
			"chunks": rows,
			"count":  len(rows),
		})
	}

	// Text output
	if chunkPath != "" {
		printInfo("\nChunks in %s:\n", chunkPath)
	} else {
		printInfo("\nTop-level chunks:\n")
	}

	for _, row := range rows {
		if row.Group {
			printInfo("  [%s] %s  %d bytes, %d children @ %d\n",
				row.Tag, row.Form, row.Size, row.Children, row.Offset)
		} else {
			printInfo("  [%s]  %d bytes @ %d\n", row.Tag, row.Size, row.Offset)
		}
	}

	printInfo("\nTotal: %d chunks\n", len(rows))

	return nil
}

// matchChunk evaluates the --where filter against one chunk.
func matchChunk(filter *govaluate.EvaluableExpression, n *container.Node) (bool, error) {
	form := ""
	if n.Group {
		form = strings.TrimRight(n.FormType.String(), " ")
	}
	params := map[string]interface{}{
		"tag":      strings.TrimRight(n.ID.String(), " "),
		"form":     form,
		"size":     float64(n.Size),
		"offset":   float64(n.Offset),
		"depth":    float64(n.Depth),
		"group":    n.Group,
		"children": float64(len(n.Children)),
	}
	result, err := filter.Evaluate(params)
	if err != nil {
		return false, fmt.Errorf("evaluate --where: %w", err)
	}
	keep, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("--where must evaluate to a boolean, got %T", result)
	}
	return keep, nil
}
