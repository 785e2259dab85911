package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/chunkkit/cmd/chunkexplorer/logger"

	// Register the built-in dialects for auto-detection.
	_ "github.com/joshuapare/chunkkit/iff"
	_ "github.com/joshuapare/chunkkit/riff"
)

// Populated at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Parse flags first (before positional args)
	args := os.Args[1:]
	debugMode := false
	configPath := ""

	filteredArgs := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--debug" || arg == "-d":
			debugMode = true
		case arg == "--config":
			if i+1 < len(args) {
				i++
				configPath = args[i]
			}
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if filteredArgs[0] == "--version" || filteredArgs[0] == "-v" {
		fmt.Printf("chunkexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	filePath := filteredArgs[0]
	logger.Info("starting chunkexplorer", "path", filePath, "debug", debugMode)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		logger.Warn("config rejected, using defaults", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cfg = DefaultConfig()
	}

	// Check if file exists
	if _, err := os.Stat(filePath); err != nil {
		logger.Error("file not found", "path", filePath, "error", err)
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", filePath)
		os.Exit(1)
	}

	// Create the TUI model
	m := NewModel(filePath, cfg)

	// Create the Bubbletea program
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	// Run the program
	finalModel, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	// Clean up resources
	if model, ok := finalModel.(Model); ok {
		if err := model.Close(); err != nil {
			// Cleanup is best effort
			logger.Warn("error closing resources", "error", err)
		}
	}

	logger.Info("chunkexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: chunkexplorer [options] <container-file>\n")
	fmt.Fprintf(os.Stderr, "Try 'chunkexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("chunkexplorer - Interactive TUI for chunk container files")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  chunkexplorer [options] <container-file>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Launches an interactive terminal UI for exploring RIFF, IFF and")
	fmt.Println("  related chunk container files (WAV, AVI, AIFF, ...).")
	fmt.Println()
	fmt.Println("  Features:")
	fmt.Println("    - Split-pane layout (chunk tree + hex dump)")
	fmt.Println("    - Keyboard navigation (vim-style keys supported)")
	fmt.Println("    - Expand/collapse chunk groups")
	fmt.Println("    - Decoded summaries for well-known chunks (fmt, COMM, INFO)")
	fmt.Println("    - Filter chunks by tag or form type (/)")
	fmt.Println("    - Jump straight to a chunk path (Ctrl+G)")
	fmt.Println("    - Copy chunk paths and payload hex to the clipboard")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j    Navigate up/down")
	fmt.Println("    →/l, Enter  Expand group / Inspect chunk")
	fmt.Println("    ←/h         Collapse group / Go to parent")
	fmt.Println("    Tab         Switch between tree and hex panes")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  --config <path>  Read settings from <path> instead of ~/.chunkexplorer/config.toml")
	fmt.Println("  -d, --debug      Enable debug logging to ~/.chunkexplorer/logs/")
	fmt.Println("  -h, --help       Show this help message")
	fmt.Println("  -v, --version    Show version information")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  chunkexplorer take.wav")
	fmt.Println("  chunkexplorer --debug session.aiff")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'chunkctl' command instead.")
}
