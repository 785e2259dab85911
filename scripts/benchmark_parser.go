package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string
	Variant     string
	Iterations  int
	NsPerOp     float64
	MBPerSec    float64
	BytesPerOp  int64
	AllocsPerOp int64
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	// Read benchmark output
	var scanner *bufio.Scanner
	var inputF *os.File
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		inputF = f
		scanner = bufio.NewScanner(f)
	} else {
		scanner = bufio.NewScanner(os.Stdin)
	}

	// Parse benchmarks
	results := parseBenchmarks(scanner)

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	// Generate markdown report
	report := generateMarkdownReport(results)

	// Write output
	if *outputFile != "" {
		err := os.WriteFile(*outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			if inputF != nil {
				inputF.Close()
			}
			os.Exit(1)
		}
		if !*quiet {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
		}
	} else {
		fmt.Fprint(os.Stdout, report)
	}

	// Close input file if opened
	if inputF != nil {
		inputF.Close()
	}
}

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	// Regex to parse benchmark output lines
	// BenchmarkScan_Wide_1MB-8    1000    1245031 ns/op    845.12 MB/s    4096 B/op    8 allocs/op
	benchmarkRegex := regexp.MustCompile(
		`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+([\d.]+)\s+MB/s)?(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`,
	)

	for scanner.Scan() {
		line := scanner.Text()

		// Try to parse as JSON (from -json flag)
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		// Parse benchmark line
		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		name := matches[1]
		iterations, _ := strconv.Atoi(matches[2])
		nsPerOp, _ := strconv.ParseFloat(matches[3], 64)

		var mbPerSec float64
		var bytesPerOp int64
		var allocsPerOp int64

		if matches[4] != "" {
			mbPerSec, _ = strconv.ParseFloat(matches[4], 64)
		}
		if matches[5] != "" {
			bytesPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
		}
		if matches[6] != "" {
			allocsPerOp, _ = strconv.ParseInt(matches[6], 10, 64)
		}

		operation, variant := splitBenchmarkName(name)

		results = append(results, BenchmarkResult{
			Name:        name,
			Operation:   operation,
			Variant:     variant,
			Iterations:  iterations,
			NsPerOp:     nsPerOp,
			MBPerSec:    mbPerSec,
			BytesPerOp:  bytesPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}

	// Sort by operation then variant
	sort.Slice(results, func(i, j int) bool {
		if results[i].Operation != results[j].Operation {
			return results[i].Operation < results[j].Operation
		}
		return results[i].Variant < results[j].Variant
	})

	return results
}

func splitBenchmarkName(name string) (string, string) {
	// Format: Benchmark<Operation>_<Variant>-<procs>
	// e.g. BenchmarkScan_Wide_1MB-8 -> operation "Scan", variant "Wide_1MB"

	name = strings.TrimPrefix(name, "Benchmark")

	// Strip the -N GOMAXPROCS suffix
	if dashIdx := strings.LastIndex(name, "-"); dashIdx > 0 {
		if _, err := strconv.Atoi(name[dashIdx+1:]); err == nil {
			name = name[:dashIdx]
		}
	}

	if idx := strings.Index(name, "_"); idx > 0 {
		return name[:idx], name[idx+1:]
	}
	return name, ""
}

func generateMarkdownReport(results []BenchmarkResult) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Benchmark Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Total benchmarks**: %d\n", len(results)))

	operations := make(map[string]int)
	for _, r := range results {
		operations[r.Operation]++
	}
	sb.WriteString(fmt.Sprintf("- **Operations covered**: %d\n", len(operations)))
	sb.WriteString("\n")

	// Detailed results table
	sb.WriteString("## Detailed Results\n\n")
	sb.WriteString(
		"| Operation | Variant | ns/op | Throughput | Memory (B/op) | Allocs |\n",
	)
	sb.WriteString(
		"|-----------|---------|-------|------------|---------------|--------|\n",
	)

	for _, r := range results {
		throughput := "-"
		if r.MBPerSec > 0 {
			throughput = fmt.Sprintf("%.1f MB/s", r.MBPerSec)
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
			r.Operation,
			r.Variant,
			formatNumber(r.NsPerOp),
			throughput,
			formatBytes(r.BytesPerOp),
			formatNumber(float64(r.AllocsPerOp)),
		))
	}

	sb.WriteString("\n")

	// Category summaries
	sb.WriteString("## Performance by Category\n\n")

	categories := categorizeOperations(results)
	for _, category := range []string{"Scanning", "Tree Operations", "Decoding", "Other"} {
		benches := categories[category]
		if len(benches) == 0 {
			continue
		}

		var slowest BenchmarkResult
		for _, r := range benches {
			if r.NsPerOp > slowest.NsPerOp {
				slowest = r
			}
		}
		sb.WriteString(fmt.Sprintf("- **%s**: %d benchmarks, slowest %s (%s ns/op)\n",
			category, len(benches), slowest.Name, formatNumber(slowest.NsPerOp)))
	}

	sb.WriteString("\n")

	// Notes
	sb.WriteString("## Notes\n\n")
	sb.WriteString("- **Throughput**: reported for benchmarks that declare their input size\n")
	sb.WriteString("- **Memory and allocations**: present when run with `-benchmem`\n")

	return sb.String()
}

func categorizeOperations(results []BenchmarkResult) map[string][]BenchmarkResult {
	categories := map[string][]BenchmarkResult{
		"Scanning":        {},
		"Tree Operations": {},
		"Decoding":        {},
		"Other":           {},
	}

	for _, r := range results {
		op := strings.ToLower(r.Operation)

		switch {
		case strings.Contains(op, "scan") || strings.Contains(op, "open") ||
			strings.Contains(op, "parse"):
			categories["Scanning"] = append(categories["Scanning"], r)
		case strings.Contains(op, "find") || strings.Contains(op, "walk") ||
			strings.Contains(op, "stats"):
			categories["Tree Operations"] = append(categories["Tree Operations"], r)
		case strings.Contains(op, "decode"):
			categories["Decoding"] = append(categories["Decoding"], r)
		default:
			categories["Other"] = append(categories["Other"], r)
		}
	}

	return categories
}

func formatNumber(n float64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.2fM", n/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", n/1000)
	}
	return fmt.Sprintf("%.0f", n)
}

func formatBytes(b int64) string {
	if b >= 1024*1024 {
		return fmt.Sprintf("%.2fMB", float64(b)/(1024*1024))
	} else if b >= 1024 {
		return fmt.Sprintf("%.1fKB", float64(b)/1024)
	}
	return fmt.Sprintf("%dB", b)
}
