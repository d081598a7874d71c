package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nanolang/nano/internal/config"
	"github.com/nanolang/nano/internal/interp"
)

func main() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r) // Re-panic to get stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	sourceCode, filePath, err := readInputFromArgs(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	optionsDir := "."
	if filePath != "" {
		optionsDir = filepath.Dir(filePath)
	}
	opts, err := config.LoadOptions(optionsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	useColor = colorEnabled(opts.Color)

	result := interp.New(opts).Run(sourceCode)
	printDiagnostics(result)
	os.Exit(result.ExitCode())
}

// printDiagnostics emits every logged exception in raise order, then the
// run summary whose color reflects success or failure.
func printDiagnostics(result *interp.Result) {
	for _, record := range result.Records {
		fmt.Printf("\n%s\n", red(record.String()))
	}

	summary := fmt.Sprintf("Exited with return code: %d", result.Count)
	if result.Count == 0 {
		fmt.Printf("\n%s\n", green(summary))
	} else {
		fmt.Printf("\n%s\n", red(summary))
	}
}

func readInputFromArgs(args []string) (string, string, error) {
	if len(args) >= 2 {
		path := args[1]
		input, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("reading input: %w", err)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		return string(input), abs, nil
	}

	// Read from stdin
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", "", fmt.Errorf("usage: %s <file%s> or pipe from stdin", args[0], config.SourceFileExt)
	}
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("reading input: %w", err)
	}
	return string(input), "", nil
}
