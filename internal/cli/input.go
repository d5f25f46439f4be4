// =============================================================================
// internal/cli/input.go - Name list input (args, file, stdin)
// =============================================================================
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadNames resolves the list of names to query: positional arguments win,
// then a names file, then standard input. The returned list is never empty.
func ReadNames(args []string, file string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if file != "" {
		return ReadNamesFromFile(file)
	}
	names, err := readNameLines(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading names from stdin: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no names given (pass them as arguments, via --file, or on stdin)")
	}
	return names, nil
}

// ReadNamesFromFile reads names from a file, one per line.
func ReadNamesFromFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	names, err := readNameLines(file)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no valid names found in file")
	}
	return names, nil
}

// readNameLines scans names line by line, skipping blanks and # comments.
func readNameLines(reader io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(reader)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		name := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}

		if !isValidName(name) {
			return nil, fmt.Errorf("invalid name on line %d: %s", lineNum, name)
		}

		names = append(names, name)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// isValidName performs basic domain name validation.
func isValidName(name string) bool {
	if name == "" || len(name) > 253 {
		return false
	}

	for _, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_') {
			return false
		}
	}

	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "-") ||
		strings.HasSuffix(name, "-") {
		return false
	}

	return true
}
