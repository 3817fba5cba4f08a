package puzzle

import "strings"

// Lines splits input into lines, dropping a trailing newline and any "\r"
// line endings. An empty input yields no lines.
func Lines(input string) []string {
	input = strings.TrimRight(input, "\r\n")
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
