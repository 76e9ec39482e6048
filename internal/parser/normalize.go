package parser

import "strings"

// structuralReplacer drops the punctuation that wraps a tag line.
var structuralReplacer = strings.NewReplacer("[", "", "]", "", `"`, "")

// NormalizeLine removes every '[', ']' and '"' from line, so that
// `[White "Fischer, Robert J."]` becomes `White Fischer, Robert J.`.
// It is idempotent.
func NormalizeLine(line string) string {
	return structuralReplacer.Replace(line)
}

// trimEOL strips a trailing "\n" or "\r\n".
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// isBlank returns true for lines holding only whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
