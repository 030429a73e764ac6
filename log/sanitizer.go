package log

import "strings"

// controlCharReplacer escapes control characters that can be used for log
// injection (CWE-117). Participant names come straight from user input;
// newlines or carriage returns inside them could forge fake log entries.
var controlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Sanitize escapes control characters in a user-supplied string value.
func Sanitize(s string) string {
	return controlCharReplacer.Replace(s)
}
