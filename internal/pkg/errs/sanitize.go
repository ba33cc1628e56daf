package errs

import "strings"

// sanitize flattens error messages to a single line so that values containing
// newlines cannot break structured log output.
func sanitize(message string) string {
	message = strings.ReplaceAll(message, "\r\n", " ")
	message = strings.ReplaceAll(message, "\n", " ")
	message = strings.ReplaceAll(message, "\r", " ")
	return message
}
