package utils

import (
	"fmt"
	"io"
	"strings"
)

// ReadAndCleanBody reads the body, closes it and trims spaces from it.
func ReadAndCleanBody(body io.ReadCloser) (cleanedBody string, err error) {
	b, err := io.ReadAll(body)
	if err != nil {
		_ = body.Close()
		return "", fmt.Errorf("reading body: %w", err)
	}
	err = body.Close()
	if err != nil {
		return "", fmt.Errorf("closing body: %w", err)
	}

	return strings.TrimSpace(string(b)), nil
}

// BodyToSingleLine reads the body and returns it on a single line,
// returning an empty string if it cannot be read.
func BodyToSingleLine(body io.Reader) (s string) {
	b, err := io.ReadAll(body)
	if err != nil {
		return ""
	}
	return ToSingleLine(string(b))
}

func ToSingleLine(s string) (line string) {
	line = strings.ReplaceAll(s, "\n", "")
	line = strings.ReplaceAll(line, "\r", "")
	line = strings.ReplaceAll(line, "  ", " ")
	line = strings.ReplaceAll(line, "  ", " ")
	return line
}
