package utils

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
)

// LoadContent resolves the CLI input argument: empty reads stdin, an existing
// file path reads the file, anything else is taken as the content itself
// (e.g. a URI).
func LoadContent(input string, stdin io.Reader) (string, error) {
	if input == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	if info, err := os.Stat(input); err == nil && info.Mode().IsRegular() {
		data, err := os.ReadFile(input)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", input, err)
		}
		return string(data), nil
	}

	return input, nil
}

// EscapeURI normalizes percent-escaping of a URI: the annotation service may
// balk at non-Latin characters, so the URI is unescaped and then re-escaped
// with '/' and ':' kept literal.
func EscapeURI(uri string) string {
	unescaped, err := url.PathUnescape(uri)
	if err != nil {
		unescaped = uri
	}

	var b strings.Builder
	for i := 0; i < len(unescaped); i++ {
		c := unescaped[i]
		if uriSafe(c) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

func uriSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '_', '.', '-', '~', '/', ':':
		return true
	}
	return false
}
