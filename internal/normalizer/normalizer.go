// Package normalizer canonicalizes raw HTTP(S) URLs so that
// semantically-equivalent spellings compare equal as strings.
// Normalize is pure: no I/O, no state.
package normalizer

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrEmptyURL is returned for blank or whitespace-only input.
	ErrEmptyURL = errors.New("url is empty")

	// ErrMissingHost is returned when the URL has no host component.
	ErrMissingHost = errors.New("url has no host")

	// ErrUnsupportedScheme is returned for schemes outside http/https.
	ErrUnsupportedScheme = errors.New("only HTTP and HTTPS URLs are supported")

	// ErrInvalidURL is returned when the input cannot be parsed as a URL.
	ErrInvalidURL = errors.New("invalid url")
)

const (
	schemeHTTP  = "http"
	schemeHTTPS = "https"
)

// Normalize converts a raw URL string into its canonical form:
// lowercase http/https scheme and host, default ports and a single
// leading "www." label stripped, query parameters sorted by key,
// root path and empty query/fragment dropped. A missing scheme is
// assumed to be http. Userinfo and non-root paths survive untouched.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyURL
	}

	if scheme, rest, ok := splitScheme(raw); ok {
		// Lowercase only the scheme token so the rest of the string
		// is parsed exactly as submitted.
		raw = strings.ToLower(scheme) + "://" + rest
	} else {
		raw = schemeHTTP + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrMissingHost, raw)
	}

	if u.Scheme != schemeHTTP && u.Scheme != schemeHTTPS {
		return "", fmt.Errorf("scheme %q is not allowed: %w", u.Scheme, ErrUnsupportedScheme)
	}

	host := strings.ToLower(u.Hostname())
	if rest, found := strings.CutPrefix(host, "www."); found {
		// Only one leading label is stripped: blog.www.example.com
		// stays as is. Broadening this would silently change which
		// URLs count as duplicates.
		host = rest
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]" // IPv6 literal
	}

	port := u.Port()
	if port == defaultPort(u.Scheme) {
		port = ""
	}

	query := ""
	if u.RawQuery != "" {
		params, err := url.ParseQuery(u.RawQuery)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
		}
		// Encode sorts pairs by key and form-encodes the result;
		// duplicate keys keep their original relative order.
		query = params.Encode()
	}

	path := u.EscapedPath()
	if path == "/" {
		path = ""
	}

	var b strings.Builder
	b.WriteString(u.Scheme)
	b.WriteString("://")
	if u.User != nil {
		b.WriteString(u.User.String())
		b.WriteByte('@')
	}
	b.WriteString(host)
	if port != "" {
		b.WriteByte(':')
		b.WriteString(port)
	}
	b.WriteString(path)
	if query != "" {
		b.WriteByte('?')
		b.WriteString(query)
	}
	if u.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}

	return b.String(), nil
}

// splitScheme detects a leading "<letters>://" prefix. Anything else,
// including digits in the scheme token, is treated as scheme-less input.
func splitScheme(s string) (scheme, rest string, ok bool) {
	i := strings.Index(s, "://")
	if i <= 0 {
		return "", s, false
	}
	for _, r := range s[:i] {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isLetter {
			return "", s, false
		}
	}
	return s[:i], s[i+3:], true
}

func defaultPort(scheme string) string {
	if scheme == schemeHTTPS {
		return "443"
	}
	return "80"
}
