// Package canonical turns Amazon product URLs into their short /dp/ form.
package canonical

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultHost is the redirect prefix used when none is configured.
const DefaultHost = "https://amazon.co.jp/"

// Identifiers are Unicode word characters, not just ASCII.
var productSegment = regexp.MustCompile(`/dp/[\p{L}\p{M}\p{Nd}\p{Pc}]+?/`)

// Extract returns the leftmost /dp/{id}/ segment found in input.
func Extract(input string) (string, bool) {
	loc := productSegment.FindStringIndex(input)
	if loc == nil {
		return "", false
	}
	return input[loc[0]:loc[1]], true
}

// BuildRedirect joins the default host with a matched segment.
func BuildRedirect(segment string) string {
	return Shortener{}.BuildRedirect(segment)
}

// Decode percent-decodes a query value.
func Decode(input string) (string, error) {
	out, err := url.QueryUnescape(input)
	if err != nil {
		return "", &DecodingError{Input: input, Err: err}
	}
	return out, nil
}

// Resolve extracts the product segment from input and parses the redirect
// target using the default host.
func Resolve(input string) (*url.URL, bool, error) {
	return Shortener{}.Resolve(input)
}

// Shortener builds redirect targets against a configurable host.
// The zero value uses DefaultHost.
type Shortener struct {
	Host string
}

// NewShortener returns a Shortener for host. An empty host means DefaultHost.
func NewShortener(host string) Shortener {
	return Shortener{Host: host}
}

func (s Shortener) host() string {
	if s.Host == "" {
		return DefaultHost
	}
	return s.Host
}

// BuildRedirect returns the host followed by segment with exactly one slash
// between them.
func (s Shortener) BuildRedirect(segment string) string {
	return strings.TrimSuffix(s.host(), "/") + "/" + strings.TrimPrefix(segment, "/")
}

// Resolve reports whether input holds a product segment and, if so, the
// parsed redirect target.
func (s Shortener) Resolve(input string) (*url.URL, bool, error) {
	segment, ok := Extract(input)
	if !ok {
		return nil, false, nil
	}

	target := s.BuildRedirect(segment)
	u, err := url.Parse(target)
	if err != nil {
		return nil, true, &URLParseError{Target: target, Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, true, &URLParseError{Target: target, Err: errNotAbsolute}
	}
	return u, true, nil
}
