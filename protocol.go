package main

import "fmt"

// Not map[string][]string, unlike http.Header. Keys are kept exactly as
// received and a repeated name overwrites the earlier value.
type HTTPHeader map[string]string

// Request is one parsed HTTP/1.1 request. Built once per connection,
// never mutated afterwards.
type Request struct {
	Method  string
	Path    string
	Version string
	Headers HTTPHeader
	Body    string
}

// RouteEntry describes what a single path serves. Methods keeps its
// declaration order; the 405 message lists them in that order. Content is
// a filesystem path when IsFile is set, otherwise a literal body.
type RouteEntry struct {
	Methods []string
	Content string
	IsFile  bool
}

// Routes maps an exact request path to its entry. No patterns, no
// trailing-slash normalization: the match is byte-for-byte.
type Routes map[string]RouteEntry

type Response struct {
	Code        int
	Body        string
	ContentType string
}

const (
	StatusOK               = 200
	StatusBadRequest       = 400
	StatusNotFound         = 404
	StatusMethodNotAllowed = 405
)

var statusPhrases = map[int]string{
	StatusOK:               "OK",
	StatusBadRequest:       "Bad Request",
	StatusNotFound:         "Not Found",
	StatusMethodNotAllowed: "Method Not Allowed",
}

// StatusPhrase returns the reason phrase for a code this server is
// allowed to produce. Any other code is an internal error, not a
// fallthrough to a wrong phrase.
func StatusPhrase(code int) (string, error) {
	phrase, ok := statusPhrases[code]
	if !ok {
		return "", fmt.Errorf("no reason phrase for status code %d", code)
	}
	return phrase, nil
}

var ResponseBadRequest = &Response{
	Code:        StatusBadRequest,
	Body:        "<html><body>400 Bad Request</body></html>",
	ContentType: "text/html",
}
