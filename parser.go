package main

import (
	"errors"
	"strings"
)

// ErrMalformedRequest is returned when the request line does not carry a
// method, a path and a version. The caller decides how to answer.
var ErrMalformedRequest = errors.New("malformed request line")

// ParseRequest parses one request out of a raw read buffer.
//
// The buffer is split on line feeds; header lines keep any carriage
// return that came with them. Parsing stops treating lines as headers at
// the first line that is empty or a lone "\r", and everything after that
// becomes the body, one line feed appended per line. Content-Length is
// not honored: the body is whatever made it into the buffer.
func ParseRequest(raw []byte) (*Request, error) {
	lines := strings.Split(string(raw), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) == 0 {
		return nil, ErrMalformedRequest
	}

	fields := strings.Fields(lines[0])
	if len(fields) < 3 {
		return nil, ErrMalformedRequest
	}
	req := &Request{
		Method:  fields[0],
		Path:    fields[1],
		Version: fields[2],
		Headers: make(HTTPHeader),
	}

	bodyStart := len(lines)
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if line == "" || line == "\r" {
			bodyStart = i + 1
			break
		}
		colon := strings.IndexByte(line, ':')
		if colon == -1 {
			continue
		}
		// The value starts two bytes past the colon (skipping the
		// separator space) and loses its last byte (the carriage
		// return). Header lines without that space or that CR come out
		// shifted; this matches the server's historical behavior.
		name := line[:colon]
		value := ""
		if start, end := colon+2, len(line)-1; start < end {
			value = line[start:end]
		}
		req.Headers[name] = value
	}

	for _, line := range lines[bodyStart:] {
		req.Body += line + "\n"
	}

	logger.Debug().
		Str("component", "parser").
		Str("op", "ParseRequest").
		Str("reason", "request parsed").
		Msgf("method=%s path=%s version=%s", req.Method, req.Path, req.Version)
	return req, nil
}
