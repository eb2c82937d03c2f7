package main

import (
	"fmt"
	"os"
	"strings"
)

// Used to load file-backed routes. Can be mocked.
var readFile = os.ReadFile

// Router resolves requests against a fixed route table. The table is
// read-only after construction, so one router is safely shared by every
// connection goroutine.
type Router struct {
	routes Routes
}

func NewRouter(routes Routes) *Router {
	return &Router{routes: routes}
}

// Handle turns a request into a response. Unknown paths and disallowed
// methods become 404/405 responses; a file that cannot be read at
// request time is a 404, never a propagated error.
func (rt *Router) Handle(req *Request) *Response {
	entry, ok := rt.routes[req.Path]
	if !ok {
		logger.Error().
			Str("component", "router").
			Str("op", "Handle").
			Str("reason", "route not found").
			Msgf("no route for %s", req.Path)
		return &Response{
			Code:        StatusNotFound,
			Body:        fmt.Sprintf("<html><body>404 Route Not Found: %s</body></html>", req.Path),
			ContentType: "text/html",
		}
	}

	if !methodAllowed(entry.Methods, req.Method) {
		allowed := strings.Join(entry.Methods, " ")
		logger.Error().
			Str("component", "router").
			Str("op", "Handle").
			Str("reason", "method not allowed").
			Msgf("method %s not allowed for %s, allowed: %s", req.Method, req.Path, allowed)
		return &Response{
			Code: StatusMethodNotAllowed,
			Body: fmt.Sprintf("<html><body>405 Method Not Allowed: %s not allowed for %s. Allowed methods: %s</body></html>",
				req.Method, req.Path, allowed),
			ContentType: "text/html",
		}
	}

	if !entry.IsFile {
		return &Response{
			Code:        StatusOK,
			Body:        entry.Content,
			ContentType: "text/html",
		}
	}

	content, err := readFile(entry.Content)
	if err != nil {
		logger.Error().
			Str("component", "router").
			Str("op", "Handle").
			Str("reason", "file not found").
			Msgf("failed to open %s: %v", entry.Content, err)
		return &Response{
			Code:        StatusNotFound,
			Body:        fmt.Sprintf("<html><body>404 Resource Not Found: %s</body></html>", req.Path),
			ContentType: "text/html",
		}
	}
	logger.Info().
		Str("component", "router").
		Str("op", "Handle").
		Str("reason", "file served").
		Msgf("serving content from %s", entry.Content)
	return &Response{
		Code:        StatusOK,
		Body:        string(content),
		ContentType: ContentTypeOf(entry.Content),
	}
}

func methodAllowed(methods []string, method string) bool {
	for _, m := range methods {
		if m == method {
			return true
		}
	}
	return false
}
