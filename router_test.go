package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRouterServesFile(t *testing.T) {
	page := writeTempFile(t, "page.html", "<html><body>hi</body></html>")
	router := NewRouter(Routes{
		"/page": {Methods: []string{"GET"}, Content: page, IsFile: true},
	})
	res := router.Handle(&Request{Method: "GET", Path: "/page", Version: "HTTP/1.1"})
	if res.Code != 200 {
		t.Fatalf("status: got %d, want 200", res.Code)
	}
	ExpectEqual(t, "<html><body>hi</body></html>", res.Body)
	ExpectEqual(t, "text/html", res.ContentType)
}

func TestRouterServesLiteral(t *testing.T) {
	router := NewRouter(Routes{
		"/inline": {Methods: []string{"GET"}, Content: "<html><body>inline</body></html>"},
	})
	res := router.Handle(&Request{Method: "GET", Path: "/inline", Version: "HTTP/1.1"})
	if res.Code != 200 {
		t.Fatalf("status: got %d, want 200", res.Code)
	}
	ExpectEqual(t, "<html><body>inline</body></html>", res.Body)
	ExpectEqual(t, "text/html", res.ContentType)
}

func TestRouterRouteNotFound(t *testing.T) {
	router := NewRouter(Routes{})
	for _, method := range []string{"GET", "POST", "DELETE"} {
		res := router.Handle(&Request{Method: method, Path: "/nope", Version: "HTTP/1.1"})
		if res.Code != 404 {
			t.Fatalf("status: got %d, want 404", res.Code)
		}
		if !strings.Contains(res.Body, "/nope") {
			t.Errorf("body should name the path, got %q", res.Body)
		}
	}
}

// The path must match byte-for-byte: no trailing-slash normalization.
func TestRouterExactPathMatch(t *testing.T) {
	page := writeTempFile(t, "page.html", "x")
	router := NewRouter(Routes{
		"/page": {Methods: []string{"GET"}, Content: page, IsFile: true},
	})
	res := router.Handle(&Request{Method: "GET", Path: "/page/", Version: "HTTP/1.1"})
	if res.Code != 404 {
		t.Errorf("status: got %d, want 404", res.Code)
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	page := writeTempFile(t, "page.html", "x")
	router := NewRouter(Routes{
		"/page": {Methods: []string{"GET", "POST"}, Content: page, IsFile: true},
	})
	res := router.Handle(&Request{Method: "DELETE", Path: "/page", Version: "HTTP/1.1"})
	if res.Code != 405 {
		t.Fatalf("status: got %d, want 405", res.Code)
	}
	for _, want := range []string{"DELETE", "not allowed", "Allowed methods: GET POST"} {
		if !strings.Contains(res.Body, want) {
			t.Errorf("body %q should contain %q", res.Body, want)
		}
	}
	// Method matching is case-sensitive.
	res = router.Handle(&Request{Method: "get", Path: "/page", Version: "HTTP/1.1"})
	if res.Code != 405 {
		t.Errorf("lowercase method: got %d, want 405", res.Code)
	}
}

func TestRouterMissingFile(t *testing.T) {
	router := NewRouter(Routes{
		"/gone": {Methods: []string{"GET"}, Content: filepath.Join(t.TempDir(), "gone.html"), IsFile: true},
	})
	res := router.Handle(&Request{Method: "GET", Path: "/gone", Version: "HTTP/1.1"})
	if res.Code != 404 {
		t.Fatalf("status: got %d, want 404", res.Code)
	}
	if !strings.Contains(res.Body, "404 Resource Not Found") {
		t.Errorf("body %q should report a missing resource", res.Body)
	}
}

func TestRouterFileReadFailure(t *testing.T) {
	orig := readFile
	readFile = func(string) ([]byte, error) { return nil, errors.New("disk on fire") }
	defer func() { readFile = orig }()

	router := NewRouter(Routes{
		"/page": {Methods: []string{"GET"}, Content: "irrelevant.html", IsFile: true},
	})
	res := router.Handle(&Request{Method: "GET", Path: "/page", Version: "HTTP/1.1"})
	if res.Code != 404 {
		t.Errorf("status: got %d, want 404", res.Code)
	}
}

// Every default route must answer 200 with the backing file's bytes for
// each of its allowed methods.
func TestDefaultRoutesAllowedMethods(t *testing.T) {
	routes := DefaultRoutes(".")
	router := NewRouter(routes)
	for path, entry := range routes {
		want, err := os.ReadFile(entry.Content)
		if err != nil {
			t.Fatalf("route %s: %v", path, err)
		}
		for _, method := range entry.Methods {
			res := router.Handle(&Request{Method: method, Path: path, Version: "HTTP/1.1"})
			if res.Code != 200 {
				t.Errorf("%s %s: got %d, want 200", method, path, res.Code)
			}
			ExpectEqual(t, string(want), res.Body)
		}
	}
}
