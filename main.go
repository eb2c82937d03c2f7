package main

import (
	"flag"
	"path/filepath"
)

var (
	port    = flag.String("port", "8080", "port number")
	backlog = flag.Int("backlog", 10, "listen backlog")
	dir     = flag.String("dir", ".", "directory holding templates/ and static/")
)

// DefaultRoutes is the fixed route table the server ships with. Paths
// are resolved relative to the asset directory.
func DefaultRoutes(dir string) Routes {
	return Routes{
		"/":              {Methods: []string{"GET"}, Content: filepath.Join(dir, "templates", "index.html"), IsFile: true},
		"/test/get":      {Methods: []string{"GET"}, Content: filepath.Join(dir, "templates", "test.html"), IsFile: true},
		"/test/post":     {Methods: []string{"POST"}, Content: filepath.Join(dir, "templates", "test.html"), IsFile: true},
		"/test/put":      {Methods: []string{"PUT"}, Content: filepath.Join(dir, "templates", "test.html"), IsFile: true},
		"/test/post-get": {Methods: []string{"GET", "POST"}, Content: filepath.Join(dir, "templates", "test.html"), IsFile: true},
		"/favicon.ico":   {Methods: []string{"GET"}, Content: filepath.Join(dir, "static", "img", "favicon.jpg"), IsFile: true},
	}
}

func main() {
	flag.Parse()
	router := NewRouter(DefaultRoutes(*dir))
	server := NewServer(":"+*port, *backlog, router)
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal().
			Str("component", "server").
			Str("op", "main").
			Str("reason", "startup failed").
			Msgf("%v", err)
	}
}
