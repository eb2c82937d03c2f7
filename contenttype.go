package main

import "strings"

const defaultContentType = "application/octet-stream"

// Lookup is case-sensitive on purpose: ".PNG" is not ".png".
var contentTypes = map[string]string{
	".html": "text/html",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".css":  "text/css",
	".js":   "application/javascript",
}

// ContentTypeOf maps a resource name to a MIME type by its final
// extension. Unknown extensions and names without a dot fall back to
// application/octet-stream.
func ContentTypeOf(name string) string {
	dot := strings.LastIndexByte(name, '.')
	if dot != -1 {
		ext := name[dot:]
		if ct, ok := contentTypes[ext]; ok {
			logger.Info().
				Str("component", "contenttype").
				Str("op", "ContentTypeOf").
				Str("reason", "extension match").
				Msgf("%s -> %s", ext, ct)
			return ct
		}
		logger.Warn().
			Str("component", "contenttype").
			Str("op", "ContentTypeOf").
			Str("reason", "extension mismatch").
			Msgf("no content type for %s", ext)
	}
	return defaultContentType
}
