package main

import (
	"fmt"
	"io"
)

// WriteResponse serializes a response in wire format: status line,
// Content-Type, Content-Length, blank line, body. Content-Length is the
// byte length of the body. A status code with no reason phrase is
// refused.
func WriteResponse(w io.Writer, res *Response) error {
	phrase, err := StatusPhrase(res.Code)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "HTTP/1.1 %d %s\r\nContent-Type: %s\r\nContent-Length: %d\r\n\r\n",
		res.Code, phrase, res.ContentType, len(res.Body)); err != nil {
		return err
	}
	_, err = io.WriteString(w, res.Body)
	return err
}
