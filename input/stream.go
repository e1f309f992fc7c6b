package input

import (
	"bufio"
	"io"
	"strings"
)

// StreamReader reads newline-terminated lines from a byte stream such as stdin
type StreamReader struct {
	r *bufio.Reader
}

// NewStreamReader wraps r for line reads
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line ending.
// A final unterminated line is returned before io.EOF
func (s *StreamReader) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
