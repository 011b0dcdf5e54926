package scanner

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineScanner reads newline-terminated lines from an input stream.
type LineScanner struct {
	r    *bufio.Reader
	done bool
}

func New(r io.Reader) *LineScanner {
	return &LineScanner{r: bufio.NewReader(r)}
}

// ReadLine blocks until a full line is available and returns it without its
// line terminator. A final line lacking a newline is returned with a nil error;
// the following call reports io.EOF.
func (s *LineScanner) ReadLine() (string, error) {
	if s.done {
		return "", io.EOF
	}

	line, err := s.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		s.done = true
		if line == "" {
			return "", io.EOF
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
