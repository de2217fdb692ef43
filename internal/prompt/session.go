// Package prompt owns the line-oriented interactive session used to ask
// the user for option values.
//
// A Session is acquired once per run and must be released with Close on
// every exit path. Only one question is outstanding at a time.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/opmodel/seed/internal/output"
)

// ErrClosed is returned by Ask after the session has been released.
var ErrClosed = errors.New("prompt session closed")

// Session reads answers from a single input stream and writes questions
// to its output counterpart.
type Session struct {
	mu     sync.Mutex
	in     *bufio.Reader
	out    io.Writer
	closer io.Closer
	closed bool
	once   sync.Once
	asked  int
}

// Option configures a Session.
type Option func(*Session)

// WithCloser registers c to be closed when the session is released.
func WithCloser(c io.Closer) Option {
	return func(s *Session) {
		s.closer = c
	}
}

// Open acquires a session over in and out.
func Open(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		in:  bufio.NewReader(in),
		out: out,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ask writes question and reads one line of input. The trailing newline
// is stripped; EOF without data yields an empty answer.
func (s *Session) Ask(question string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", ErrClosed
	}

	if _, err := io.WriteString(s.out, question); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	s.asked++

	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		// Keep the cursor on a fresh line when input ends without a newline.
		_, _ = io.WriteString(s.out, "\n")
	}

	answer := strings.TrimRight(line, "\r\n")
	output.Debug("prompt answered", "question", strings.TrimSpace(question), "empty", answer == "")
	return answer, nil
}

// Asked returns how many questions have been written.
func (s *Session) Asked() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.asked
}

// Close releases the session. It is safe to call more than once; only the
// first call closes the underlying input.
func (s *Session) Close() error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		if s.closer != nil {
			err = s.closer.Close()
		}
	})
	return err
}
