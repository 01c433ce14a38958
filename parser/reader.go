package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// EOF is the out-of-band value returned by Reader.Read when the input is exhausted.
const EOF rune = -1

// Reader is the character source of the Tokenizer. It supports pushing
// characters back so that the tokenizer can re-read input after it changes its
// mind, and keeps position, count and checksum of the underlying input.
type Reader struct {
	source      string
	inputStream *bufio.Reader
	err         error
	pushback    []rune
	log         logrus.FieldLogger

	checksum  rune
	charCount int
	column    int
	line      int
}

// NewReader wraps r. The source names the input in diagnostics and may be empty.
func NewReader(r io.Reader, source string) *Reader {
	var log logrus.FieldLogger = logrus.StandardLogger()
	if source != "" {
		log = logrus.WithField("source", source)
	}
	return &Reader{
		source:      source,
		inputStream: bufio.NewReader(r),
		log:         log,
		line:        1,
	}
}

// NewStringReader reads from s.
func NewStringReader(s string) *Reader {
	return NewReader(strings.NewReader(s), "")
}

// Source returns the name given to NewReader.
func (r *Reader) Source() string {
	return r.source
}

// Pushback queues c to be returned by the next Read.
func (r *Reader) Pushback(c rune) {
	if c == EOF {
		return
	}
	r.log.Debugf("Pushback char: %s", runeName(c))
	r.pushback = append(r.pushback, c)
}

// PushbackString queues s so that the following reads return it in order.
func (r *Reader) PushbackString(s string) {
	if s == "" {
		return
	}
	r.log.Debugf("Pushback string: %q", s)
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		r.pushback = append(r.pushback, runes[i])
	}
}

// Read returns the next character, preferring pushed-back characters over the
// input. Carriage returns are dropped. At the end of the input, or after a read
// error, Read returns EOF.
func (r *Reader) Read() rune {
	for {
		var c rune
		if n := len(r.pushback); n > 0 {
			c = r.pushback[n-1]
			r.pushback = r.pushback[:n-1]
		} else {
			c = r.rawRead()
		}
		if c != '\r' {
			return c
		}
	}
}

func (r *Reader) rawRead() rune {
	if r.err != nil {
		return EOF
	}
	c, _, err := r.inputStream.ReadRune()
	if err != nil {
		if err != io.EOF {
			r.err = errors.Wrap(err, "reading input")
		}
		return EOF
	}

	if c == '\n' {
		r.line++
		r.column = 0
	} else {
		r.column++
	}
	r.charCount++
	r.checksum ^= c
	return c
}

// Err returns the first non-EOF error from the underlying reader.
func (r *Reader) Err() error {
	return r.err
}

// Line is the 1-based line of the last character read from the input.
func (r *Reader) Line() int {
	return r.line
}

// Column is the number of characters read on the current line.
func (r *Reader) Column() int {
	return r.column
}

// CharCount is the number of characters read from the input. Replays of
// pushed-back characters are not counted.
func (r *Reader) CharCount() int {
	return r.charCount
}

// Checksum is the XOR of every character read from the input.
func (r *Reader) Checksum() rune {
	return r.checksum
}

// Position renders the current line and column for diagnostics.
func (r *Reader) Position() string {
	return strconv.Itoa(r.line) + ":" + strconv.Itoa(r.column)
}
