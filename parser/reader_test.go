package parser

import (
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(r *Reader) string {
	out := []rune{}
	for c := r.Read(); c != EOF; c = r.Read() {
		out = append(out, c)
	}
	return string(out)
}

func TestReaderDropsCarriageReturns(t *testing.T) {
	t.Parallel()
	r := NewStringReader("a\r\nb\rc")
	assert.Equal(t, "a\nbc", readAll(r))
	assert.Equal(t, 6, r.CharCount())
	assert.Equal(t, 2, r.Line())
}

func TestReaderPushback(t *testing.T) {
	t.Parallel()
	r := NewStringReader("ab")
	require.Equal(t, 'a', r.Read())

	r.Pushback('x')
	r.Pushback('y')
	assert.Equal(t, 'y', r.Read())
	assert.Equal(t, 'x', r.Read())
	assert.Equal(t, 'b', r.Read())
	assert.Equal(t, EOF, r.Read())

	r.Pushback(EOF)
	assert.Empty(t, r.pushback)
	assert.Equal(t, EOF, r.Read())
}

func TestReaderPushbackString(t *testing.T) {
	tests := []string{"", "a", "&amp;", "</script>", "日本語"}
	for _, s := range tests {
		s := s
		t.Run(s, func(t *testing.T) {
			t.Parallel()
			r := NewStringReader("z")
			r.PushbackString(s)
			assert.Equal(t, s+"z", readAll(r))
		})
	}
}

func TestReaderCountsInputOnce(t *testing.T) {
	t.Parallel()
	r := NewStringReader("ab")
	readAll(r)
	count, sum := r.CharCount(), r.Checksum()
	assert.Equal(t, 2, count)
	assert.Equal(t, 'a'^'b', sum)

	r.PushbackString("ab")
	r.Pushback('c')
	readAll(r)
	assert.Equal(t, count, r.CharCount())
	assert.Equal(t, sum, r.Checksum())
}

func TestReaderPosition(t *testing.T) {
	t.Parallel()
	r := NewStringReader("ab\ncd")
	assert.Equal(t, "1:0", r.Position())
	r.Read()
	r.Read()
	assert.Equal(t, "1:2", r.Position())
	r.Read()
	assert.Equal(t, "2:0", r.Position())
	r.Read()
	assert.Equal(t, 2, r.Line())
	assert.Equal(t, 1, r.Column())
	assert.Equal(t, "2:1", r.Position())
}

func TestReaderMultibyte(t *testing.T) {
	t.Parallel()
	r := NewStringReader("日本")
	assert.Equal(t, "日本", readAll(r))
	assert.Equal(t, 2, r.CharCount())
}

func TestReaderError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	r := NewReader(iotest.ErrReader(boom), "in.html")
	assert.Equal(t, "in.html", r.Source())
	assert.Equal(t, EOF, r.Read())
	require.Error(t, r.Err())
	assert.Equal(t, boom, errors.Cause(r.Err()))
	assert.EqualError(t, r.Err(), "reading input: boom")
	assert.Equal(t, EOF, r.Read())
}

func TestReaderEndOfInput(t *testing.T) {
	t.Parallel()
	r := NewStringReader("")
	assert.Equal(t, EOF, r.Read())
	assert.NoError(t, r.Err())
}
