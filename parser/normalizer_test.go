package parser

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietOptions(opts ...Option) []Option {
	logger, _ := test.NewNullLogger()
	return append([]Option{WithLogger(logger)}, opts...)
}

func TestToXML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []Option
		want string
	}{
		{
			name: "simple document",
			in:   "<html><body>Hello world</body></html>",
			want: "<html><body>Hello world</body></html>",
		},
		{
			name: "title",
			in:   "<html><head><title>Test</title></head></html>",
			want: "<html><head><title>Test</title></head></html>",
		},
		{
			name: "leading doctype and whitespace",
			in:   "\n  <!DOCTYPE html>\n<html></html>",
			want: "<html></html>",
		},
		{
			name: "empty elements",
			in:   "<p>a<br>b<img src=x.png></p>",
			want: `<p>a<br/>b<img src="x.png"/></p>`,
		},
		{
			name: "end tag of empty element",
			in:   "<br></br>",
			want: "<br/>",
		},
		{
			name: "elements left open",
			in:   "<html><body><head>text",
			want: "<html><body><head>text</head></body></html>",
		},
		{
			name: "end tag without open element",
			in:   "x</p>",
			want: "x",
		},
		{
			name: "missing start tag",
			in:   "<div>a</span>b</div>",
			want: "<div>a<span></span>b</div>",
		},
		{
			name: "annotated missing start tag",
			in:   "<div>a</span>b</div>",
			opts: []Option{WithAnnotateRepairs(true)},
			want: "<div>a<span><!-- inserted missing start-tag --></span>b</div>",
		},
		{
			name: "singleton closes inner elements",
			in:   "<html><body><div><p>text</body></html>",
			want: "<html><body><div><p>text</p></div></body></html>",
		},
		{
			name: "singleton that is not open",
			in:   "<div></body></div>",
			want: "<div></div>",
		},
		{
			name: "entities",
			in:   "a&nbsp;b &copy; &lt;&AMP;",
			want: "a&#160;b &#169; &lt;&amp;",
		},
		{
			name: "apostrophe entity",
			in:   "it&apos;s",
			want: "it&apos;s",
		},
		{
			name: "html5 entity",
			in:   "&check;",
			opts: []Option{WithHTML5Entities(true)},
			want: "&#10003;",
		},
		{
			name: "character references",
			in:   "&#60;&#38;&#x41;&#1;",
			want: "&lt;&amp;A\uFFFD",
		},
		{
			name: "noncharacter reference",
			in:   "&#xFFFF;",
			want: "\uFFFD",
		},
		{
			name: "literal ampersand",
			in:   "AT&T rocks",
			want: "AT&amp;T rocks",
		},
		{
			name: "greater than in text",
			in:   "a > b",
			want: "a &gt; b",
		},
		{
			name: "script",
			in:   "<script>if (a < b && c) x();</script>",
			want: "<script>/*<![CDATA[*/if (a < b && c) x();/*]]>*/</script>",
		},
		{
			name: "script with cdata markers",
			in:   "<script><![CDATA[x()]]></script>",
			want: "<script>/*<![CDATA[*/x()/*]]>*/</script>",
		},
		{
			name: "empty script",
			in:   `<script src="a.js"></script>`,
			want: `<script src="a.js"></script>`,
		},
		{
			name: "comments and cdata",
			in:   "<p><!-- c --><![CDATA[<x>]]></p>",
			want: "<p><!-- c --><![CDATA[<x>]]></p>",
		},
		{
			name: "processing instructions",
			in:   "<p><?php echo 1 ?>x</p>",
			want: "<p>x</p>",
		},
		{
			name: "case sensitive",
			in:   "<Div>x</DIV>",
			opts: []Option{WithCaseSensitive(true)},
			want: "<Div>x</Div>",
		},
		{
			name: "upper case names",
			in:   "<DIV Class=a>x</div>",
			want: `<div class="a">x</div>`,
		},
		{
			name: "attribute escaping",
			in:   `<a title='say "hi" & <go>'>x</a>`,
			want: `<a title="say &quot;hi&quot; &amp; &lt;go&gt;">x</a>`,
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ToXML(tt.in, quietOptions(tt.opts...)...)
			require.NoError(t, err)
			assert.Equal(t, XMLHeader+tt.want, got)
		})
	}
}

func TestUnsupportedEntity(t *testing.T) {
	t.Parallel()
	got, err := ToXML("<p>&bogus;</p>", quietOptions()...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedEntity))
	assert.Contains(t, err.Error(), "&bogus;")
	assert.Empty(t, got)

	_, err = ToXML("&check;", quietOptions()...)
	assert.True(t, errors.Is(err, ErrUnsupportedEntity), "html5 names need the fallback")
}

func TestNormalizeWritesNothingOnError(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	p := NewParser(strings.NewReader("<p>text &bogus; more</p>"), quietOptions()...)
	require.Error(t, p.Start(&sb))
	assert.Zero(t, sb.Len())
}

func TestNormalizeTooManyErrors(t *testing.T) {
	t.Parallel()
	got, err := ToXML("<p><1><2></p>", quietOptions(WithMaxErrors(2))...)
	require.Error(t, err)
	assert.Equal(t, ErrTooManyErrors, errors.Cause(err))
	assert.Empty(t, got)

	got, err = ToXML("<p><1></p>", quietOptions(WithMaxErrors(2))...)
	require.NoError(t, err)
	assert.Equal(t, XMLHeader+"<p></p>", got)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestNormalizeWriteError(t *testing.T) {
	t.Parallel()
	err := NewParser(strings.NewReader("x"), quietOptions()...).Start(failingWriter{})
	require.Error(t, err)
	assert.EqualError(t, err, "writing xml: disk full")
}

func TestNormalizerDiagnostics(t *testing.T) {
	t.Parallel()
	logger, hook := test.NewNullLogger()
	got, err := ToXML("<div><b>x</i></div><p>y", WithLogger(logger), WithSource("doc.html"))
	require.NoError(t, err)
	// </div> with <b> on top is repaired like </i>, leaving both open.
	assert.Equal(t, XMLHeader+"<div><b>x<i></i><div></div><p>y</p></b></div>", got)

	warnings := []string{}
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings = append(warnings, e.Message)
		}
	}
	assert.Contains(t, warnings, "Inserting missing start-tag for </i> inside <b>")
	assert.Contains(t, warnings, "Closing <p> left open at end of input")

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.InfoLevel, last.Level)
	assert.Equal(t, "doc.html", last.Data["source"])
	assert.Equal(t, 1, countInfo(hook), "the report is logged once")
}

func countInfo(hook *test.Hook) int {
	n := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.InfoLevel {
			n++
		}
	}
	return n
}

func TestNormalizerReport(t *testing.T) {
	t.Parallel()
	logger, hook := test.NewNullLogger()
	_, err := ToXML("<b>x", WithLogger(logger))
	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t,
		"Parsed 1 lines containing 4 characters. Reported 0 errors (recovered 0) and 1 warnings.",
		hook.LastEntry().Message)
}

func TestParserTokens(t *testing.T) {
	t.Parallel()
	tokens, err := NewParser(strings.NewReader("<p>a 1</p>"), quietOptions()...).Tokens()
	require.NoError(t, err)
	types := []TokenType{}
	for _, token := range tokens {
		types = append(types, token.Type)
	}
	assert.Equal(t, []TokenType{TagToken, WordToken, SpacesToken, NumberToken, TagToken, EOFToken}, types)
}

// TestWellFormed feeds messy markup through the normalizer and checks the
// result with a strict XML decoder.
func TestWellFormed(t *testing.T) {
	inputs := []string{
		"<p>unclosed <b>bold <i>italic</p>",
		"a < b && c > d",
		"<td nowrap width=50%>cell",
		"<a href=x?a=1&b=2>link</a>",
		"&#0;&#xFFFF;&#x1F600;&#xD800;",
		"<script>if(a<b) document.write('</div>')</script>",
		"<script>var s = ']]>';</script>",
		"<!DOCTYPE html><html><head><title>T</title><meta charset=utf-8></head><body><p>x<br><p>y</body></html>",
		"<![CDATA[x]]>",
		"</foo><p a=1 a=2 b>text",
		"<P>upper</p>",
		"<ul><li>one<li>two</ul>",
		"<table><tr><td>1</td></tr></tbody></table>",
		"<p title=\"a&b\" alt='<>'>q</p>",
		"text with \x01 control and \x7f delete",
		"<a\nhref=\"x\"\n>multi\nline</a>",
		"<1><2 <3>>",
		"&amp &nbsp &quot &copy;",
		"<img src='a.png' / >",
	}
	for _, in := range inputs {
		in := in
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			out, err := ToXML(in, quietOptions()...)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(out, XMLHeader))

			d := xml.NewDecoder(strings.NewReader(out))
			d.Strict = true
			for {
				_, err := d.Token()
				if err == io.EOF {
					break
				}
				require.NoError(t, err, out)
			}
		})
	}
}
