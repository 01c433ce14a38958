package parser

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTag(t *testing.T) {
	tests := []struct {
		name          string
		in            string
		caseSensitive bool
		wantName      string
		wantBase      string
		end           bool
	}{
		{"start tag", "DIV", false, "div", "div", false},
		{"end tag", "/P", false, "/p", "p", true},
		{"case sensitive", "MyTag", true, "MyTag", "MyTag", false},
		{"case sensitive end tag", "/MyTag", true, "/MyTag", "MyTag", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tag := NewTag(tt.in, tt.caseSensitive)
			assert.Equal(t, tt.wantName, tag.Name())
			assert.Equal(t, tt.wantBase, tag.BaseName())
			assert.Equal(t, tt.end, tag.IsEndTag())
			assert.Equal(t, tt.caseSensitive, tag.CaseSensitive())
			assert.Equal(t, PlainTag, tag.Kind())
		})
	}
}

func TestEmptyElement(t *testing.T) {
	t.Parallel()
	tag := NewTag("img", false)
	tag.SetAttribute("src", "a.png")

	e, err := NewEmptyElement(tag)
	require.NoError(t, err)
	assert.True(t, e.IsEmptyElement())
	assert.False(t, tag.IsEmptyElement())
	assert.Equal(t, `<img src="a.png"/>`, e.Render())

	e.SetAttribute("alt", "x")
	_, ok := tag.Attribute("alt")
	assert.False(t, ok, "copy shares attributes with the original")

	_, err = NewEmptyElement(NewTag("/img", false))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEndTagEmptyElement))
}

func TestDummyElement(t *testing.T) {
	t.Parallel()
	end := NewTag("/span", false)
	end.SetAttribute("class", "x")

	d, err := NewDummyElement(end)
	require.NoError(t, err)
	assert.True(t, d.IsDummyElement())
	assert.False(t, d.IsEndTag())
	assert.Equal(t, "span", d.Name())
	assert.Equal(t, `<span class="x"/>`, d.Render())

	d.SetComment(" inserted ")
	assert.Equal(t, " inserted ", d.Comment())
	assert.Equal(t, `<span class="x"><!-- inserted --></span>`, d.Render())

	_, err = NewDummyElement(NewTag("span", false))
	require.Error(t, err)
	assert.Equal(t, ErrNotEndTag, errors.Cause(err))
}

func TestAttributeValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain", "hello", `<p x="hello">`},
		{"quotes", `say "hi"`, `<p x="say &quot;hi&quot;">`},
		{"markup", "<b>", `<p x="&lt;b&gt;">`},
		{"ampersand", "a & b", `<p x="a &amp; b">`},
		{"escaped ampersand", "a &amp; b", `<p x="a &amp; b">`},
		{"double escaped", "a&amp;amp;b", `<p x="a&amp;b">`},
		{"escaped markup", "&lt;i&gt;", `<p x="&lt;i&gt;">`},
		{"other entity", "&copy;", `<p x="&amp;copy;">`},
		{"empty", "", `<p x="">`},
		{"true", "True", `<p x="">`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tag := NewTag("p", false)
			tag.SetAttribute("x", tt.value)
			assert.Equal(t, tt.want, tag.Render())
		})
	}
}

func TestNewAttribute(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Attribute{Name: "checked"}, NewAttribute("checked", "TRUE", true))
	assert.Equal(t, Attribute{Name: "x", Value: "1", HasValue: true}, NewAttribute("x", "1", true))
	assert.Equal(t, Attribute{Name: "x"}, NewAttribute("x", "", false))
}

func TestAttributeUpsert(t *testing.T) {
	t.Parallel()
	logger, hook := test.NewNullLogger()
	tag := newTag("input", false, logger)

	tag.SetAttribute("Value", "1")
	tag.AddAttribute("value")
	v, ok := tag.AttributeValue("VALUE")
	assert.True(t, ok)
	assert.Equal(t, "1", v, "a presence-only write keeps the value")
	assert.Empty(t, hook.AllEntries())

	tag.SetAttribute("value", "2")
	v, _ = tag.AttributeValue("value")
	assert.Equal(t, "2", v)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "1", hook.LastEntry().Data["old"])

	tag.AddAttribute("disabled")
	_, ok = tag.AttributeValue("disabled")
	assert.False(t, ok)
	attr, ok := tag.Attribute("disabled")
	assert.True(t, ok)
	assert.False(t, attr.HasValue)

	assert.False(t, tag.attributes.Upsert("1x", "y", true))
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)

	names := []string{}
	for _, a := range tag.Attributes() {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"disabled", "value"}, names)
	assert.Equal(t, `<input disabled="" value="2">`, tag.Render())
}

func TestCaseSensitiveAttributes(t *testing.T) {
	t.Parallel()
	tag := NewTag("Svg", true)
	tag.SetAttribute("viewBox", "0 0 1 1")
	tag.SetAttribute("viewbox", "x")
	assert.Equal(t, 2, tag.attributes.Len())
	assert.Equal(t, `<Svg viewBox="0 0 1 1" viewbox="x">`, tag.Render())
}
