package parser

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TagKind distinguishes the specialised tags built by the tokenizer and the
// normalizer from plain start- and end-tags.
type TagKind uint8

const (
	// PlainTag is a start-tag, or an end-tag when its name begins with '/'.
	PlainTag TagKind = iota
	// EmptyElementTag is a self-closed start-tag such as <br/>.
	EmptyElementTag
	// DummyElementTag stands in for a start-tag that was never seen.
	DummyElementTag
)

// Attribute is a name with an optional value.
type Attribute struct {
	Name     string
	Value    string
	HasValue bool
}

// NewAttribute builds an attribute. A value of "true" in any case is dropped,
// leaving a presence-only attribute.
func NewAttribute(name, value string, hasValue bool) Attribute {
	if hasValue && strings.EqualFold(value, "true") {
		return Attribute{Name: name}
	}
	return Attribute{Name: name, Value: value, HasValue: hasValue}
}

// Attributes is the attribute table of a tag. Names are folded to lower case
// unless the table is case-sensitive, and the last write of a name wins.
type Attributes struct {
	caseSensitive bool
	entries       map[string]Attribute
	log           logrus.FieldLogger
}

func newAttributes(caseSensitive bool, log logrus.FieldLogger) *Attributes {
	return &Attributes{
		caseSensitive: caseSensitive,
		entries:       make(map[string]Attribute),
		log:           log,
	}
}

func (a *Attributes) key(name string) string {
	if a.caseSensitive {
		return name
	}
	return strings.ToLower(name)
}

// Upsert adds the attribute or updates the value of an existing one. Setting
// no value never clears a value that is already present. It reports false
// when the name is not a valid attribute name.
func (a *Attributes) Upsert(name, value string, hasValue bool) bool {
	if !isValidName(name) {
		a.log.Errorf("Attribute ignored due to invalid name %q", name)
		return false
	}
	name = a.key(name)
	if hasValue {
		value = sanitizeAttributeValue(value)
	}
	attr := NewAttribute(name, value, hasValue)

	prev, ok := a.entries[name]
	if !ok {
		a.entries[name] = attr
		return true
	}
	if !attr.HasValue {
		return true
	}
	if prev.HasValue {
		a.log.WithFields(logrus.Fields{
			"attribute": name,
			"old":       prev.Value,
			"new":       attr.Value,
		}).Warn("Overwriting previous attribute value")
	}
	a.entries[name] = attr
	return true
}

// Get returns the named attribute.
func (a *Attributes) Get(name string) (Attribute, bool) {
	attr, ok := a.entries[a.key(name)]
	return attr, ok
}

// Len is the number of attributes.
func (a *Attributes) Len() int {
	return len(a.entries)
}

// All returns the attributes sorted by name.
func (a *Attributes) All() []Attribute {
	attrs := make([]Attribute, 0, len(a.entries))
	for _, attr := range a.entries {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
	return attrs
}

func isValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 && !isNameStartChar(r) {
			return false
		}
		if !isNameChar(r) {
			return false
		}
	}
	return true
}

// sanitizeAttributeValue leaves exactly one level of entity escaping on the
// markup-significant characters.
func sanitizeAttributeValue(v string) string {
	v = strings.ReplaceAll(v, "&amp;", "&")
	v = strings.ReplaceAll(v, "&quot;", "\"")
	v = strings.ReplaceAll(v, "&lt;", "<")
	v = strings.ReplaceAll(v, "&gt;", ">")
	return attributeEscaper.Replace(v)
}

var attributeEscaper = strings.NewReplacer("&", "&amp;", "\"", "&quot;", "<", "&lt;", ">", "&gt;")

var escapedSequences = []string{"&amp;", "&quot;", "&lt;", "&gt;"}

// escapeAttribute escapes any ampersand that does not already start an escaped
// sequence and collapses a doubled &amp;amp;.
func escapeAttribute(v string) string {
	if !strings.Contains(v, "&") {
		return v
	}
	var sb strings.Builder
	for i := 0; i < len(v); i++ {
		if v[i] == '&' && !hasEscapedPrefix(v[i:]) {
			sb.WriteString("&amp;")
			continue
		}
		sb.WriteByte(v[i])
	}
	return strings.ReplaceAll(sb.String(), "&amp;amp;", "&amp;")
}

func hasEscapedPrefix(s string) bool {
	for _, seq := range escapedSequences {
		if strings.HasPrefix(s, seq) {
			return true
		}
	}
	return false
}

// Tag is a parsed markup tag. A name beginning with '/' makes it an end-tag.
type Tag struct {
	name          string
	caseSensitive bool
	kind          TagKind
	comment       string
	attributes    *Attributes
	log           logrus.FieldLogger
}

// NewTag creates a plain tag. Unless caseSensitive is set the name is lower-cased.
func NewTag(name string, caseSensitive bool) *Tag {
	return newTag(name, caseSensitive, logrus.StandardLogger())
}

func newTag(name string, caseSensitive bool, log logrus.FieldLogger) *Tag {
	if !caseSensitive {
		name = strings.ToLower(name)
	}
	return &Tag{
		name:          name,
		caseSensitive: caseSensitive,
		attributes:    newAttributes(caseSensitive, log),
		log:           log,
	}
}

// NewEmptyElement copies a start-tag into a self-closed element.
func NewEmptyElement(t *Tag) (*Tag, error) {
	if t.IsEndTag() {
		return nil, errors.Wrapf(ErrEndTagEmptyElement, "<%s>", t.name)
	}
	e := t.copyAs(t.name)
	e.kind = EmptyElementTag
	return e, nil
}

// NewDummyElement builds the element for an end-tag whose start-tag was never
// seen. The end-tag's attributes are copied.
func NewDummyElement(endTag *Tag) (*Tag, error) {
	if !endTag.IsEndTag() {
		return nil, errors.Wrapf(ErrNotEndTag, "<%s>", endTag.name)
	}
	d := endTag.copyAs(endTag.BaseName())
	d.kind = DummyElementTag
	return d, nil
}

func (t *Tag) copyAs(name string) *Tag {
	c := newTag(name, t.caseSensitive, t.log)
	for k, v := range t.attributes.entries {
		c.attributes.entries[k] = v
	}
	return c
}

// Name returns the tag name, including the leading '/' of an end-tag.
func (t *Tag) Name() string {
	return t.name
}

// BaseName returns the element name without the end-tag marker.
func (t *Tag) BaseName() string {
	return strings.TrimPrefix(t.name, "/")
}

// CaseSensitive reports whether names were kept as written.
func (t *Tag) CaseSensitive() bool {
	return t.caseSensitive
}

// Kind returns the tag variant.
func (t *Tag) Kind() TagKind {
	return t.kind
}

// IsEndTag reports whether the name begins with '/'.
func (t *Tag) IsEndTag() bool {
	return strings.HasPrefix(t.name, "/")
}

// IsEmptyElement reports whether the tag is self-closed.
func (t *Tag) IsEmptyElement() bool {
	return t.kind == EmptyElementTag
}

// IsDummyElement reports whether the tag was synthesized from an end-tag.
func (t *Tag) IsDummyElement() bool {
	return t.kind == DummyElementTag
}

// SetAttribute sets a valued attribute.
func (t *Tag) SetAttribute(name, value string) {
	t.attributes.Upsert(name, value, true)
}

// AddAttribute adds a presence-only attribute.
func (t *Tag) AddAttribute(name string) {
	t.attributes.Upsert(name, "", false)
}

// Attribute looks up an attribute by name.
func (t *Tag) Attribute(name string) (Attribute, bool) {
	return t.attributes.Get(name)
}

// AttributeValue returns the value of the named attribute. The second result
// is false when the attribute is missing or has no value.
func (t *Tag) AttributeValue(name string) (string, bool) {
	attr, ok := t.attributes.Get(name)
	if !ok || !attr.HasValue {
		return "", false
	}
	return attr.Value, true
}

// Attributes returns the attributes sorted by name.
func (t *Tag) Attributes() []Attribute {
	return t.attributes.All()
}

// Comment returns the diagnostic comment of a dummy element.
func (t *Tag) Comment() string {
	return t.comment
}

// SetComment sets the comment rendered inside a dummy element.
func (t *Tag) SetComment(comment string) {
	t.comment = comment
}

// Render writes the tag as markup.
func (t *Tag) Render() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(t.name)
	for _, attr := range t.attributes.All() {
		sb.WriteByte(' ')
		sb.WriteString(attr.Name)
		sb.WriteString(`="`)
		if attr.HasValue {
			sb.WriteString(escapeAttribute(attr.Value))
		}
		sb.WriteByte('"')
	}

	switch {
	case t.kind == DummyElementTag && t.comment != "":
		sb.WriteString("><!--")
		sb.WriteString(t.comment)
		sb.WriteString("--></")
		sb.WriteString(t.name)
		sb.WriteByte('>')
	case t.kind != PlainTag:
		sb.WriteString("/>")
	default:
		sb.WriteByte('>')
	}
	return sb.String()
}

func (t *Tag) String() string {
	return t.Render()
}
