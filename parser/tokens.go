package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

//go:generate stringer -type=TokenType
type TokenType uint

const (
	EOFToken TokenType = iota
	WordToken
	NumberToken
	SpacesToken
	NewlineToken
	PunctuationToken
	TagToken
	EntityReferenceToken
	CharacterEntityToken
	CommentToken
	CDataToken
	ProcessingInstructionToken
	DoctypeToken
	ScriptToken
)

// Token is a concrete token that is ready to be emitted.
//
// Data carries the raw text of words, numbers, spaces, comments, CDATA
// sections, script bodies and the data of processing instructions and
// declarations. Name carries an entity name, a processing instruction target or
// a declaration keyword. Char is the punctuation character or the decoded code
// point of a character reference, whose numeric value is kept in Number along
// with the value of a number token.
type Token struct {
	Type   TokenType
	Data   string
	Name   string
	Char   rune
	Number int64
	Tag    *Tag
}

// Render returns markup equivalent to the input the token was read from.
func (t Token) Render() string {
	switch t.Type {
	case WordToken, NumberToken, SpacesToken, ScriptToken:
		return t.Data
	case NewlineToken:
		return "\n"
	case PunctuationToken:
		return string(t.Char)
	case TagToken:
		return t.Tag.Render()
	case EntityReferenceToken:
		return "&" + t.Name + ";"
	case CharacterEntityToken:
		return "&#" + strconv.Itoa(int(t.Char)) + ";"
	case CommentToken:
		return "<!--" + t.Data + "-->"
	case CDataToken:
		return "<![CDATA[" + t.Data + "]]>"
	case ProcessingInstructionToken:
		if t.Data == "" {
			return "<?" + t.Name + "?>"
		}
		return "<?" + t.Name + " " + t.Data + "?>"
	case DoctypeToken:
		if t.Data == "" {
			return "<!" + t.Name + ">"
		}
		return "<!" + t.Name + " " + t.Data + ">"
	default:
		return ""
	}
}

func (t Token) String() string {
	switch t.Type {
	case EOFToken:
		return t.Type.String()
	case NewlineToken:
		return t.Type.String() + ` "\n"`
	case PunctuationToken:
		return fmt.Sprintf("%s %q", t.Type, t.Char)
	case CharacterEntityToken:
		return fmt.Sprintf("%s %d %q", t.Type, t.Number, t.Char)
	default:
		return fmt.Sprintf("%s %q", t.Type, t.Render())
	}
}

// TokenBuilder builds various tokens up during the tokenization
// phase.
type TokenBuilder struct {
	caseSensitive bool
	log           logrus.FieldLogger

	tag                    *Tag
	name                   strings.Builder
	data                   strings.Builder
	tempBuffer             strings.Builder
	attributeName          strings.Builder
	attributeValue         strings.Builder
	hasAttributeValue      bool
	characterReferenceCode int64
	characterReferenceLen  int
}

func newTokenBuilder(caseSensitive bool, log logrus.FieldLogger) *TokenBuilder {
	return &TokenBuilder{
		caseSensitive: caseSensitive,
		log:           log,
	}
}

// Reset clears every buffer so the builder can start a new token.
func (t *TokenBuilder) Reset() {
	t.tag = nil
	t.name.Reset()
	t.data.Reset()
	t.tempBuffer.Reset()
	t.resetAttribute()
	t.characterReferenceCode = 0
	t.characterReferenceLen = 0
}

func (t *TokenBuilder) resetAttribute() {
	t.attributeName.Reset()
	t.attributeValue.Reset()
	t.hasAttributeValue = false
}

// WriteName appends a character to the current name value.
func (t *TokenBuilder) WriteName(r rune) {
	t.name.WriteRune(r)
}

// Name returns the name collected so far.
func (t *TokenBuilder) Name() string {
	return t.name.String()
}

// WriteData appends a character to the current data section.
func (t *TokenBuilder) WriteData(r rune) {
	t.data.WriteRune(r)
}

// WriteDataString appends s to the current data section.
func (t *TokenBuilder) WriteDataString(s string) {
	t.data.WriteString(s)
}

// HasData reports whether any data has been collected.
func (t *TokenBuilder) HasData() bool {
	return t.data.Len() > 0
}

// Data returns the data collected so far.
func (t *TokenBuilder) Data() string {
	return t.data.String()
}

// WriteTempBuffer appends a character to the temporary buffer of the current
// state.
func (t *TokenBuilder) WriteTempBuffer(r rune) {
	t.tempBuffer.WriteRune(r)
}

// ResetTempBuffer clears the temporary buffer to be used by some other state.
func (t *TokenBuilder) ResetTempBuffer() {
	t.tempBuffer.Reset()
}

// TempBuffer just returns the string version of the current buffer contents.
func (t *TokenBuilder) TempBuffer() string {
	return t.tempBuffer.String()
}

// StartTag turns the collected name into the tag that attributes are added to.
func (t *TokenBuilder) StartTag() *Tag {
	if t.tag == nil {
		t.tag = newTag(t.name.String(), t.caseSensitive, t.log)
	}
	return t.tag
}

// WriteAttributeName appends a character to the current
// attribute's name.
func (t *TokenBuilder) WriteAttributeName(r rune) {
	t.attributeName.WriteRune(r)
}

// WriteAttributeValue appends a character to the current
// attribute's value.
func (t *TokenBuilder) WriteAttributeValue(r rune) {
	t.attributeValue.WriteRune(r)
}

// StartAttributeValue marks the current attribute as having a value, which
// may turn out to be empty.
func (t *TokenBuilder) StartAttributeValue() {
	t.hasAttributeValue = true
}

// CommitAttribute ends the creation of a name/value pair by adding it to the
// tag and clearing the name and value fields.
func (t *TokenBuilder) CommitAttribute() {
	if name := t.attributeName.String(); name != "" {
		t.StartTag().attributes.Upsert(name, t.attributeValue.String(), t.hasAttributeValue)
	}
	t.resetAttribute()
}

// DiscardAttribute drops the attribute being collected.
func (t *TokenBuilder) DiscardAttribute() {
	t.resetAttribute()
}

// AddToCharRef appends a digit in the given base to the character reference
// code. Values past the last code point saturate.
func (t *TokenBuilder) AddToCharRef(base int64, digit rune) {
	var v int64
	switch {
	case digit >= '0' && digit <= '9':
		v = int64(digit - '0')
	case digit >= 'a' && digit <= 'f':
		v = int64(digit-'a') + 10
	case digit >= 'A' && digit <= 'F':
		v = int64(digit-'A') + 10
	}
	t.characterReferenceCode = t.characterReferenceCode*base + v
	if t.characterReferenceCode > 0x10FFFF {
		t.characterReferenceCode = 0x110000
	}
	t.characterReferenceLen++
}

// CharRefLen is the number of digits collected for the character reference.
func (t *TokenBuilder) CharRefLen() int {
	return t.characterReferenceLen
}

// WordToken creates a word token from the builder contents.
func (t *TokenBuilder) WordToken() Token {
	return Token{
		Type: WordToken,
		Data: t.data.String(),
	}
}

// NumberToken creates a number token from the collected digits. A run of digits
// too long for an int64 is returned as a word.
func (t *TokenBuilder) NumberToken() Token {
	digits := t.data.String()
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Token{Type: WordToken, Data: digits}
	}
	return Token{
		Type:   NumberToken,
		Data:   digits,
		Number: n,
	}
}

// SpacesToken creates a token for a run of spaces and tabs.
func (t *TokenBuilder) SpacesToken() Token {
	return Token{
		Type: SpacesToken,
		Data: t.data.String(),
	}
}

// NewlineToken creates a newline token.
func (t *TokenBuilder) NewlineToken() Token {
	return Token{Type: NewlineToken}
}

// PunctuationToken creates a punctuation token.
func (t *TokenBuilder) PunctuationToken(r rune) Token {
	return Token{
		Type: PunctuationToken,
		Char: r,
	}
}

// TagToken creates a tag token from the builder contents.
func (t *TokenBuilder) TagToken() Token {
	return Token{
		Type: TagToken,
		Tag:  t.StartTag(),
	}
}

// EmptyElementToken creates a tag token for a self-closed start-tag.
func (t *TokenBuilder) EmptyElementToken() Token {
	tag := t.StartTag()
	e, err := NewEmptyElement(tag)
	if err != nil {
		// end-tags never reach the self-closing states
		t.log.WithError(err).Error("Cannot create empty element")
		e = tag
	}
	return Token{
		Type: TagToken,
		Tag:  e,
	}
}

// EntityReferenceToken creates a named entity reference token.
func (t *TokenBuilder) EntityReferenceToken() Token {
	return Token{
		Type: EntityReferenceToken,
		Name: t.name.String(),
	}
}

// CharacterEntityToken creates a numeric character reference token.
func (t *TokenBuilder) CharacterEntityToken() Token {
	return Token{
		Type:   CharacterEntityToken,
		Char:   validCodePoint(t.characterReferenceCode),
		Number: t.characterReferenceCode,
	}
}

// CommentToken creates a comment token from the builder contents.
func (t *TokenBuilder) CommentToken() Token {
	return Token{
		Type: CommentToken,
		Data: t.data.String(),
	}
}

// CDataToken creates a CDATA section token from the builder contents.
func (t *TokenBuilder) CDataToken() Token {
	return Token{
		Type: CDataToken,
		Data: t.data.String(),
	}
}

// ProcessingInstructionToken creates a processing instruction token.
func (t *TokenBuilder) ProcessingInstructionToken() Token {
	return Token{
		Type: ProcessingInstructionToken,
		Name: t.name.String(),
		Data: t.data.String(),
	}
}

// DoctypeToken creates a declaration token such as <!DOCTYPE html>.
func (t *TokenBuilder) DoctypeToken() Token {
	return Token{
		Type: DoctypeToken,
		Name: t.name.String(),
		Data: t.data.String(),
	}
}

// ScriptToken creates a token for a script body.
func (t *TokenBuilder) ScriptToken() Token {
	return Token{
		Type: ScriptToken,
		Data: t.data.String(),
	}
}

// EndOfFileToken create an end of file token.
func (t *TokenBuilder) EndOfFileToken() Token {
	return Token{Type: EOFToken}
}
