package parser

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Tokenizer splits loosely structured markup into tokens. It pulls characters
// from a Reader and returns one token for each call to Token.
type Tokenizer struct {
	done          bool
	err           error
	currentState  tokenizerState
	stream        *Reader
	emittedTokens []Token
	tokenBuilder  *TokenBuilder
	log           logrus.FieldLogger

	caseSensitive bool
	maxErrors     int
	deferReport   bool

	numErrors     int
	numWarnings   int
	numRecoveries int
}

// NewTokenizer creates a tokenizer reading from stream.
func NewTokenizer(stream *Reader, cfg Config) *Tokenizer {
	cfg = cfg.withDefaults()
	if cfg.Source == "" {
		cfg.Source = stream.Source()
	}
	log := cfg.logger()
	stream.log = log

	return &Tokenizer{
		currentState:  dataState,
		stream:        stream,
		emittedTokens: []Token{},
		tokenBuilder:  newTokenBuilder(cfg.CaseSensitive, log),
		log:           log,
		caseSensitive: cfg.CaseSensitive,
		maxErrors:     cfg.MaxErrors,
	}
}

// NewStringTokenizer is a shortcut for tokenizing s with the given config.
func NewStringTokenizer(s string, cfg Config) *Tokenizer {
	return NewTokenizer(NewReader(strings.NewReader(s), cfg.Source), cfg)
}

func (p *Tokenizer) stateToParser(state tokenizerState) parserStateHandler {
	switch state {
	case dataState:
		return p.dataStateParser
	case recoverState:
		return p.recoverStateParser
	case numberState:
		return p.numberStateParser
	case spacesState:
		return p.spacesStateParser
	case tagOpenState:
		return p.tagOpenStateParser
	case tagNameState:
		return p.tagNameStateParser
	case selfClosingTagNameState:
		return p.selfClosingTagNameStateParser
	case endTagOpenState:
		return p.endTagOpenStateParser
	case endTagNameState:
		return p.endTagNameStateParser
	case afterEndTagNameState:
		return p.afterEndTagNameStateParser
	case markupDeclarationOpenState:
		return p.markupDeclarationOpenStateParser
	case declarationNameState:
		return p.declarationNameStateParser
	case beforeDeclarationDataState:
		return p.beforeDeclarationDataStateParser
	case declarationDataState:
		return p.declarationDataStateParser
	case commentStartState:
		return p.commentStartStateParser
	case commentState:
		return p.commentStateParser
	case commentEndDashState:
		return p.commentEndDashStateParser
	case commentEndState:
		return p.commentEndStateParser
	case cdataStartState:
		return p.cdataStartStateParser
	case cdataKeywordState:
		return p.cdataKeywordStateParser
	case cdataSectionState:
		return p.cdataSectionStateParser
	case cdataSectionBracketState:
		return p.cdataSectionBracketStateParser
	case cdataSectionEndState:
		return p.cdataSectionEndStateParser
	case processingInstructionTargetState:
		return p.processingInstructionTargetStateParser
	case processingInstructionDataState:
		return p.processingInstructionDataStateParser
	case processingInstructionEndState:
		return p.processingInstructionEndStateParser
	case characterReferenceState:
		return p.characterReferenceStateParser
	case namedCharacterReferenceState:
		return p.namedCharacterReferenceStateParser
	case numericCharacterReferenceState:
		return p.numericCharacterReferenceStateParser
	case hexadecimalCharacterReferenceState:
		return p.hexadecimalCharacterReferenceStateParser
	case decimalCharacterReferenceState:
		return p.decimalCharacterReferenceStateParser
	case beforeAttributeNameState:
		return p.beforeAttributeNameStateParser
	case attributeNameState:
		return p.attributeNameStateParser
	case afterAttributeNameState:
		return p.afterAttributeNameStateParser
	case beforeAttributeValueState:
		return p.beforeAttributeValueStateParser
	case attributeValueUnquotedState:
		return p.attributeValueUnquotedStateParser
	case attributeValueDoubleQuotedState:
		return p.attributeValueDoubleQuotedStateParser
	case attributeValueSingleQuotedState:
		return p.attributeValueSingleQuotedStateParser
	case afterAttributeValueQuotedState:
		return p.afterAttributeValueQuotedStateParser
	case selfClosingStartTagState:
		return p.selfClosingStartTagStateParser
	case attributeRecoverState:
		return p.attributeRecoverStateParser
	case scriptDataState:
		return p.scriptDataStateParser
	case scriptDataLessThanSignState:
		return p.scriptDataLessThanSignStateParser
	case scriptDataEndTagOpenState:
		return p.scriptDataEndTagOpenStateParser
	case scriptDataEndTagNameState:
		return p.scriptDataEndTagNameStateParser
	}

	return nil
}

// alwaysKnownEntities are assumed to be references even without the closing ';'.
var alwaysKnownEntities = []string{"amp", "nbsp", "quot"}

func isAlwaysKnownEntity(name string) bool {
	for _, e := range alwaysKnownEntities {
		if strings.EqualFold(name, e) {
			return true
		}
	}
	return false
}

var declarationKeywords = []string{"DOCTYPE", "ELEMENT", "ATTLIST", "ENTITY", "NOTATION"}

func isDeclarationKeyword(name string) bool {
	for _, k := range declarationKeywords {
		if strings.EqualFold(name, k) {
			return true
		}
	}
	return false
}

const scriptTagName = "script"

func (p *Tokenizer) emit(tokens ...Token) {
	p.emittedTokens = append(p.emittedTokens, tokens...)
	p.tokenBuilder.Reset()
}

func (p *Tokenizer) entry() logrus.FieldLogger {
	return p.log.WithField("position", p.stream.Position())
}

// warnf logs a warning about the input and counts it.
func (p *Tokenizer) warnf(format string, args ...interface{}) {
	p.numWarnings++
	p.entry().Warnf(format, args...)
}

// recovered logs a heuristic correction and counts it.
func (p *Tokenizer) recovered(format string, args ...interface{}) {
	p.numRecoveries++
	p.entry().Warnf(format, args...)
}

// enterRecovery logs an invalid character, pushes it back so that a '>' still ends
// the broken construct, and enters state.
func (p *Tokenizer) enterRecovery(r rune, state tokenizerState) (tokenizerState, error) {
	p.stream.Pushback(r)
	p.numErrors++
	p.entry().Errorf("Invalid character %s in state %s", runeName(r), p.currentState)
	if p.numErrors >= p.maxErrors {
		return state, errors.Wrapf(ErrTooManyErrors, "%d errors at %s", p.numErrors, p.stream.Position())
	}
	return state, nil
}

func (p *Tokenizer) errorRecover(r rune) (tokenizerState, error) {
	p.tokenBuilder.Reset()
	return p.enterRecovery(r, recoverState)
}

func (p *Tokenizer) attributeRecover(r rune) (tokenizerState, error) {
	p.tokenBuilder.DiscardAttribute()
	return p.enterRecovery(r, attributeRecoverState)
}

// unexpectedEOF abandons a partial construct and ends the token stream.
func (p *Tokenizer) unexpectedEOF() (tokenizerState, error) {
	p.warnf("Unexpected end of input in state %s", p.currentState)
	p.emit(p.tokenBuilder.EndOfFileToken())
	return dataState, nil
}

// flush emits the pending text run and pushes r back to be read again.
func (p *Tokenizer) flush(token Token, r rune) (tokenizerState, error) {
	p.stream.Pushback(r)
	p.emit(token)
	return dataState, nil
}

func (p *Tokenizer) dataStateParser(r rune, eof bool) (tokenizerState, error) {
	b := p.tokenBuilder
	if eof {
		if b.HasData() {
			p.emit(b.WordToken())
			return dataState, nil
		}
		p.emit(b.EndOfFileToken())
		return dataState, nil
	}

	switch {
	case r == '<', r == '&', r == '\n', isSpace(r), isASCIIDigit(r), isPunctuation(r):
		if b.HasData() {
			return p.flush(b.WordToken(), r)
		}
	default:
		b.WriteData(r)
		return dataState, nil
	}

	switch {
	case r == '<':
		return tagOpenState, nil
	case r == '&':
		return characterReferenceState, nil
	case r == '\n':
		p.emit(b.NewlineToken())
		return dataState, nil
	case isSpace(r):
		b.WriteData(r)
		return spacesState, nil
	case isASCIIDigit(r):
		b.WriteData(r)
		return numberState, nil
	default:
		p.emit(b.PunctuationToken(r))
		return dataState, nil
	}
}

func (p *Tokenizer) numberStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		p.emit(p.tokenBuilder.NumberToken())
		return dataState, nil
	}
	if isASCIIDigit(r) {
		p.tokenBuilder.WriteData(r)
		return numberState, nil
	}
	return p.flush(p.tokenBuilder.NumberToken(), r)
}

func (p *Tokenizer) spacesStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		p.emit(p.tokenBuilder.SpacesToken())
		return dataState, nil
	}
	if isSpace(r) {
		p.tokenBuilder.WriteData(r)
		return spacesState, nil
	}
	return p.flush(p.tokenBuilder.SpacesToken(), r)
}

func (p *Tokenizer) recoverStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	if r == '>' {
		return dataState, nil
	}
	return recoverState, nil
}

func (p *Tokenizer) tagOpenStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	switch {
	case r == '!':
		return markupDeclarationOpenState, nil
	case r == '?':
		return processingInstructionTargetState, nil
	case r == '/':
		return endTagOpenState, nil
	case isNameStartChar(r):
		p.tokenBuilder.WriteName(r)
		return tagNameState, nil
	default:
		return p.errorRecover(r)
	}
}

func (p *Tokenizer) tagNameStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	switch {
	case isMarkupWhitespace(r):
		p.tokenBuilder.StartTag()
		return beforeAttributeNameState, nil
	case r == '/':
		return selfClosingTagNameState, nil
	case r == '>':
		return p.emitCurrentTag(), nil
	case isNameChar(r):
		p.tokenBuilder.WriteName(r)
		return tagNameState, nil
	default:
		return p.errorRecover(r)
	}
}

// selfClosingTagNameStateParser handles the character after <name/.
func (p *Tokenizer) selfClosingTagNameStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	if r == '>' {
		p.emit(p.tokenBuilder.EmptyElementToken())
		return dataState, nil
	}
	return p.errorRecover(r)
}

func (p *Tokenizer) endTagOpenStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	if isNameStartChar(r) {
		p.tokenBuilder.WriteName('/')
		p.tokenBuilder.WriteName(r)
		return endTagNameState, nil
	}
	return p.errorRecover(r)
}

func (p *Tokenizer) endTagNameStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	switch {
	case r == '>':
		return p.emitCurrentTag(), nil
	case isMarkupWhitespace(r):
		return afterEndTagNameState, nil
	case isNameChar(r):
		p.tokenBuilder.WriteName(r)
		return endTagNameState, nil
	default:
		return p.errorRecover(r)
	}
}

func (p *Tokenizer) afterEndTagNameStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	switch {
	case r == '>':
		return p.emitCurrentTag(), nil
	case isMarkupWhitespace(r):
		return afterEndTagNameState, nil
	default:
		return p.errorRecover(r)
	}
}

func (p *Tokenizer) markupDeclarationOpenStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	switch {
	case r == '-':
		return commentStartState, nil
	case r == '[':
		return cdataStartState, nil
	case isNameStartChar(r):
		p.tokenBuilder.WriteName(r)
		return declarationNameState, nil
	default:
		return p.errorRecover(r)
	}
}

func (p *Tokenizer) declarationNameStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	switch {
	case isNameChar(r):
		p.tokenBuilder.WriteName(r)
		return declarationNameState, nil
	case r == '>', isMarkupWhitespace(r):
		if !isDeclarationKeyword(p.tokenBuilder.Name()) {
			p.entry().Errorf("Unknown declaration <!%s", p.tokenBuilder.Name())
			return p.errorRecover(r)
		}
		if r == '>' {
			p.emit(p.tokenBuilder.DoctypeToken())
			return dataState, nil
		}
		return beforeDeclarationDataState, nil
	default:
		return p.errorRecover(r)
	}
}

func (p *Tokenizer) beforeDeclarationDataStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	switch {
	case isMarkupWhitespace(r):
		return beforeDeclarationDataState, nil
	case r == '>':
		p.emit(p.tokenBuilder.DoctypeToken())
		return dataState, nil
	default:
		p.tokenBuilder.WriteData(r)
		return declarationDataState, nil
	}
}

func (p *Tokenizer) declarationDataStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	if r == '>' {
		p.emit(p.tokenBuilder.DoctypeToken())
		return dataState, nil
	}
	p.tokenBuilder.WriteData(r)
	return declarationDataState, nil
}

// commentStartStateParser expects the second dash of <!--.
func (p *Tokenizer) commentStartStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	if r == '-' {
		return commentState, nil
	}
	return p.errorRecover(r)
}

func (p *Tokenizer) commentStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	if r == '-' {
		return commentEndDashState, nil
	}
	p.tokenBuilder.WriteData(r)
	return commentState, nil
}

func (p *Tokenizer) commentEndDashStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	if r == '-' {
		return commentEndState, nil
	}
	p.tokenBuilder.WriteData('-')
	p.stream.Pushback(r)
	return commentState, nil
}

func (p *Tokenizer) commentEndStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	switch r {
	case '>':
		p.emit(p.tokenBuilder.CommentToken())
		return dataState, nil
	case '-':
		p.tokenBuilder.WriteData('-')
		return commentEndState, nil
	default:
		p.tokenBuilder.WriteDataString("--")
		p.stream.Pushback(r)
		return commentState, nil
	}
}

// cdataStartStateParser expects the keyword after <![.
func (p *Tokenizer) cdataStartStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	if isASCIIAlpha(r) {
		p.tokenBuilder.WriteTempBuffer(r)
		return cdataKeywordState, nil
	}
	return p.errorRecover(r)
}

func (p *Tokenizer) cdataKeywordStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	switch {
	case isASCIIAlpha(r):
		p.tokenBuilder.WriteTempBuffer(r)
		return cdataKeywordState, nil
	case r == '[' && strings.EqualFold(p.tokenBuilder.TempBuffer(), "CDATA"):
		p.tokenBuilder.ResetTempBuffer()
		return cdataSectionState, nil
	default:
		return p.errorRecover(r)
	}
}

func (p *Tokenizer) cdataSectionStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	if r == ']' {
		return cdataSectionBracketState, nil
	}
	p.tokenBuilder.WriteData(r)
	return cdataSectionState, nil
}

func (p *Tokenizer) cdataSectionBracketStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	if r == ']' {
		return cdataSectionEndState, nil
	}
	p.tokenBuilder.WriteData(']')
	p.stream.Pushback(r)
	return cdataSectionState, nil
}

func (p *Tokenizer) cdataSectionEndStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	switch r {
	case '>':
		p.emit(p.tokenBuilder.CDataToken())
		return dataState, nil
	case ']':
		p.tokenBuilder.WriteData(']')
		return cdataSectionEndState, nil
	default:
		p.tokenBuilder.WriteDataString("]]")
		p.stream.Pushback(r)
		return cdataSectionState, nil
	}
}

func (p *Tokenizer) processingInstructionTargetStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	b := p.tokenBuilder
	switch {
	case r == '>':
		return p.errorRecover(r)
	case isMarkupWhitespace(r), r == '?':
		if b.Name() == "" {
			return p.errorRecover(r)
		}
		if r == '?' {
			return processingInstructionEndState, nil
		}
		return processingInstructionDataState, nil
	default:
		b.WriteName(r)
		return processingInstructionTargetState, nil
	}
}

func (p *Tokenizer) processingInstructionDataStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	if r == '?' {
		return processingInstructionEndState, nil
	}
	p.tokenBuilder.WriteData(r)
	return processingInstructionDataState, nil
}

func (p *Tokenizer) processingInstructionEndStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	switch r {
	case '>':
		p.emit(p.tokenBuilder.ProcessingInstructionToken())
		return dataState, nil
	case '?':
		p.tokenBuilder.WriteData('?')
		return processingInstructionEndState, nil
	default:
		p.tokenBuilder.WriteData('?')
		p.stream.Pushback(r)
		return processingInstructionDataState, nil
	}
}

// characterReferenceStateParser handles the character after '&'.
func (p *Tokenizer) characterReferenceStateParser(r rune, eof bool) (tokenizerState, error) {
	switch {
	case !eof && r == '#':
		return numericCharacterReferenceState, nil
	case !eof && isNameStartChar(r):
		p.tokenBuilder.WriteName(r)
		return namedCharacterReferenceState, nil
	default:
		p.stream.Pushback(r)
		p.stream.PushbackString("&amp;")
		p.recovered("Assuming literal '&' before %s", runeName(r))
		return dataState, nil
	}
}

func (p *Tokenizer) namedCharacterReferenceStateParser(r rune, eof bool) (tokenizerState, error) {
	b := p.tokenBuilder
	switch {
	case !eof && r == ';':
		p.emit(b.EntityReferenceToken())
		return dataState, nil
	case !eof && isNameChar(r):
		b.WriteName(r)
		return namedCharacterReferenceState, nil
	}

	name := b.Name()
	p.stream.Pushback(r)
	if isAlwaysKnownEntity(name) {
		p.recovered("Assuming missing ';' after &%s", name)
		p.emit(b.EntityReferenceToken())
		return dataState, nil
	}
	p.stream.PushbackString(name)
	p.recovered("Treating &%s as text", name)
	p.emit(b.PunctuationToken('&'))
	return dataState, nil
}

// numericCharacterReferenceStateParser handles the character after &#.
func (p *Tokenizer) numericCharacterReferenceStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	switch {
	case r == 'x', r == 'X':
		return hexadecimalCharacterReferenceState, nil
	case isASCIIDigit(r):
		p.tokenBuilder.AddToCharRef(10, r)
		return decimalCharacterReferenceState, nil
	default:
		return p.errorRecover(r)
	}
}

func (p *Tokenizer) hexadecimalCharacterReferenceStateParser(r rune, eof bool) (tokenizerState, error) {
	if !eof && isASCIIHexDigit(r) {
		p.tokenBuilder.AddToCharRef(16, r)
		return hexadecimalCharacterReferenceState, nil
	}
	return p.endCharacterReference(r, eof)
}

func (p *Tokenizer) decimalCharacterReferenceStateParser(r rune, eof bool) (tokenizerState, error) {
	if !eof && isASCIIDigit(r) {
		p.tokenBuilder.AddToCharRef(10, r)
		return decimalCharacterReferenceState, nil
	}
	return p.endCharacterReference(r, eof)
}

func (p *Tokenizer) endCharacterReference(r rune, eof bool) (tokenizerState, error) {
	b := p.tokenBuilder
	if b.CharRefLen() == 0 {
		if eof {
			return p.unexpectedEOF()
		}
		return p.errorRecover(r)
	}
	if eof || r != ';' {
		p.stream.Pushback(r)
		p.recovered("Assuming missing ';' after character reference before %s", runeName(r))
	}
	p.emit(b.CharacterEntityToken())
	return dataState, nil
}

func (p *Tokenizer) beforeAttributeNameStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	switch {
	case isMarkupWhitespace(r):
		return beforeAttributeNameState, nil
	case r == '>':
		return p.emitCurrentTag(), nil
	case r == '/':
		return selfClosingStartTagState, nil
	case isNameStartChar(r):
		p.tokenBuilder.WriteAttributeName(r)
		return attributeNameState, nil
	default:
		return p.attributeRecover(r)
	}
}

func (p *Tokenizer) attributeNameStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	b := p.tokenBuilder
	switch {
	case isNameChar(r):
		b.WriteAttributeName(r)
		return attributeNameState, nil
	case isMarkupWhitespace(r):
		return afterAttributeNameState, nil
	case r == '=':
		return beforeAttributeValueState, nil
	case r == '>':
		b.CommitAttribute()
		return p.emitCurrentTag(), nil
	case r == '/':
		b.CommitAttribute()
		return selfClosingStartTagState, nil
	default:
		return p.attributeRecover(r)
	}
}

func (p *Tokenizer) afterAttributeNameStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	b := p.tokenBuilder
	switch {
	case isMarkupWhitespace(r):
		return afterAttributeNameState, nil
	case r == '=':
		return beforeAttributeValueState, nil
	case r == '>':
		b.CommitAttribute()
		return p.emitCurrentTag(), nil
	case r == '/':
		b.CommitAttribute()
		return selfClosingStartTagState, nil
	case isNameStartChar(r):
		b.CommitAttribute()
		b.WriteAttributeName(r)
		return attributeNameState, nil
	default:
		return p.attributeRecover(r)
	}
}

func (p *Tokenizer) beforeAttributeValueStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	b := p.tokenBuilder
	switch r {
	case ' ', '\t', '\n':
		return beforeAttributeValueState, nil
	case '"':
		b.StartAttributeValue()
		return attributeValueDoubleQuotedState, nil
	case '\'':
		b.StartAttributeValue()
		return attributeValueSingleQuotedState, nil
	case '>':
		b.StartAttributeValue()
		b.CommitAttribute()
		return p.emitCurrentTag(), nil
	default:
		b.StartAttributeValue()
		b.WriteAttributeValue(r)
		return attributeValueUnquotedState, nil
	}
}

func (p *Tokenizer) attributeValueUnquotedStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	b := p.tokenBuilder
	switch {
	case isMarkupWhitespace(r):
		b.CommitAttribute()
		return beforeAttributeNameState, nil
	case r == '>':
		b.CommitAttribute()
		return p.emitCurrentTag(), nil
	default:
		b.WriteAttributeValue(r)
		return attributeValueUnquotedState, nil
	}
}

func (p *Tokenizer) attributeValueDoubleQuotedStateParser(r rune, eof bool) (tokenizerState, error) {
	return p.attributeValueQuoted(r, eof, '"', attributeValueDoubleQuotedState)
}

func (p *Tokenizer) attributeValueSingleQuotedStateParser(r rune, eof bool) (tokenizerState, error) {
	return p.attributeValueQuoted(r, eof, '\'', attributeValueSingleQuotedState)
}

func (p *Tokenizer) attributeValueQuoted(r rune, eof bool, quote rune, state tokenizerState) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	if r == quote {
		p.tokenBuilder.CommitAttribute()
		return afterAttributeValueQuotedState, nil
	}
	p.tokenBuilder.WriteAttributeValue(r)
	return state, nil
}

func (p *Tokenizer) afterAttributeValueQuotedStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	switch {
	case isMarkupWhitespace(r):
		return beforeAttributeNameState, nil
	case r == '>':
		return p.emitCurrentTag(), nil
	case r == '/':
		return selfClosingStartTagState, nil
	case isNameStartChar(r):
		p.warnf("Missing whitespace before attribute %s", runeName(r))
		p.stream.Pushback(r)
		return beforeAttributeNameState, nil
	default:
		return p.attributeRecover(r)
	}
}

func (p *Tokenizer) selfClosingStartTagStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	if r == '>' {
		p.emit(p.tokenBuilder.EmptyElementToken())
		return dataState, nil
	}
	p.warnf("Unexpected '/' in tag before %s", runeName(r))
	p.stream.Pushback(r)
	return beforeAttributeNameState, nil
}

// attributeRecoverStateParser skips the rest of a broken tag and keeps the
// attributes read before the error.
func (p *Tokenizer) attributeRecoverStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.unexpectedEOF()
	}
	if r == '>' {
		return p.emitCurrentTag(), nil
	}
	return attributeRecoverState, nil
}

func (p *Tokenizer) scriptDataStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		p.warnf("Unexpected end of input in script")
		p.emit(p.tokenBuilder.ScriptToken())
		return dataState, nil
	}
	if r == '<' {
		return scriptDataLessThanSignState, nil
	}
	p.tokenBuilder.WriteData(r)
	return scriptDataState, nil
}

func (p *Tokenizer) scriptDataLessThanSignStateParser(r rune, eof bool) (tokenizerState, error) {
	if !eof && r == '/' {
		p.tokenBuilder.ResetTempBuffer()
		return scriptDataEndTagOpenState, nil
	}
	p.tokenBuilder.WriteData('<')
	p.stream.Pushback(r)
	return scriptDataState, nil
}

func (p *Tokenizer) scriptDataEndTagOpenStateParser(r rune, eof bool) (tokenizerState, error) {
	if !eof && (r == 's' || r == 'S') {
		p.tokenBuilder.WriteTempBuffer(r)
		return scriptDataEndTagNameState, nil
	}
	return p.scriptDataNotEndTag(r)
}

// scriptDataEndTagNameStateParser matches the rest of </script> case-insensitively.
func (p *Tokenizer) scriptDataEndTagNameStateParser(r rune, eof bool) (tokenizerState, error) {
	if eof {
		return p.scriptDataNotEndTag(r)
	}
	b := p.tokenBuilder
	matched := b.TempBuffer()
	if len(matched) == len(scriptTagName) {
		if r != '>' {
			return p.scriptDataNotEndTag(r)
		}
		p.stream.PushbackString("</" + matched + ">")
		p.emit(b.ScriptToken())
		return dataState, nil
	}
	if r < 0x80 && strings.ToLower(string(r)) == scriptTagName[len(matched):len(matched)+1] {
		b.WriteTempBuffer(r)
		return scriptDataEndTagNameState, nil
	}
	return p.scriptDataNotEndTag(r)
}

// scriptDataNotEndTag puts the characters of a failed </script> match back
// into the script body.
func (p *Tokenizer) scriptDataNotEndTag(r rune) (tokenizerState, error) {
	b := p.tokenBuilder
	b.WriteDataString("</" + b.TempBuffer())
	b.ResetTempBuffer()
	p.stream.Pushback(r)
	return scriptDataState, nil
}

func (p *Tokenizer) emitCurrentTag() tokenizerState {
	b := p.tokenBuilder
	tag := b.StartTag()
	p.emit(b.TagToken())
	if !tag.IsEndTag() && strings.EqualFold(tag.Name(), scriptTagName) {
		return scriptDataState
	}
	return dataState
}

// a parserStateHandler is a func that takes in a rune and a bool representing the endoffile
// and returns the next state to transition to.
type parserStateHandler func(in rune, eof bool) (tokenizerState, error)

//go:generate stringer -type=tokenizerState
type tokenizerState uint

const (
	dataState tokenizerState = iota
	recoverState
	numberState
	spacesState
	tagOpenState
	tagNameState
	selfClosingTagNameState
	endTagOpenState
	endTagNameState
	afterEndTagNameState
	markupDeclarationOpenState
	declarationNameState
	beforeDeclarationDataState
	declarationDataState
	commentStartState
	commentState
	commentEndDashState
	commentEndState
	cdataStartState
	cdataKeywordState
	cdataSectionState
	cdataSectionBracketState
	cdataSectionEndState
	processingInstructionTargetState
	processingInstructionDataState
	processingInstructionEndState
	characterReferenceState
	namedCharacterReferenceState
	numericCharacterReferenceState
	hexadecimalCharacterReferenceState
	decimalCharacterReferenceState
	beforeAttributeNameState
	attributeNameState
	afterAttributeNameState
	beforeAttributeValueState
	attributeValueUnquotedState
	attributeValueDoubleQuotedState
	attributeValueSingleQuotedState
	afterAttributeValueQuotedState
	selfClosingStartTagState
	attributeRecoverState
	scriptDataState
	scriptDataLessThanSignState
	scriptDataEndTagOpenState
	scriptDataEndTagNameState
)

func (p *Tokenizer) takeEmittedToken() *Token {
	if len(p.emittedTokens) > 0 {
		ret := p.emittedTokens[0]
		p.emittedTokens = p.emittedTokens[1:]
		if ret.Type == EOFToken {
			p.done = true
			if !p.deferReport {
				p.log.Info(p.CompletionReport())
			}
		}
		return &ret
	}
	return nil
}

// Next reports whether Token may be called again.
func (p *Tokenizer) Next() bool {
	return !p.done
}

// Token returns the next token. After the EOF token, or after an error, it
// keeps returning the same result.
func (p *Tokenizer) Token() (*Token, error) {
	// some states emit more than 1 token at a time and sometimes no tokens.
	// loop until at least 1 token is emitted and then take them.
	for {
		if token := p.takeEmittedToken(); token != nil {
			return token, nil
		}
		if p.done {
			if p.err != nil {
				return nil, p.err
			}
			return &Token{Type: EOFToken}, nil
		}

		r := p.stream.Read()
		if r == EOF {
			if err := p.stream.Err(); err != nil {
				p.fail(err)
				return nil, err
			}
		}

		if err := p.processRune(r, r == EOF); err != nil {
			p.fail(err)
			return nil, err
		}
	}
}

func (p *Tokenizer) fail(err error) {
	p.done = true
	p.err = err
	p.emittedTokens = nil
	p.entry().WithError(err).Error("Tokenizing aborted")
}

func (p *Tokenizer) processRune(r rune, eof bool) error {
	next, err := p.stateToParser(p.currentState)(r, eof)
	if next != p.currentState {
		tracef(p.log, "State change %s -> %s on %s", p.currentState, next, runeName(r))
	}
	p.currentState = next
	return err
}

func tracef(log logrus.FieldLogger, format string, args ...interface{}) {
	if l, ok := log.(logrus.Ext1FieldLogger); ok {
		l.Tracef(format, args...)
	}
}
