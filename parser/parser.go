package parser

import (
	"io"
	"strings"
)

// Parser wires a Tokenizer to a Normalizer for one document.
type Parser struct {
	Tokenizer  *Tokenizer
	Normalizer *Normalizer
}

// NewParser creates a parser reading markup from htmlIn.
func NewParser(htmlIn io.Reader, opts ...Option) *Parser {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	tokenizer := NewTokenizer(NewReader(htmlIn, cfg.Source), cfg)
	return &Parser{
		Tokenizer:  tokenizer,
		Normalizer: NewNormalizer(tokenizer, cfg),
	}
}

// Start normalizes the whole input and writes the XML document to w.
func (p *Parser) Start(w io.Writer) error {
	return p.Normalizer.Normalize(w)
}

// Tokens drains the tokenizer. The EOF token is the last element.
func (p *Parser) Tokens() ([]*Token, error) {
	tokens := []*Token{}
	for p.Tokenizer.Next() {
		t, err := p.Tokenizer.Token()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}

	return tokens, nil
}

// ToXML converts loosely structured markup into a well-formed XML document.
// When the input cannot be converted the result is empty.
func ToXML(html string, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := NewParser(strings.NewReader(html), opts...).Start(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
