package parser

import (
	"io"
	"strconv"
	"strings"

	"github.com/heathj/tagparser/parser/entity"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// XMLHeader starts every normalized document.
const XMLHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

const missingStartTagComment = " inserted missing start-tag "

// emptyElements never have content, however they are written.
var emptyElements = []string{"br", "meta", "link", "base", "input", "img", "area"}

// singletonElements occur once per document. They are never opened by the
// normalizer, only closed when left dangling.
var singletonElements = []string{"html", "head", "body"}

// xmlEntities are the named entities every XML parser knows.
var xmlEntities = []string{"amp", "lt", "gt", "quot", "apos"}

func containsFold(list []string, name string) bool {
	for _, s := range list {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

type tokenHandler func(t *Token) error

// Normalizer rewrites the token stream of a Tokenizer as well-formed XML. End
// tags are balanced against a stack of open elements and entities are turned
// into character references XML understands.
type Normalizer struct {
	tokenizer           *Tokenizer
	config              Config
	log                 logrus.FieldLogger
	out                 strings.Builder
	stackOfOpenElements []string
	mappings            map[TokenType]tokenHandler
}

// NewNormalizer creates a normalizer that drains t.
func NewNormalizer(t *Tokenizer, cfg Config) *Normalizer {
	cfg = cfg.withDefaults()
	n := &Normalizer{
		tokenizer: t,
		config:    cfg,
		log:       t.log,
	}
	n.createMappings()
	return n
}

func (n *Normalizer) createMappings() {
	n.mappings = map[TokenType]tokenHandler{
		WordToken:                  n.textHandler,
		NumberToken:                n.textHandler,
		SpacesToken:                n.textHandler,
		NewlineToken:               n.newlineHandler,
		PunctuationToken:           n.punctuationHandler,
		TagToken:                   n.tagHandler,
		EntityReferenceToken:       n.entityReferenceHandler,
		CharacterEntityToken:       n.characterEntityHandler,
		CommentToken:               n.verbatimHandler,
		CDataToken:                 n.verbatimHandler,
		ScriptToken:                n.scriptHandler,
		ProcessingInstructionToken: n.discardHandler,
		DoctypeToken:               n.discardHandler,
	}
}

// Normalize tokenizes the whole input and writes the XML document to w. On
// error nothing is written.
func (n *Normalizer) Normalize(w io.Writer) error {
	n.tokenizer.deferReport = true
	n.out.Reset()
	n.stackOfOpenElements = n.stackOfOpenElements[:0]
	n.out.WriteString(XMLHeader)

	leading := true
	for n.tokenizer.Next() {
		t, err := n.tokenizer.Token()
		if err != nil {
			return err
		}
		if t.Type == EOFToken {
			break
		}
		if leading {
			switch t.Type {
			case SpacesToken, NewlineToken, DoctypeToken:
				continue
			}
			leading = false
		}

		handler, ok := n.mappings[t.Type]
		if !ok {
			return errors.Errorf("no handler for %s", t.Type)
		}
		if err := handler(t); err != nil {
			return err
		}
	}
	n.closeOpenElements()
	n.log.Info(n.tokenizer.CompletionReport())

	_, err := io.WriteString(w, n.out.String())
	return errors.Wrap(err, "writing xml")
}

func (n *Normalizer) getCurrentNode() string {
	return n.stackOfOpenElements[len(n.stackOfOpenElements)-1]
}

func (n *Normalizer) pop() string {
	name := n.getCurrentNode()
	n.stackOfOpenElements = n.stackOfOpenElements[:len(n.stackOfOpenElements)-1]
	return name
}

// openIndex returns the position of the innermost open element called name.
func (n *Normalizer) openIndex(name string) int {
	for i := len(n.stackOfOpenElements) - 1; i >= 0; i-- {
		if strings.EqualFold(n.stackOfOpenElements[i], name) {
			return i
		}
	}
	return -1
}

func (n *Normalizer) writeEndTag(name string) {
	n.out.WriteString("</")
	n.out.WriteString(name)
	n.out.WriteByte('>')
}

func (n *Normalizer) closeOpenElements() {
	for len(n.stackOfOpenElements) > 0 {
		name := n.pop()
		n.tokenizer.warnf("Closing <%s> left open at end of input", name)
		n.writeEndTag(name)
	}
}

func (n *Normalizer) tagHandler(t *Token) error {
	if t.Tag.IsEndTag() {
		return n.endTag(t.Tag)
	}
	return n.startTag(t.Tag)
}

func (n *Normalizer) startTag(tag *Tag) error {
	switch {
	case tag.IsEmptyElement():
		n.out.WriteString(tag.Render())
	case containsFold(emptyElements, tag.Name()):
		e, err := NewEmptyElement(tag)
		if err != nil {
			return err
		}
		n.out.WriteString(e.Render())
	default:
		n.out.WriteString(tag.Render())
		n.stackOfOpenElements = append(n.stackOfOpenElements, tag.Name())
	}
	return nil
}

func (n *Normalizer) endTag(tag *Tag) error {
	name := tag.BaseName()
	switch {
	case containsFold(emptyElements, name):
		n.log.Debugf("Dropping end-tag of empty element <%s>", name)
		return nil
	case len(n.stackOfOpenElements) == 0:
		n.tokenizer.warnf("Dropping end-tag </%s> with no open element", name)
		return nil
	case strings.EqualFold(n.getCurrentNode(), name):
		n.writeEndTag(n.pop())
		return nil
	case containsFold(singletonElements, name):
		return n.closeSingleton(name)
	default:
		return n.insertMissingStartTag(tag)
	}
}

// closeSingleton closes html, head or body along with everything opened inside it.
func (n *Normalizer) closeSingleton(name string) error {
	i := n.openIndex(name)
	if i < 0 {
		n.tokenizer.warnf("Dropping end-tag </%s> of element that is not open", name)
		return nil
	}
	for len(n.stackOfOpenElements)-1 > i {
		inner := n.pop()
		n.tokenizer.recovered("Closing <%s> before </%s>", inner, name)
		n.writeEndTag(inner)
	}
	n.writeEndTag(n.pop())
	return nil
}

// insertMissingStartTag writes an element for an end-tag whose start-tag was
// never seen. The stack of open elements is left as it is.
func (n *Normalizer) insertMissingStartTag(tag *Tag) error {
	dummy, err := NewDummyElement(tag)
	if err != nil {
		return err
	}
	n.tokenizer.recovered("Inserting missing start-tag for </%s> inside <%s>", dummy.Name(), n.getCurrentNode())
	if n.config.AnnotateRepairs {
		dummy.SetComment(missingStartTagComment)
		n.out.WriteString(dummy.Render())
		return nil
	}
	n.out.WriteString(dummy.copyAs(dummy.Name()).Render())
	n.writeEndTag(dummy.Name())
	return nil
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// writeText writes character data, replacing anything XML cannot carry.
func (n *Normalizer) writeText(s string) {
	textEscaper.WriteString(&n.out, strings.Map(xmlCharOrReplacement, s))
}

func xmlCharOrReplacement(r rune) rune {
	if isXMLChar(r) {
		return r
	}
	return '\uFFFD'
}

func (n *Normalizer) textHandler(t *Token) error {
	n.writeText(t.Data)
	return nil
}

func (n *Normalizer) newlineHandler(t *Token) error {
	n.out.WriteByte('\n')
	return nil
}

func (n *Normalizer) punctuationHandler(t *Token) error {
	n.writeText(string(t.Char))
	return nil
}

func (n *Normalizer) entityReferenceHandler(t *Token) error {
	if containsFold(xmlEntities, t.Name) {
		n.out.WriteString("&" + strings.ToLower(t.Name) + ";")
		return nil
	}

	code, ok := entity.Lookup(t.Name)
	if !ok && n.config.HTML5Entities {
		code, ok = entity.LookupHTML5(t.Name)
	}
	if !ok {
		return errors.Wrapf(ErrUnsupportedEntity, "&%s; at %s", t.Name, n.tokenizer.stream.Position())
	}
	n.out.WriteString("&#" + strconv.Itoa(int(code)) + ";")
	return nil
}

func (n *Normalizer) characterEntityHandler(t *Token) error {
	n.writeText(string(t.Char))
	return nil
}

func (n *Normalizer) verbatimHandler(t *Token) error {
	n.out.WriteString(t.Render())
	return nil
}

func (n *Normalizer) scriptHandler(t *Token) error {
	if t.Data == "" {
		return nil
	}
	body := strings.ReplaceAll(t.Data, "<![CDATA[", "")
	body = strings.ReplaceAll(body, "]]>", "")
	n.out.WriteString("/*<![CDATA[*/")
	n.out.WriteString(body)
	n.out.WriteString("/*]]>*/")
	return nil
}

func (n *Normalizer) discardHandler(t *Token) error {
	n.log.Debugf("Dropping %s", t.Type)
	return nil
}
