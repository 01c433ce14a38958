package parser

import "fmt"

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isNameStartChar reports whether r may begin a tag, attribute or entity name.
func isNameStartChar(r rune) bool {
	return isASCIIAlpha(r) || r == '_' || r == ':'
}

// isNameChar reports whether r may continue a tag, attribute or entity name.
func isNameChar(r rune) bool {
	return isNameStartChar(r) || isASCIIDigit(r) || r == '-' || r == '.'
}

// isMarkupWhitespace matches the separators allowed inside markup. Carriage
// returns never get this far.
func isMarkupWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n':
		return true
	default:
		return false
	}
}

// isSpace matches the characters collected into a spaces token.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

func isPunctuation(r rune) bool {
	switch r {
	case '\'', '`', '!', '"', '^', '*', '(', ')', '-', '_', '+', '=', '|',
		'[', ']', '{', '}', ':', ';', '@', '~', '#', ',', '.', '?', '/', '\\':
		return true
	default:
		return false
	}
}

func isSurrogate(code rune) bool {
	return code >= 0xD800 && code <= 0xDFFF
}

func isC0Control(code rune) bool {
	return code >= 0x00 && code <= 0x1F
}

// isXMLChar matches the Char production of XML 1.0.
func isXMLChar(code rune) bool {
	switch {
	case code == 0x09, code == 0x0A, code == 0x0D:
		return true
	case isC0Control(code):
		return false
	case code <= 0xD7FF:
		return true
	case code >= 0xE000 && code <= 0xFFFD:
		return true
	case code >= 0x10000 && code <= 0x10FFFF:
		return true
	default:
		return false
	}
}

// validCodePoint maps references that cannot be represented to U+FFFD.
func validCodePoint(code int64) rune {
	if code <= 0 || code > 0x10FFFF || isSurrogate(rune(code)) {
		return '\uFFFD'
	}
	return rune(code)
}

var controlNames = [...]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
	"BS", "HT", "LF", "VT", "FF", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
	"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
}

// runeName labels a character for diagnostics.
func runeName(r rune) string {
	switch {
	case r == EOF:
		return "<EOF>"
	case r >= 0 && int(r) < len(controlNames):
		return fmt.Sprintf("0x%X <%s>", r, controlNames[r])
	case r == ' ':
		return "0x20 <SP>"
	case r == 0x7F:
		return "0x7F <DEL>"
	case r > 0x20 && r < 0x7F:
		return string(r)
	default:
		return fmt.Sprintf("0x%X", r)
	}
}
