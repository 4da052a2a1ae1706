// Package quote renders variable names and values for display, so that the
// output can be pasted back into a command line.
package quote

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote returns s as a bareword if possible; otherwise it is quoted,
// preferring single quotes.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	bare := true
	for _, r := range s {
		if r == unicode.ReplacementChar || !unicode.IsPrint(r) {
			// Contains invalid UTF-8 sequence or unprintable character; force
			// double quote.
			return quoteDouble(s)
		}
		if !allowedInBareword(r) {
			bare = false
		}
	}
	if bare && s[0] != '~' {
		return s
	}
	return quoteSingle(s)
}

// Escape returns s with every character that has special meaning to the
// command line preceded by a backslash, and unprintable characters written as
// escape sequences. The result is never quoted.
func Escape(s string) string {
	var sb strings.Builder
	for s != "" {
		r, w := utf8.DecodeRuneInString(s)
		switch {
		case r == utf8.RuneError && w == 1:
			sb.WriteString(`\x`)
			sb.Write(rtohex(rune(s[0]), 2))
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r == '\x1b':
			sb.WriteString(`\e`)
		case strings.ContainsRune(escapedInBareword, r):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case unicode.IsPrint(r) && r != utf8.RuneError:
			sb.WriteRune(r)
		default:
			writeRuneEscape(&sb, r)
		}
		s = s[w:]
	}
	return sb.String()
}

// Characters that need a backslash in Escape.
const escapedInBareword = "\\'\"$*?~#(){}[]<>&|;% "

func allowedInBareword(r rune) bool {
	return r == '-' || r == '_' || r == '.' || r == '/' || r == ':' ||
		r == '@' || r == '+' || r == '^' || r == '~' ||
		('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') ||
		r > 0x7f
}

func quoteSingle(s string) string {
	var sb strings.Builder
	sb.WriteByte('\'')
	for _, r := range s {
		sb.WriteRune(r)
		if r == '\'' {
			sb.WriteByte('\'')
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}

var doubleEscape = map[rune]rune{
	'\a': 'a', '\b': 'b', '\x1b': 'e', '\f': 'f', '\n': 'n', '\r': 'r',
	'\t': 't', '\v': 'v', '\\': '\\', '"': '"',
}

func quoteDouble(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for s != "" {
		r, w := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && w == 1 {
			// An invalid UTF-8 sequence was seen -- encode first byte as a hex literal.
			sb.WriteString(`\x`)
			sb.Write(rtohex(rune(s[0]), 2))
		} else if e, ok := doubleEscape[r]; ok {
			sb.WriteByte('\\')
			sb.WriteRune(e)
		} else if unicode.IsPrint(r) && r != utf8.RuneError {
			sb.WriteRune(r)
		} else {
			writeRuneEscape(&sb, r)
		}
		s = s[w:]
	}
	sb.WriteByte('"')
	return sb.String()
}

func writeRuneEscape(sb *strings.Builder, r rune) {
	switch {
	case r <= 0x7f:
		sb.WriteString(`\x`)
		sb.Write(rtohex(r, 2))
	case r <= 0xffff:
		sb.WriteString(`\u`)
		sb.Write(rtohex(r, 4))
	default:
		sb.WriteString(`\U`)
		sb.Write(rtohex(r, 8))
	}
}

func rtohex(r rune, w int) []byte {
	bytes := make([]byte, w)
	for i := w - 1; i >= 0; i-- {
		d := byte(r % 16)
		r /= 16
		if d <= 9 {
			bytes[i] = '0' + d
		} else {
			bytes[i] = 'a' + d - 10
		}
	}
	return bytes
}
