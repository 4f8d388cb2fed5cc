package jsparse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

// decodeString decodes a JavaScript string token (quotes included) into its
// runtime value. Unknown escapes decode to the escaped character, matching
// JavaScript semantics.
func decodeString(token string) string {
	if len(token) < 2 {
		return token
	}
	inner := token[1 : len(token)-1]
	if !strings.ContainsRune(inner, '\\') {
		return inner
	}

	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); {
		ch := inner[i]
		if ch != '\\' || i+1 >= len(inner) {
			b.WriteByte(ch)
			i++
			continue
		}
		esc := inner[i+1]
		i += 2
		switch esc {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\n':
			// Line continuation: the escaped newline disappears.
		case 'x':
			i += writeCodePoint(&b, inner[i:], 2)
		case 'u':
			if i < len(inner) && inner[i] == '{' {
				end := strings.IndexByte(inner[i:], '}')
				if end < 0 {
					b.WriteString("\\u{")
					i++
					continue
				}
				writeHex(&b, inner[i+1:i+end])
				i += end + 1
			} else {
				i += writeUnicodeEscape(&b, inner[i:])
			}
		default:
			b.WriteByte(esc)
		}
	}
	return b.String()
}

// Quote renders s as a double-quoted JavaScript string literal. Every escape
// emitted is one JavaScript decodes back to the same value; Go-only escape
// forms never appear.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case ' ', ' ':
			// Legal in JSON but not in a JS string literal.
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// writeCodePoint decodes exactly n hex digits from s, writes the resulting
// rune, and returns how many input bytes were consumed.
func writeCodePoint(b *strings.Builder, s string, n int) int {
	if len(s) < n {
		b.WriteString(s)
		return len(s)
	}
	writeHex(b, s[:n])
	return n
}

// writeUnicodeEscape decodes the 4 hex digits following \u. A high surrogate
// immediately followed by a \u low-surrogate escape decodes as one paired
// code point. Returns how many input bytes were consumed.
func writeUnicodeEscape(b *strings.Builder, s string) int {
	if len(s) < 4 {
		b.WriteString(s)
		return len(s)
	}
	v, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		b.WriteString(s[:4])
		return 4
	}
	r := rune(v)
	if utf16.IsSurrogate(r) && len(s) >= 10 && s[4] == '\\' && s[5] == 'u' {
		if low, err := strconv.ParseUint(s[6:10], 16, 32); err == nil {
			if paired := utf16.DecodeRune(r, rune(low)); paired != unicode.ReplacementChar {
				b.WriteRune(paired)
				return 10
			}
		}
	}
	b.WriteRune(r)
	return 4
}

func writeHex(b *strings.Builder, digits string) {
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		b.WriteString(digits)
		return
	}
	b.WriteRune(rune(v))
}
