package renderutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Encoding is an encoding the Encode function can dispatch to.
type Encoding int

const (
	EncodingHTML Encoding = iota + 1
	EncodingJS
	EncodingJSON
	EncodingUnicode
	EncodingURL
	EncodingXML
)

var encodingNames = map[string]Encoding{
	"html":    EncodingHTML,
	"js":      EncodingJS,
	"json":    EncodingJSON,
	"unicode": EncodingUnicode,
	"url":     EncodingURL,
	"xml":     EncodingXML,
}

// ParseEncoding returns the encoding with the given name and true, or false
// if there is no such encoding. Names are case-insensitive.
func ParseEncoding(name string) (Encoding, bool) {
	e, ok := encodingNames[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// String returns the name of the encoding.
func (e Encoding) String() string {
	for name, enc := range encodingNames {
		if enc == e {
			return name
		}
	}
	return "Encoding(" + strconv.Itoa(int(e)) + ")"
}

// Encode encodes s with the encoding named by the "encoding" key of props.
// If the key is absent or names an unknown encoding, s is returned unchanged.
func Encode(s string, props Properties) string {
	if props.Len() == 0 {
		return s
	}
	e, ok := ParseEncoding(props.String("encoding", ""))
	if !ok {
		return s
	}
	return EncodeWith(s, e)
}

// EncodeWith encodes s with the encoding e.
func EncodeWith(s string, e Encoding) string {
	switch e {
	case EncodingHTML:
		return EncodeHTML(s)
	case EncodingJS:
		return EncodeJS(s)
	case EncodingJSON:
		return EncodeJSON(s)
	case EncodingUnicode:
		return EncodeUnicode(s)
	case EncodingURL:
		return EncodeURL(s)
	case EncodingXML:
		return EncodeXML(s)
	}
	return s
}

// HTMLEntities replaces every code point of s with its decimal numeric
// character reference. Code points outside the BMP produce a single entity.
func HTMLEntities(s string) string {
	if s == "" {
		return s
	}
	b := strings.Builder{}
	b.Grow(len(s) * 6)
	for _, r := range s {
		b.WriteString("&#")
		b.WriteString(strconv.Itoa(int(r)))
		b.WriteByte(';')
	}
	return b.String()
}

// EncodeJS escapes s so it can be placed inside a JavaScript string literal
// delimited by single or double quotes.
//
// Quotes, backslash, slash and the common control characters use their short
// escape form, any other control character is written as \uXXXX. Non-ASCII
// characters are written verbatim.
func EncodeJS(s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	const hex = "0123456789ABCDEF"
	b := strings.Builder{}
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '/':
			b.WriteString(`\/`)
		case '\b':
			b.WriteString(`\b`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7F {
				b.WriteString(`\u00`)
				b.WriteByte(hex[r>>4])
				b.WriteByte(hex[r&0xF])
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// QuotedPrintable keeps the ASCII letters and digits of s and writes every
// other UTF-16 code unit as "=" followed by its upper case hexadecimal value.
func QuotedPrintable(s string) string {
	if s == "" {
		return s
	}
	b := strings.Builder{}
	b.Grow(len(s) * 3)
	for _, c := range utf16.Encode([]rune(s)) {
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
			b.WriteByte(byte(c))
			continue
		}
		fmt.Fprintf(&b, "=%02X", c)
	}
	return b.String()
}

// EncodeHTML escapes the characters <, >, &, ' and ".
func EncodeHTML(s string) string {
	return html.EscapeString(s)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EncodeXML escapes the five predefined XML entities.
func EncodeXML(s string) string {
	return xmlReplacer.Replace(s)
}

// EncodeURL escapes s so it can be placed inside a URL query. Spaces become
// "+".
func EncodeURL(s string) string {
	return url.QueryEscape(s)
}

// EncodeJSON escapes s for the inside of a JSON string, without the
// surrounding quotes.
func EncodeJSON(s string) string {
	if s == "" {
		return s
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return s
	}
	out := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	out = bytes.TrimPrefix(out, []byte(`"`))
	out = bytes.TrimSuffix(out, []byte(`"`))
	return string(out)
}

// EncodeUnicode writes every non-ASCII character of s as \uXXXX escapes, one
// per UTF-16 code unit. ASCII characters are written verbatim.
func EncodeUnicode(s string) string {
	if s == "" {
		return s
	}
	b := strings.Builder{}
	b.Grow(len(s) * 2)
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			fmt.Fprintf(&b, `\u%04X\u%04X`, r1, r2)
			continue
		}
		fmt.Fprintf(&b, `\u%04X`, r)
	}
	return b.String()
}
