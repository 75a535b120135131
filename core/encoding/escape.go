// Package encoding provides the XML escaping used by the generator and the
// DOM formatter. Text content and attribute values escape different sets:
// quotes must be escaped inside attributes but are left alone in text, so
// that canonical output stays minimal and reparses to the same string.
package encoding

import "strings"

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
)

// EscapeXMLText escapes character data for element content.
func EscapeXMLText(s string) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}
	return textEscaper.Replace(s)
}

// EscapeXMLAttr escapes a value for a double-quoted attribute.
func EscapeXMLAttr(s string) string {
	if !strings.ContainsAny(s, `&<>"`) {
		return s
	}
	return attrEscaper.Replace(s)
}
