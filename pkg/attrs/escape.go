package attrs

import "strings"

// attrReplacer escapes markup characters and both quote styles.
var attrReplacer = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#039;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeValue escapes s for use inside a quoted HTML attribute value.
func EscapeValue(s string) string {
	if !strings.ContainsAny(s, `&"'<>`) {
		return s
	}
	return attrReplacer.Replace(s)
}
