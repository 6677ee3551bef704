package attrs

import "strings"

// singletonAttrs keep only their most recent value.
var singletonAttrs = map[string]bool{
	"id": true,
}

// multiValueAttrs accumulate into a de-duplicated, space-separated list.
var multiValueAttrs = map[string]bool{
	"class":            true,
	"rel":              true,
	"aria-labelledby":  true,
	"aria-describedby": true,
}

// IsSingleton reports whether name keeps only its last written value.
func IsSingleton(name string) bool { return singletonAttrs[name] }

// IsMultiValue reports whether values for name merge into a list.
func IsMultiValue(name string) bool { return multiValueAttrs[name] }

// SanitizeName strips every character outside [A-Za-z0-9:._-] from name.
// An empty result means the name is unusable.
func SanitizeName(name string) string {
	clean := true
	for i := 0; i < len(name); i++ {
		if !isNameByte(name[i]) {
			clean = false
			break
		}
	}
	if clean {
		return name
	}

	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		if c := name[i]; isNameByte(c) {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isNameByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == ':', c == '.', c == '_', c == '-':
		return true
	}
	return false
}
