package attrs

import (
	"io"
	"os"
	"strings"
)

// Render returns element's attributes as a single escaped string, ready to
// be placed after the tag name:
//
//	fmt.Fprintf(w, "<div %s>", s.Render("wrapper"))
//
// Attributes appear in insertion order, separated by one space. Boolean
// attributes render as a bare name. Attributes with nothing to show are
// skipped. Unknown elements render as "".
func (s *Store) Render(element string) string {
	s.metrics.rendered()
	m := s.elements[element]
	if m.Len() == 0 {
		return ""
	}

	var b strings.Builder
	m.Each(func(name string, v Value) {
		token := renderAttr(name, v)
		if token == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(token)
	})
	return b.String()
}

// Fprint writes the rendered attributes of element to w.
func (s *Store) Fprint(w io.Writer, element string) (int, error) {
	return io.WriteString(w, s.Render(element))
}

// Print writes the rendered attributes of element to standard output.
func (s *Store) Print(element string) (int, error) {
	return s.Fprint(os.Stdout, element)
}

// renderAttr renders one attribute, or "" when it should be skipped.
func renderAttr(name string, v Value) string {
	name = SanitizeName(name)
	if name == "" {
		return ""
	}

	switch v.kind {
	case KindBool:
		if v.flag {
			return name
		}
		return ""
	case KindScalar, KindList:
	default:
		return ""
	}

	items := v.Strings()
	if IsMultiValue(name) {
		items = dedupe(items)
	}

	if IsSingleton(name) {
		if len(items) == 0 {
			return ""
		}
		last := items[len(items)-1]
		if strings.TrimSpace(last) == "" {
			return ""
		}
		return name + `="` + EscapeValue(last) + `"`
	}

	kept := items[:0]
	for _, item := range items {
		if item != "" {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return name + `="` + EscapeValue(strings.Join(kept, " ")) + `"`
}
