package attrs

import "strings"

// Kind is the Value shape discriminator.
type Kind uint8

const (
	KindInvalid Kind = iota // zero Value; never stored
	KindBool                // present with no value (bare name) or absent
	KindScalar              // single string value
	KindList                // ordered, de-duplicated strings
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindScalar:
		return "Scalar"
	case KindList:
		return "List"
	default:
		return "Invalid"
	}
}

// Value is a stored attribute value: a boolean, a scalar string or an
// ordered list of unique strings.
type Value struct {
	kind Kind
	flag bool
	str  string
	list []string
}

// Bool returns a boolean Value. Bool(true) renders as a bare attribute name;
// Bool(false) is never rendered.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Scalar returns a single-string Value.
func Scalar(s string) Value { return Value{kind: KindScalar, str: s} }

// List returns a list Value holding items with duplicates removed, keeping
// the first occurrence of each.
func List(items ...string) Value { return Value{kind: KindList, list: dedupe(items)} }

// Kind returns the shape of v.
func (v Value) Kind() Kind { return v.kind }

// IsTrue reports whether v is Bool(true).
func (v Value) IsTrue() bool { return v.kind == KindBool && v.flag }

// Strings returns v as an ordered sequence. Scalars become a one-element
// slice, Bool(true) becomes nil.
func (v Value) Strings() []string {
	switch v.kind {
	case KindScalar:
		return []string{v.str}
	case KindList:
		out := make([]string, len(v.list))
		copy(out, v.list)
		return out
	default:
		return nil
	}
}

// String returns the textual form of v: the scalar itself, list items
// joined with a space, or "true"/"false" for booleans.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.flag {
			return "true"
		}
		return "false"
	case KindScalar:
		return v.str
	case KindList:
		return strings.Join(v.list, " ")
	default:
		return ""
	}
}

// Interface returns v as a plain Go value: bool, string or []string.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.flag
	case KindScalar:
		return v.str
	case KindList:
		return v.Strings()
	default:
		return nil
	}
}

// Equal reports whether v and o have the same kind and contents.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.flag == o.flag
	case KindScalar:
		return v.str == o.str
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
		return true
	}
	return true
}

// clone returns a deep copy of v. It panics if v has an unknown kind.
func (v Value) clone() Value {
	switch v.kind {
	case KindBool, KindScalar:
		return v
	case KindList:
		return Value{kind: KindList, list: v.Strings()}
	default:
		panic(invalidKind(v.kind))
	}
}

// dedupe returns items without duplicates, preserving first-occurrence order.
func dedupe(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
