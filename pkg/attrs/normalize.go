package attrs

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// isEmptyValue reports whether values carries no value at all: nothing was
// passed, or the single argument is nil (including a typed nil pointer),
// "", an empty slice or a zero Value.
func isEmptyValue(values []any) bool {
	if len(values) == 0 {
		return true
	}
	if len(values) > 1 {
		return false
	}
	if isNil(values[0]) {
		return true
	}
	switch v := values[0].(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case Value:
		return v.kind == KindInvalid || (v.kind == KindList && len(v.list) == 0)
	}
	rv := reflect.ValueOf(values[0])
	return rv.Kind() == reflect.Slice && rv.Len() == 0
}

// isNil reports whether v is nil or a nil pointer or interface wrapped in
// a non-nil interface value.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// isFalseValue reports whether values is exactly one false boolean.
func isFalseValue(values []any) bool {
	if len(values) != 1 {
		return false
	}
	switch v := values[0].(type) {
	case bool:
		return !v
	case Value:
		return v.kind == KindBool && !v.flag
	}
	return false
}

// normalize flattens values into an ordered sequence of non-empty trimmed
// strings. nil and false entries are dropped, true becomes "true", slices
// are flattened. Entries of unsupported types (maps, structs, funcs) are
// returned in unsupported and otherwise ignored.
func normalize(values []any) (out []string, unsupported []any) {
	var n normalizer
	for _, v := range values {
		n.add(v)
	}
	return n.out, n.unsupported
}

type normalizer struct {
	out         []string
	unsupported []any
}

func (n *normalizer) push(s string) {
	if s = strings.TrimSpace(s); s != "" {
		n.out = append(n.out, s)
	}
}

func (n *normalizer) add(value any) {
	if isNil(value) {
		return
	}
	switch v := value.(type) {
	case nil:
	case string:
		n.push(v)
	case bool:
		if v {
			n.out = append(n.out, "true")
		}
	case []string:
		for _, s := range v {
			n.push(s)
		}
	case []byte:
		n.push(string(v))
	case []any:
		for _, item := range v {
			n.add(item)
		}
	case Value:
		switch v.kind {
		case KindBool:
			if v.flag {
				n.out = append(n.out, "true")
			}
		case KindScalar:
			n.push(v.str)
		case KindList:
			for _, s := range v.list {
				n.push(s)
			}
		}
	case fmt.Stringer:
		n.push(v.String())
	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Bool {
			if rv.Bool() {
				n.out = append(n.out, "true")
			}
			return
		}
		if s, ok := scalarString(value); ok {
			n.push(s)
			return
		}
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				n.add(rv.Index(i).Interface())
			}
			return
		}
		n.unsupported = append(n.unsupported, value)
	}
}

// scalarString converts numeric kinds (including named types) to strings.
func scalarString(value any) (string, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	}
	return "", false
}

// stringify returns the string representation of values used for plain
// scalar attributes and value comparisons. A single string is kept as-is;
// anything else is normalized and joined with a space.
func stringify(values []any) string {
	if len(values) == 1 {
		if isNil(values[0]) {
			return ""
		}
		switch v := values[0].(type) {
		case string:
			return v
		case bool:
			return strconv.FormatBool(v)
		case Value:
			return v.String()
		case fmt.Stringer:
			return v.String()
		}
		if s, ok := scalarString(values[0]); ok {
			return s
		}
	}
	out, _ := normalize(values)
	return strings.Join(out, " ")
}

func typeName(v any) string { return fmt.Sprintf("%T", v) }
