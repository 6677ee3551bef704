package attrs

import (
	"reflect"
	"testing"
)

type level int

type flag bool

type label struct{ s string }

func (l label) String() string { return l.s }

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		want   []string
	}{
		{"nothing", nil, nil},
		{"nil entry", []any{nil}, nil},
		{"scalar", []any{"btn"}, []string{"btn"}},
		{"trimmed", []any{"  btn  "}, []string{"btn"}},
		{"blank dropped", []any{"   "}, nil},
		{"variadic", []any{"a", "b"}, []string{"a", "b"}},
		{"string slice", []any{[]string{"a", " ", "b "}}, []string{"a", "b"}},
		{"nested any slice", []any{[]any{"a", []any{"b", nil, false}, true}}, []string{"a", "b", "true"}},
		{"false dropped", []any{false}, nil},
		{"true literal", []any{true}, []string{"true"}},
		{"named bool", []any{flag(true), flag(false)}, []string{"true"}},
		{"ints", []any{1, int64(-2), uint8(3)}, []string{"1", "-2", "3"}},
		{"named int", []any{level(7)}, []string{"7"}},
		{"floats", []any{1.5, float32(0.25)}, []string{"1.5", "0.25"}},
		{"int slice", []any{[]int{4, 5}}, []string{"4", "5"}},
		{"byte slice", []any{[]byte(" raw ")}, []string{"raw"}},
		{"stringer", []any{label{"x"}}, []string{"x"}},
		{"value list", []any{List("a", "b")}, []string{"a", "b"}},
		{"value bool true", []any{Bool(true)}, []string{"true"}},
		{"value bool false", []any{Bool(false)}, nil},
		{"duplicates kept", []any{"a", "a"}, []string{"a", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unsupported := normalize(tt.values)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalize(%v) = %q, want %q", tt.values, got, tt.want)
			}
			if len(unsupported) != 0 {
				t.Errorf("unexpected unsupported values: %v", unsupported)
			}
		})
	}
}

func TestNormalizeUnsupported(t *testing.T) {
	got, unsupported := normalize([]any{"a", map[string]int{"x": 1}, struct{}{}, "b"})
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("normalize() = %q", got)
	}
	if len(unsupported) != 2 {
		t.Errorf("unsupported = %v, want 2 entries", unsupported)
	}
}

func TestIsEmptyValue(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		want   bool
	}{
		{"omitted", nil, true},
		{"nil", []any{nil}, true},
		{"empty string", []any{""}, true},
		{"empty string slice", []any{[]string{}}, true},
		{"empty any slice", []any{[]any{}}, true},
		{"empty int slice", []any{[]int{}}, true},
		{"zero value", []any{Value{}}, true},
		{"empty list value", []any{List()}, true},
		{"blank string", []any{"  "}, false},
		{"zero", []any{0}, false},
		{"false", []any{false}, false},
		{"two values", []any{"", ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isEmptyValue(tt.values); got != tt.want {
				t.Errorf("isEmptyValue(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestIsFalseValue(t *testing.T) {
	if !isFalseValue([]any{false}) {
		t.Error("false should be a false value")
	}
	if !isFalseValue([]any{Bool(false)}) {
		t.Error("Bool(false) should be a false value")
	}
	if isFalseValue([]any{true}) || isFalseValue([]any{false, false}) || isFalseValue(nil) {
		t.Error("only a single false is a false value")
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		want   string
	}{
		{"string kept as-is", []any{" a "}, " a "},
		{"true", []any{true}, "true"},
		{"false", []any{false}, "false"},
		{"int", []any{3}, "3"},
		{"value", []any{List("a", "b")}, "a b"},
		{"stringer", []any{label{"x"}}, "x"},
		{"slice joined", []any{[]string{"a", "", "b"}}, "a b"},
		{"variadic joined", []any{"a", 2}, "a 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stringify(tt.values); got != tt.want {
				t.Errorf("stringify(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}
