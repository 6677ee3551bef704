package attrs

import (
	"fmt"

	"github.com/vango-dev/attrs/internal/errors"
)

// AttributeMap is an insertion-ordered mapping of attribute name to Value.
//
// Replacing the value of an existing name keeps its position; deleting a
// name and adding it again moves it to the end.
type AttributeMap struct {
	names  []string
	values map[string]Value
}

func newAttributeMap() *AttributeMap {
	return &AttributeMap{values: make(map[string]Value)}
}

// Len returns the number of attributes.
func (m *AttributeMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Names returns the attribute names in insertion order.
func (m *AttributeMap) Names() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Get returns the value stored for name.
func (m *AttributeMap) Get(name string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.values[name]
	return v, ok
}

// Each calls fn for every attribute in insertion order.
func (m *AttributeMap) Each(fn func(name string, v Value)) {
	if m == nil {
		return
	}
	for _, name := range m.names {
		fn(name, m.values[name])
	}
}

// Map returns a plain map snapshot: bool for boolean attributes, string for
// scalars and []string for lists.
func (m *AttributeMap) Map() map[string]any {
	out := make(map[string]any, m.Len())
	m.Each(func(name string, v Value) {
		out[name] = v.Interface()
	})
	return out
}

// Clone returns a deep, independent copy of m.
func (m *AttributeMap) Clone() *AttributeMap {
	out := newAttributeMap()
	m.Each(func(name string, v Value) {
		out.put(name, v.clone())
	})
	return out
}

func (m *AttributeMap) put(name string, v Value) {
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = v
}

func (m *AttributeMap) delete(name string) {
	if _, ok := m.values[name]; !ok {
		return
	}
	delete(m.values, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			break
		}
	}
}

// invalidKind builds the invariant error raised when a Value of unknown
// kind is found in a map.
func invalidKind(k Kind) error {
	return errors.New("A001").WithDetail(fmt.Sprintf("kind %d (%s)", uint8(k), k))
}
