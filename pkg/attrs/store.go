package attrs

import (
	"log/slog"
	"sort"
)

// Config configures a Store.
type Config struct {
	// ID is an opaque identifier attached to log records for debugging.
	// It has no effect on behavior.
	ID string

	// Logger receives Debug records for input that was silently dropped.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics counts dropped input and renders. It is owned by the caller
	// and may be shared by many stores. If nil, nothing is counted.
	Metrics *Metrics
}

// Attr is a single name/value pair for the bulk Add and Set forms.
// A nil Value marks a boolean attribute.
type Attr struct {
	Name  string
	Value any
}

func (a Attr) values() []any {
	if a.Value == nil {
		return nil
	}
	return []any{a.Value}
}

// Store accumulates attributes per element alias.
//
// A Store is not safe for concurrent use. Each render (or request) should
// own its own Store; nothing is shared between instances.
type Store struct {
	id       string
	logger   *slog.Logger
	metrics  *Metrics
	elements map[string]*AttributeMap
	order    []string
}

// New returns a new, empty Store. The optional id is used only in log
// records.
func New(id ...string) *Store {
	var cfg Config
	if len(id) > 0 {
		cfg.ID = id[0]
	}
	return NewWithConfig(cfg)
}

// NewWithConfig returns a new, empty Store configured by cfg.
func NewWithConfig(cfg Config) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "attrs")
	if cfg.ID != "" {
		logger = logger.With("store", cfg.ID)
	}
	return &Store{
		id:       cfg.ID,
		logger:   logger,
		metrics:  cfg.Metrics,
		elements: make(map[string]*AttributeMap),
	}
}

// ID returns the identifier the Store was created with.
func (s *Store) ID() string { return s.id }

// Logger returns the Store's scoped logger.
func (s *Store) Logger() *slog.Logger { return s.logger }

// Add merges value into the attribute name of element.
//
// With no value (or nil, "" or an empty slice) the attribute becomes a bare
// boolean attribute such as disabled. A single false removes it. For id the
// last value wins. For class, rel, aria-labelledby and aria-describedby the
// values are appended to the existing list without duplicates. Any other
// attribute keeps the last value given.
func (s *Store) Add(element, name string, value ...any) *Store {
	s.merge(element, name, value)
	return s
}

// AddAttrs applies Add (or Set when overwrite is true) for each attr in
// order.
func (s *Store) AddAttrs(element string, overwrite bool, attrs ...Attr) *Store {
	for _, a := range attrs {
		if overwrite {
			s.set(element, a.Name, a.values())
		} else {
			s.merge(element, a.Name, a.values())
		}
	}
	return s
}

// AddMap is AddAttrs for a map. Keys are applied in sorted order.
func (s *Store) AddMap(element string, m map[string]any, overwrite bool) *Store {
	return s.AddAttrs(element, overwrite, mapAttrs(m)...)
}

// Set replaces the attribute name of element with value, without merging.
//
// With no value the attribute becomes a bare boolean attribute. For id only
// the last of the given values is kept; for multi-value attributes the
// values replace the list; anything else stores the value's string form.
func (s *Store) Set(element, name string, value ...any) *Store {
	s.set(element, name, value)
	return s
}

// SetAttrs applies Set for each attr in order.
func (s *Store) SetAttrs(element string, attrs ...Attr) *Store {
	return s.AddAttrs(element, true, attrs...)
}

// SetMap is SetAttrs for a map. Keys are applied in sorted order.
func (s *Store) SetMap(element string, m map[string]any) *Store {
	return s.AddAttrs(element, true, mapAttrs(m)...)
}

// Remove deletes every attribute of element.
func (s *Store) Remove(element string) *Store {
	if _, ok := s.elements[element]; !ok {
		return s
	}
	delete(s.elements, element)
	for i, e := range s.order {
		if e == element {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return s
}

// RemoveAttr deletes the attribute name from element.
func (s *Store) RemoveAttr(element, name string) *Store {
	if m := s.elements[element]; m != nil {
		m.delete(SanitizeName(name))
	}
	return s
}

// RemoveValue removes value from the attribute name of element.
//
// For list attributes each given value is dropped from the list, and the
// attribute is deleted once the list is empty. For scalar and boolean
// attributes the attribute is deleted when its string form equals value's,
// or when value is true. A nil value removes nothing; use RemoveAttr.
func (s *Store) RemoveValue(element, name string, value any) *Store {
	m := s.elements[element]
	if m == nil || isNil(value) {
		return s
	}
	name = SanitizeName(name)
	cur, ok := m.Get(name)
	if !ok {
		return s
	}

	if cur.kind == KindList {
		drop := make(map[string]struct{})
		for _, v := range s.normalize(element, name, []any{value}) {
			drop[v] = struct{}{}
		}
		remaining := make([]string, 0, len(cur.list))
		for _, v := range cur.list {
			if _, ok := drop[v]; !ok {
				remaining = append(remaining, v)
			}
		}
		if len(remaining) == 0 {
			m.delete(name)
			return s
		}
		m.put(name, List(remaining...))
		return s
	}

	if b, ok := value.(bool); ok && b {
		m.delete(name)
		return s
	}
	if cur.String() == stringify([]any{value}) {
		m.delete(name)
	}
	return s
}

// Attributes returns a deep copy of element's attributes. Changes to the
// result never affect the Store. Unknown elements yield an empty map.
func (s *Store) Attributes(element string) *AttributeMap {
	return s.elements[element].Clone()
}

// Has reports whether any attribute has been written for element.
func (s *Store) Has(element string) bool {
	_, ok := s.elements[element]
	return ok
}

// Elements returns the element aliases in the order they were first written.
func (s *Store) Elements() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Store) merge(element, rawName string, values []any) {
	name := s.sanitize(element, rawName)
	if name == "" {
		return
	}
	if isFalseValue(values) {
		s.RemoveAttr(element, name)
		return
	}
	if isEmptyValue(values) {
		s.attrs(element).put(name, Bool(true))
		return
	}
	if IsSingleton(name) {
		s.replace(element, name, values)
		return
	}

	items := s.normalize(element, name, values)
	if len(items) == 0 {
		return
	}
	m := s.attrs(element)
	if IsMultiValue(name) {
		if existing, ok := m.Get(name); ok {
			items = append(existing.Strings(), items...)
		}
		m.put(name, List(items...))
		return
	}
	m.put(name, Scalar(items[len(items)-1]))
}

func (s *Store) set(element, rawName string, values []any) {
	name := s.sanitize(element, rawName)
	if name == "" {
		return
	}
	s.replace(element, name, values)
}

// replace stores values under an already sanitized name.
func (s *Store) replace(element, name string, values []any) {
	if isFalseValue(values) {
		s.RemoveAttr(element, name)
		return
	}
	if isEmptyValue(values) {
		s.attrs(element).put(name, Bool(true))
		return
	}

	switch {
	case IsSingleton(name):
		items := s.normalize(element, name, values)
		if len(items) == 0 {
			s.RemoveAttr(element, name)
			return
		}
		s.attrs(element).put(name, Scalar(items[len(items)-1]))
	case IsMultiValue(name):
		items := s.normalize(element, name, values)
		if len(items) == 0 {
			s.RemoveAttr(element, name)
			return
		}
		s.attrs(element).put(name, List(items...))
	default:
		s.attrs(element).put(name, Scalar(stringify(values)))
	}
}

// attrs returns element's map, creating it on first write.
func (s *Store) attrs(element string) *AttributeMap {
	m := s.elements[element]
	if m == nil {
		m = newAttributeMap()
		s.elements[element] = m
		s.order = append(s.order, element)
	}
	return m
}

func (s *Store) sanitize(element, raw string) string {
	name := SanitizeName(raw)
	if name == "" {
		s.logger.Debug("dropped attribute with unusable name", "element", element, "name", raw)
		s.metrics.droppedName()
	}
	return name
}

func (s *Store) normalize(element, name string, values []any) []string {
	out, unsupported := normalize(values)
	for _, v := range unsupported {
		typ := typeName(v)
		s.logger.Debug("ignored attribute value of unsupported type",
			"element", element, "name", name, "type", typ)
		s.metrics.ignoredValue(typ)
	}
	return out
}

func mapAttrs(m map[string]any) []Attr {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Attr, 0, len(names))
	for _, name := range names {
		out = append(out, Attr{Name: name, Value: m[name]})
	}
	return out
}
