package runtime

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the number of distinct names a table holds unless
// configured otherwise.
const DefaultCapacity = 100

// ErrSymbolTableFull is returned by Set when a new name does not fit.
var ErrSymbolTableFull = errors.New("symbol table full")

// UndefinedVariableError reports a read of a name that was never set.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'", e.Name)
}

// Binding is a single name/value pair.
type Binding struct {
	Name  string
	Value int64
}

// SymbolTable is the flat global store of integer variables. Names keep the
// order in which they were first set.
type SymbolTable struct {
	values   map[string]int64
	order    []string
	capacity int
}

// NewSymbolTable creates an empty table. A capacity <= 0 means unbounded.
func NewSymbolTable(capacity int) *SymbolTable {
	if capacity < 0 {
		capacity = 0
	}
	return &SymbolTable{
		values:   make(map[string]int64),
		capacity: capacity,
	}
}

// Capacity returns the configured bound (0 when unbounded).
func (s *SymbolTable) Capacity() int {
	return s.capacity
}

func (s *SymbolTable) Len() int {
	return len(s.order)
}

// Set inserts or updates name. Updating an existing name always succeeds.
func (s *SymbolTable) Set(name string, value int64) error {
	if _, ok := s.values[name]; ok {
		s.values[name] = value
		return nil
	}
	if s.capacity > 0 && len(s.order) >= s.capacity {
		return fmt.Errorf("cannot store '%s': %w (capacity %d)", name, ErrSymbolTableFull, s.capacity)
	}
	s.values[name] = value
	s.order = append(s.order, name)
	return nil
}

// Get retrieves a binding.
func (s *SymbolTable) Get(name string) (int64, error) {
	if v, ok := s.values[name]; ok {
		return v, nil
	}
	return 0, &UndefinedVariableError{Name: name}
}

func (s *SymbolTable) Lookup(name string) (int64, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Snapshot returns the bindings in insertion order.
func (s *SymbolTable) Snapshot() []Binding {
	out := make([]Binding, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, Binding{Name: name, Value: s.values[name]})
	}
	return out
}
