package vkdump

import "fmt"

type integer interface {
	~int32 | ~uint32 | ~int64 | ~uint64
}

// Symbol pairs a Vulkan enumerant value with its canonical name.
type Symbol[T integer] struct {
	Value T
	Name  string
}

// SymbolTable maps enumerant values to their Vulkan names.
//
// Several names may share a value (promoted extension aliases such as
// VK_IMAGE_LAYOUT_READ_ONLY_OPTIMAL_KHR). The first name registered for a
// value is canonical; later ones are kept as aliases only.
type SymbolTable[T integer] struct {
	typeName string
	names    map[T][]string
}

func NewSymbolTable[T integer](typeName string, entries ...Symbol[T]) *SymbolTable[T] {
	t := &SymbolTable[T]{
		typeName: typeName,
		names:    make(map[T][]string, len(entries)),
	}
	for _, e := range entries {
		t.names[e.Value] = append(t.names[e.Value], e.Name)
	}
	return t
}

// TypeName returns the Vulkan type the table describes, e.g. "VkImageLayout".
func (t *SymbolTable[T]) TypeName() string {
	return t.typeName
}

func (t *SymbolTable[T]) Name(v T) (string, bool) {
	names, ok := t.names[v]
	if !ok {
		return "", false
	}
	return names[0], true
}

func (t *SymbolTable[T]) Aliases(v T) []string {
	names := t.names[v]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// String renders v by name, falling back to "VkType(value)" for values the
// table does not know.
func (t *SymbolTable[T]) String(v T) string {
	if name, ok := t.Name(v); ok {
		return name
	}
	return fmt.Sprintf("%s(%d)", t.typeName, v)
}

func (t *SymbolTable[T]) Len() int {
	return len(t.names)
}
