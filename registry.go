package vkdump

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Structure is any extensible Vulkan structure: one that starts with an sType
// tag and may be linked into a pNext chain.
type Structure interface {
	StructureType() StructureType
}

// RawStructure stands in for an extension the capturing layer could not
// decode. Only its tag and link survive.
type RawStructure struct {
	Type StructureType
	Next Structure
}

func (s *RawStructure) StructureType() StructureType {
	return s.Type
}

type printFunc func(*Printer, Structure)

// Registry maps structure type tags to printers.
// Plain aggregates without an sType (VkExtent2D, VkBufferCopy) are kept in
// a second table keyed by Go type, used when they appear as call arguments.
type Registry struct {
	mu       sync.RWMutex
	printers map[StructureType]registered
	values   map[reflect.Type]func(*Printer, any)
}

type registered struct {
	goType string
	fn     printFunc
}

var defaultRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		printers: make(map[StructureType]registered),
		values:   make(map[reflect.Type]func(*Printer, any)),
	}
}

// DefaultRegistry returns the registry holding every structure this package
// knows how to print.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register binds tag to fn. A later registration for the same tag replaces
// the earlier one.
func Register[T Structure](r *Registry, tag StructureType, fn func(*Printer, T)) {
	var zero T
	goType := fmt.Sprintf("%T", zero)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.printers[tag] = registered{
		goType: goType,
		fn: func(p *Printer, s Structure) {
			v, ok := s.(T)
			if !ok {
				p.fail(fmt.Errorf("%w: %s is registered as %s, got %T", ErrStructureMismatch, tag, goType, s))
				p.null()
				return
			}
			fn(p, v)
		},
	}
}

// RegisterValue binds a printer to a plain aggregate type.
func RegisterValue[T any](r *Registry, fn func(*Printer, *T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[reflect.TypeOf((*T)(nil)).Elem()] = func(p *Printer, v any) {
		x := v.(T)
		fn(p, &x)
	}
}

func (r *Registry) lookupValue(t reflect.Type) (func(*Printer, any), bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.values[t]
	return fn, ok
}

func (r *Registry) lookup(tag StructureType) (printFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.printers[tag]
	return e.fn, ok
}

func (r *Registry) Has(tag StructureType) bool {
	_, ok := r.lookup(tag)
	return ok
}

// GoType reports the Go type registered for tag.
func (r *Registry) GoType(tag StructureType) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.printers[tag]
	return e.goType, ok
}

func (r *Registry) Unregister(tag StructureType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.printers, tag)
}

// Tags returns the registered tags in ascending order.
func (r *Registry) Tags() []StructureType {
	r.mu.RLock()
	tags := make([]StructureType, 0, len(r.printers))
	for tag := range r.printers {
		tags = append(tags, tag)
	}
	r.mu.RUnlock()
	slices.Sort(tags)
	return tags
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.printers)
}

// Clone copies r so callers can add or drop printers without touching the
// shared default.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := &Registry{
		printers: make(map[StructureType]registered, len(r.printers)),
		values:   make(map[reflect.Type]func(*Printer, any), len(r.values)),
	}
	for tag, e := range r.printers {
		c.printers[tag] = e
	}
	for t, fn := range r.values {
		c.values[t] = fn
	}
	return c
}

// Next prints a pNext member. The linked structure is dispatched exactly
// once; its own printer takes care of whatever it links to.
func (p *Printer) Next(next Structure, last bool) {
	p.key("pNext")
	p.dispatch("pNext", next)
	p.end(last)
}

// dispatch prints s through the printer registered for its tag. name labels
// the link in error paths.
func (p *Printer) dispatch(name string, s Structure) {
	if isNilValue(s) {
		p.null()
		return
	}
	tag := s.StructureType()
	fn, ok := p.opts.Registry.lookup(tag)
	if !ok {
		p.unknown(name, s, tag)
		return
	}
	p.visit(name, s, func() { fn(p, s) })
}

func (p *Printer) unknown(name string, s Structure, tag StructureType) {
	if p.opts.UnknownExtensions != UnknownExtensionPlaceholder {
		p.path = append(p.path, name)
		p.fail(&UnrecognizedExtensionTagError{Tag: tag, Path: p.pathString()})
		p.path = p.path[:len(p.path)-1]
		p.null()
		return
	}
	p.visit(name, s, func() {
		p.openObject()
		raw, isRaw := s.(*RawStructure)
		p.key(fmt.Sprintf("<unknown extension tag %d>", int32(tag)))
		p.buf.WriteString("true")
		if isRaw {
			p.end(false)
			p.Next(raw.Next, true)
		} else {
			p.end(true)
		}
		p.closeObject()
	})
}
