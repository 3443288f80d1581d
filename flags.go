package vkdump

import (
	"fmt"
	"strings"
)

type flagInteger interface {
	~uint32 | ~uint64
}

// maxFlagBits bounds the bit scan. VkFlags64 is the widest mask type Vulkan
// defines, so no flag can live above bit 63.
const maxFlagBits = 64

// FlagTable names the individual bits of a Vulkan bitmask type.
type FlagTable[T flagInteger] struct {
	bits *SymbolTable[T]
}

func NewFlagTable[T flagInteger](typeName string, bits ...Symbol[T]) *FlagTable[T] {
	return &FlagTable[T]{bits: NewSymbolTable(typeName, bits...)}
}

func (t *FlagTable[T]) TypeName() string {
	return t.bits.TypeName()
}

// Names returns the names of the bits set in v in ascending bit order.
// Bits without a name come back as their hex value.
func (t *FlagTable[T]) Names(v T) []string {
	var names []string
	for i := 0; i < maxFlagBits; i++ {
		bit := uint64(1) << i
		if uint64(v)&bit == 0 {
			continue
		}
		if name, ok := t.bits.Name(T(bit)); ok {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("0x%X", bit))
		}
	}
	return names
}

// Render joins the set bit names with " | ". Zero renders as "0".
func (t *FlagTable[T]) Render(v T) string {
	if v == 0 {
		return "0"
	}
	return strings.Join(t.Names(v), " | ")
}
