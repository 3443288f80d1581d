package vkdump

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognizedExtensionTag = errors.New("vkdump: unrecognized extension tag")
	ErrStructureMismatch        = errors.New("vkdump: structure does not match registered printer")
	ErrExtensionCycle           = errors.New("vkdump: extension chain cycle")
	ErrDepthExceeded            = errors.New("vkdump: maximum nesting depth exceeded")
	ErrUnsupportedValue         = errors.New("vkdump: unsupported argument value")
)

// UnrecognizedExtensionTagError reports a pNext entry whose sType has no
// registered printer.
type UnrecognizedExtensionTagError struct {
	Tag  StructureType
	Path string
}

func (e *UnrecognizedExtensionTagError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("vkdump: unrecognized extension tag %d", int32(e.Tag))
	}
	return fmt.Sprintf("vkdump: unrecognized extension tag %d at %s", int32(e.Tag), e.Path)
}

func (e *UnrecognizedExtensionTagError) Is(target error) bool {
	return target == ErrUnrecognizedExtensionTag
}
