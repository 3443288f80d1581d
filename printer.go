package vkdump

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// nullValue is printed for null pointers, null strings and empty links.
const nullValue = `"NULL"`

// Printer serializes one structure graph at a time.
//
// A Printer owns its buffer and nesting state, so it must not be shared
// between goroutines. Separate Printers never interact; the registry they
// dispatch through is safe for concurrent readers.
//
// Errors are sticky: after the first failure the Printer stops descending
// into nested structures and Err reports that failure.
type Printer struct {
	buf   bytes.Buffer
	opts  Options
	depth int
	chain []any
	path  []string
	err   error
}

func NewPrinter(opts ...Option) *Printer {
	return &Printer{opts: buildOptions(opts)}
}

func (p *Printer) Options() Options {
	return p.opts
}

// Bytes returns the output accumulated since the last Reset.
func (p *Printer) Bytes() []byte {
	return p.buf.Bytes()
}

func (p *Printer) Err() error {
	return p.err
}

// Reset clears the output and any error so the Printer can be reused.
func (p *Printer) Reset() {
	p.buf.Reset()
	p.depth = 0
	p.chain = p.chain[:0]
	p.path = p.path[:0]
	p.err = nil
}

// Structure appends s as a top-level JSON document followed by a newline.
func (p *Printer) Structure(s Structure) error {
	if p.err != nil {
		return p.err
	}
	p.dispatch("$", s)
	p.buf.WriteByte('\n')
	return p.err
}

func (p *Printer) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *Printer) pathString() string {
	return strings.Join(p.path, ".")
}

// visit runs fn with ptr pushed on the ancestry stack. Re-entering a
// pointer that is still being printed is a cycle.
func (p *Printer) visit(name string, ptr any, fn func()) {
	if p.err != nil {
		p.null()
		return
	}
	for _, seen := range p.chain {
		if seen == ptr {
			p.path = append(p.path, name)
			p.fail(fmt.Errorf("%w at %s", ErrExtensionCycle, p.pathString()))
			p.path = p.path[:len(p.path)-1]
			p.null()
			return
		}
	}
	p.chain = append(p.chain, ptr)
	p.path = append(p.path, name)
	fn()
	p.path = p.path[:len(p.path)-1]
	p.chain = p.chain[:len(p.chain)-1]
}

// Layout primitives.

func (p *Printer) indent() {
	n := p.depth * p.opts.Indent
	for i := 0; i < n; i++ {
		p.buf.WriteByte(' ')
	}
}

// key writes a member name. Field names are plain ASCII and are copied
// through; caller-supplied names such as argument names are escaped.
func (p *Printer) key(name string) {
	p.indent()
	if plainKey(name) {
		p.buf.WriteByte('"')
		p.buf.WriteString(name)
		p.buf.WriteByte('"')
	} else {
		p.buf.Write(quoteString(name))
	}
	p.buf.WriteString(": ")
}

// end terminates a member. Every member except the last gets a comma.
func (p *Printer) end(last bool) {
	if !last {
		p.buf.WriteByte(',')
	}
	p.buf.WriteByte('\n')
}

func (p *Printer) enter() bool {
	if p.depth >= p.opts.MaxDepth {
		p.fail(fmt.Errorf("%w: limit %d at %s", ErrDepthExceeded, p.opts.MaxDepth, p.pathString()))
		return false
	}
	p.depth++
	return true
}

func (p *Printer) openObject() {
	p.buf.WriteString("{\n")
	p.enter()
}

func (p *Printer) closeObject() {
	if p.depth > 0 {
		p.depth--
	}
	p.indent()
	p.buf.WriteByte('}')
}

func (p *Printer) openArray() {
	p.buf.WriteString("[\n")
	p.enter()
}

func (p *Printer) closeArray() {
	if p.depth > 0 {
		p.depth--
	}
	p.indent()
	p.buf.WriteByte(']')
}

func (p *Printer) null() {
	p.buf.WriteString(nullValue)
}

// marker writes a diagnostic string that is not part of the data.
func (p *Printer) marker(format string, args ...any) {
	p.buf.WriteByte('"')
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('"')
}

// Field printers. Each writes one `"name": value` member.

func (p *Printer) Uint32(name string, v uint32, last bool) {
	p.key(name)
	p.buf.WriteString(strconv.FormatUint(uint64(v), 10))
	p.end(last)
}

func (p *Printer) Int32(name string, v int32, last bool) {
	p.key(name)
	p.buf.WriteString(strconv.FormatInt(int64(v), 10))
	p.end(last)
}

func (p *Printer) Uint64(name string, v uint64, last bool) {
	p.key(name)
	p.buf.WriteString(strconv.FormatUint(v, 10))
	p.end(last)
}

func (p *Printer) Int64(name string, v int64, last bool) {
	p.key(name)
	p.buf.WriteString(strconv.FormatInt(v, 10))
	p.end(last)
}

func (p *Printer) DeviceSize(name string, v DeviceSize, last bool) {
	p.Uint64(name, uint64(v), last)
}

func (p *Printer) Float32(name string, v float32, last bool) {
	p.key(name)
	p.buf.WriteString(formatFloat(float64(v), 32))
	p.end(last)
}

func (p *Printer) Float64(name string, v float64, last bool) {
	p.key(name)
	p.buf.WriteString(formatFloat(v, 64))
	p.end(last)
}

// Bool32 prints VK_TRUE and VK_FALSE as JSON booleans. Any other value is
// kept as a number so nothing is lost.
func (p *Printer) Bool32(name string, v Bool32, last bool) {
	p.key(name)
	p.bool32Value(&v)
	p.end(last)
}

// String prints v as an escaped JSON string, including when it is empty.
func (p *Printer) String(name string, v string, last bool) {
	p.key(name)
	p.buf.Write(quoteString(v))
	p.end(last)
}

// CString prints a nullable char pointer. The empty string stands for NULL.
func (p *Printer) CString(name string, v string, last bool) {
	p.key(name)
	p.cstringValue(&v)
	p.end(last)
}

// Enum prints the symbolic name of an enum or bitmask value.
func (p *Printer) Enum(name string, v fmt.Stringer, last bool) {
	p.key(name)
	p.buf.Write(quoteString(v.String()))
	p.end(last)
}

// Flags is Enum for bitmask fields; the value's String method renders the
// set bits in ascending order.
func (p *Printer) Flags(name string, v fmt.Stringer, last bool) {
	p.Enum(name, v, last)
}

// Handle prints an opaque object reference. The referent is never read.
func (p *Printer) Handle(name string, h Handle, last bool) {
	p.key(name)
	p.handleValue(h)
	p.end(last)
}

// RawHandle prints a handle known only by its bits, such as the objectHandle
// of VkDebugUtilsObjectNameInfoEXT.
func (p *Printer) RawHandle(name string, v uint64, last bool) {
	p.key(name)
	p.buf.Write(formatHandle(v, p.opts.Handles))
	p.end(last)
}

// Opaque prints a host pointer such as pUserData or a callback. Zero is NULL;
// anything else follows the handle policy.
func (p *Printer) Opaque(name string, v uintptr, last bool) {
	p.key(name)
	if v == 0 {
		p.null()
	} else {
		p.buf.Write(formatHandle(uint64(v), p.opts.Handles))
	}
	p.end(last)
}

// Blob prints raw bytes as standard padded Base64. A nil slice is NULL.
func (p *Printer) Blob(name string, v []byte, last bool) {
	p.key(name)
	if v == nil {
		p.null()
	} else {
		p.buf.Write(encodeBlob(v))
	}
	p.end(last)
}

// SizedBlob prints the first size bytes of v. When size claims more bytes
// than v holds, the available bytes are printed and a "<name>" member
// follows with a "<N bytes missing>" marker.
func (p *Printer) SizedBlob(name string, v []byte, size uint64, last bool) {
	var missing uint64
	if v != nil && size > uint64(len(v)) {
		missing = size - uint64(len(v))
	}
	p.Blob(name, clip(v, size), last && missing == 0)
	if missing > 0 {
		p.key("<" + name + ">")
		p.marker("<%d bytes missing>", missing)
		p.end(last)
	}
}

// SType prints the leading structure type tag.
func (p *Printer) SType(t StructureType, last bool) {
	p.Enum("sType", t, last)
}

// Element printers, used as the per-element callback of printArray.

func (p *Printer) uint32Value(v *uint32) {
	p.buf.WriteString(strconv.FormatUint(uint64(*v), 10))
}

func (p *Printer) int32Value(v *int32) {
	p.buf.WriteString(strconv.FormatInt(int64(*v), 10))
}

func (p *Printer) uint64Value(v *uint64) {
	p.buf.WriteString(strconv.FormatUint(*v, 10))
}

func (p *Printer) float32Value(v *float32) {
	p.buf.WriteString(formatFloat(float64(*v), 32))
}

func (p *Printer) bool32Value(v *Bool32) {
	switch *v {
	case FALSE:
		p.buf.WriteString("false")
	case TRUE:
		p.buf.WriteString("true")
	default:
		p.buf.WriteString(strconv.FormatUint(uint64(*v), 10))
	}
}

func (p *Printer) cstringValue(v *string) {
	if *v == "" {
		p.null()
		return
	}
	p.buf.Write(quoteString(*v))
}

func (p *Printer) handleValue(h Handle) {
	if isNilValue(h) {
		p.null()
		return
	}
	p.buf.Write(formatHandle(h.HandleValue(), p.opts.Handles))
}

// stringerValue prints any enum or flag type through its String method.
func stringerValue[T fmt.Stringer](p *Printer, v *T) {
	p.buf.Write(quoteString((*v).String()))
}

// handleElem adapts a handle slice element to printArray.
func handleElem[T Handle](p *Printer, v *T) {
	p.handleValue(*v)
}

// printArray prints a count-prefixed array field. count is the sibling count
// field, elems the pointed-to storage. A nil slice is NULL whatever the
// count says. A count larger than the storage prints what exists followed by
// a marker; nothing is invented.
func printArray[T any](p *Printer, name string, count uint32, elems []T, each func(*Printer, *T), last bool) {
	p.key(name)
	writeArray(p, uint64(count), elems, each)
	p.end(last)
}

func writeArray[T any](p *Printer, count uint64, elems []T, each func(*Printer, *T)) {
	if elems == nil {
		p.null()
		return
	}
	n := count
	var missing, truncated uint64
	if n > uint64(len(elems)) {
		missing = n - uint64(len(elems))
		n = uint64(len(elems))
	}
	if limit := uint64(p.opts.MaxArrayElements); n > limit {
		truncated = n - limit
		n = limit
	}
	if n == 0 && missing == 0 {
		p.buf.WriteString("[]")
		return
	}
	p.openArray()
	for i := uint64(0); i < n; i++ {
		if p.err != nil {
			break
		}
		p.indent()
		each(p, &elems[i])
		p.end(i == n-1 && missing == 0 && truncated == 0)
	}
	if truncated > 0 {
		p.indent()
		p.marker("<%d elements truncated>", truncated)
		p.end(missing == 0)
	}
	if missing > 0 {
		p.indent()
		p.marker("<%d elements missing>", missing)
		p.end(true)
	}
	p.closeArray()
}

// printInline prints a nested aggregate stored by value.
func printInline[T any](p *Printer, name string, v *T, fn func(*Printer, *T), last bool) {
	p.key(name)
	fn(p, v)
	p.end(last)
}

// printPointer prints a nullable pointer to an aggregate.
func printPointer[T any](p *Printer, name string, v *T, fn func(*Printer, *T), last bool) {
	p.key(name)
	if v == nil {
		p.null()
	} else {
		p.visit(name, v, func() { fn(p, v) })
	}
	p.end(last)
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}
