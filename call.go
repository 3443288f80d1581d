package vkdump

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
)

// Arg is one named argument of a captured API call.
//
// Value may be a Structure, a Handle, an enum or flag value, a Go scalar,
// a string, a []byte blob, a slice of any of those, or a pointer to one.
type Arg struct {
	Name  string
	Value any
}

// Call is a captured API call: its command name, arguments in declaration
// order and, for commands that return one, the VkResult.
type Call struct {
	Name   string
	Args   []Arg
	Result *Result
}

func NewCall(name string, args ...Arg) *Call {
	return &Call{Name: name, Args: args}
}

// Returning records the call's result.
func (c *Call) Returning(r Result) *Call {
	c.Result = &r
	return c
}

// Call appends c as a top-level JSON document followed by a newline.
func (p *Printer) Call(c *Call) error {
	if p.err != nil {
		return p.err
	}
	if c == nil {
		p.fail(fmt.Errorf("%w: nil call", ErrUnsupportedValue))
		return p.err
	}
	p.visit("$", c, func() {
		p.openObject()
		p.String("function", c.Name, false)
		p.key("args")
		if len(c.Args) == 0 {
			p.buf.WriteString("{}")
		} else {
			p.openObject()
			for i := range c.Args {
				a := &c.Args[i]
				p.key(a.Name)
				p.value(a.Name, a.Value)
				p.end(i == len(c.Args)-1)
			}
			p.closeObject()
		}
		p.end(c.Result == nil)
		if c.Result != nil {
			p.Enum("result", *c.Result, true)
		}
		p.closeObject()
	})
	p.buf.WriteByte('\n')
	return p.err
}

func DumpCall(w io.Writer, c *Call, opts ...Option) error {
	p := NewPrinter(opts...)
	if err := p.Call(c); err != nil {
		return err
	}
	_, err := w.Write(p.Bytes())
	return err
}

func MarshalCall(c *Call, opts ...Option) ([]byte, error) {
	p := NewPrinter(opts...)
	if err := p.Call(c); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// value prints an argument of arbitrary type.
func (p *Printer) value(name string, v any) {
	switch x := v.(type) {
	case nil:
		p.null()
	case Structure:
		p.dispatch(name, x)
	case Handle:
		p.handleValue(x)
	case fmt.Stringer:
		if isNilValue(x) {
			p.null()
			return
		}
		p.buf.Write(quoteString(x.String()))
	case bool:
		p.buf.WriteString(strconv.FormatBool(x))
	case string:
		p.buf.Write(quoteString(x))
	case []byte:
		if x == nil {
			p.null()
		} else {
			p.buf.Write(encodeBlob(x))
		}
	case float32:
		p.buf.WriteString(formatFloat(float64(x), 32))
	case float64:
		p.buf.WriteString(formatFloat(x, 64))
	default:
		p.reflectValue(name, reflect.ValueOf(v))
	}
}

func (p *Printer) reflectValue(name string, rv reflect.Value) {
	if fn, ok := p.opts.Registry.lookupValue(rv.Type()); ok {
		fn(p, rv.Interface())
		return
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		p.buf.WriteString(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		p.buf.WriteString(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32:
		p.buf.WriteString(formatFloat(rv.Float(), 32))
	case reflect.Float64:
		p.buf.WriteString(formatFloat(rv.Float(), 64))
	case reflect.Bool:
		p.buf.WriteString(strconv.FormatBool(rv.Bool()))
	case reflect.String:
		p.buf.Write(quoteString(rv.String()))
	case reflect.Pointer:
		if rv.IsNil() {
			p.null()
			return
		}
		p.value(name, rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			p.null()
			return
		}
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		writeArray(p, uint64(len(items)), items, func(p *Printer, v *any) {
			p.value(name, *v)
		})
	case reflect.Struct:
		// Extensible structures implement Structure on the pointer.
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		if s, ok := ptr.Interface().(Structure); ok {
			p.dispatch(name, s)
			return
		}
		p.fail(fmt.Errorf("%w: %s has type %s", ErrUnsupportedValue, name, rv.Type()))
		p.null()
	default:
		p.fail(fmt.Errorf("%w: %s has type %s", ErrUnsupportedValue, name, rv.Type()))
		p.null()
	}
}
