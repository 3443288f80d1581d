package vkdump

import "io"

// Dump writes s and its extension chain to w as an indented JSON document.
// Nothing is written unless the whole graph serializes.
func Dump(w io.Writer, s Structure, opts ...Option) error {
	p := NewPrinter(opts...)
	if err := p.Structure(s); err != nil {
		return err
	}
	_, err := w.Write(p.Bytes())
	return err
}

// Marshal returns the Dump output for s.
func Marshal(s Structure, opts ...Option) ([]byte, error) {
	p := NewPrinter(opts...)
	if err := p.Structure(s); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}
