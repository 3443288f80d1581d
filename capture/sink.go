package capture

import (
	"io"
	"sync"

	"github.com/NOT-REAL-GAMES/vkdump"
)

// StreamSink shares one output stream between goroutines. Serialization
// happens outside the lock; only the finished document is written under it,
// so documents never interleave.
type StreamSink struct {
	mu   sync.Mutex
	w    io.Writer
	opts []vkdump.Option
}

func NewStreamSink(w io.Writer, opts ...vkdump.Option) *StreamSink {
	return &StreamSink{w: w, opts: opts}
}

// Write writes an already serialized document.
func (s *StreamSink) Write(doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.w.Write(doc)
	return err
}

func (s *StreamSink) WriteStructure(st vkdump.Structure) error {
	doc, err := vkdump.Marshal(st, s.opts...)
	if err != nil {
		return err
	}
	return s.Write(doc)
}

func (s *StreamSink) WriteCall(c *vkdump.Call) error {
	doc, err := vkdump.MarshalCall(c, s.opts...)
	if err != nil {
		return err
	}
	return s.Write(doc)
}
