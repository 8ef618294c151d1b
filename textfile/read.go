package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/guiguan/caster"
	"github.com/npillmayer/cclip"
)

// DefaultStep is the default size by which the input buffer grows.
const DefaultStep = 4096

// MaxInputSize is the maximum number of input bytes accepted.
const MaxInputSize = cclip.MaxTextLen

// Progress is broadcast to subscribers of a Loader whenever input has been read.
type Progress struct {
	Bytes int64 // total number of bytes read so far
	Done  bool  // input is complete
}

// Loader reads input completely into memory.
type Loader struct {
	step  int
	limit int64
	cast  *caster.Caster // broadcaster for reading progress
}

// NewLoader creates a loader, growing its buffer in steps of step bytes.
// A step ≤ 0 selects DefaultStep.
func NewLoader(step int) *Loader {
	if step <= 0 {
		step = DefaultStep
	}
	return &Loader{
		step:  step,
		limit: MaxInputSize,
		cast:  caster.New(nil),
	}
}

// Subscribe returns a channel receiving the reading progress of the loader.
// The channel is closed after the input has been read. Subscriptions have to
// happen before Read is called.
func (l *Loader) Subscribe(capacity uint) <-chan Progress {
	progress := make(chan Progress, capacity)
	sub, ok := l.cast.Sub(context.Background(), capacity)
	if !ok {
		close(progress)
		return progress
	}
	go func() {
		defer close(progress)
		for m := range sub {
			if p, ok := m.(Progress); ok {
				progress <- p
			}
		}
	}()
	return progress
}

// Read reads r until EOF. Input exceeding MaxInputSize results in
// cclip.ErrAllocationFailed. A loader may be used for a single read only.
func (l *Loader) Read(r io.Reader) ([]byte, error) {
	defer l.cast.Close()
	var buf []byte
	for {
		if int64(len(buf)) > l.limit {
			tracer().Errorf("input exceeds %d bytes", l.limit)
			return nil, fmt.Errorf("%w: input exceeds %d bytes", cclip.ErrAllocationFailed, l.limit)
		}
		if len(buf) == cap(buf) {
			grown := make([]byte, len(buf), nextCapacity(int64(cap(buf)), int64(l.step), l.limit))
			copy(grown, buf)
			buf = grown
		}
		n, err := r.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if n > 0 {
			l.cast.Pub(Progress{Bytes: int64(len(buf))})
		}
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			tracer().Errorf("reading input: %v", err)
			return nil, err
		}
	}
	tracer().Debugf("read %d bytes of input", len(buf))
	l.cast.Pub(Progress{Bytes: int64(len(buf)), Done: true})
	return buf, nil
}

// nextCapacity grows a buffer geometrically, by at least step bytes. It never
// exceeds limit+1, which is enough to detect input beyond the limit.
func nextCapacity(capacity, step, limit int64) int64 {
	return min(max(2*capacity, capacity+step), limit+1)
}

// Read reads r completely, growing its buffer in steps of step bytes.
func Read(r io.Reader, step int) ([]byte, error) {
	return NewLoader(step).Read(r)
}
