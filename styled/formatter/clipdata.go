package formatter

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedFragment is returned by ParseFragment for data which is not in
// clipboard HTML format.
var ErrMalformedFragment = errors.New("malformed HTML clipboard data")

// Header holds the description fields of clipboard HTML data. Offsets are
// byte offsets into the clipboard data.
type Header struct {
	Version       string
	StartHTML     uint64
	EndHTML       uint64
	StartFragment uint64
	EndFragment   uint64
}

// Fragment is serialized clipboard HTML data. It is immutable.
type Fragment struct {
	data   []byte
	header Header
}

// Bytes returns a copy of the complete clipboard data, header included.
func (f *Fragment) Bytes() []byte {
	return bytes.Clone(f.data)
}

// Len returns the size of the clipboard data in bytes.
func (f *Fragment) Len() int {
	return len(f.data)
}

// Header returns the description fields.
func (f *Fragment) Header() Header {
	return f.header
}

// HTML returns the HTML document, without the description.
func (f *Fragment) HTML() []byte {
	return bytes.Clone(f.data[f.header.StartHTML:f.header.EndHTML])
}

// Body returns the fragment body, i.e. the bytes between the fragment markers.
func (f *Fragment) Body() []byte {
	return bytes.Clone(f.data[f.header.StartFragment:f.header.EndFragment])
}

func (f *Fragment) String() string {
	return string(f.data)
}

// ParseFragment reads the description of clipboard HTML data and checks its
// offsets for consistency. The data is copied.
func ParseFragment(data []byte) (*Fragment, error) {
	var h Header
	rest := data
	fields := map[string]*uint64{
		"StartHTML":     &h.StartHTML,
		"EndHTML":       &h.EndHTML,
		"StartFragment": &h.StartFragment,
		"EndFragment":   &h.EndFragment,
	}
	for len(fields) > 0 || h.Version == "" {
		line, tail, ok := bytes.Cut(rest, []byte("\r\n"))
		if !ok {
			return nil, fmt.Errorf("%w: incomplete description", ErrMalformedFragment)
		}
		rest = tail
		name, value, ok := bytes.Cut(line, []byte(":"))
		if !ok {
			return nil, fmt.Errorf("%w: description line %q", ErrMalformedFragment, line)
		}
		if string(name) == "Version" {
			h.Version = string(value)
			continue
		}
		field, known := fields[string(name)]
		if !known {
			continue // optional fields like SourceURL
		}
		n, err := strconv.ParseUint(string(value), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s: %v", ErrMalformedFragment, name, err)
		}
		*field = n
		delete(fields, string(name))
	}
	size := uint64(len(data))
	if h.StartHTML > h.StartFragment || h.StartFragment > h.EndFragment ||
		h.EndFragment > h.EndHTML || h.EndHTML > size {
		return nil, fmt.Errorf("%w: inconsistent offsets %+v for %d bytes", ErrMalformedFragment, h, size)
	}
	if h.StartHTML < size-uint64(len(rest)) {
		return nil, fmt.Errorf("%w: StartHTML points into description", ErrMalformedFragment)
	}
	return &Fragment{data: bytes.Clone(data), header: h}, nil
}
