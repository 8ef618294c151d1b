//go:build windows

package clipboard

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	cfUnicodeText = 13
	gmemMoveable  = 0x0002
)

var (
	user32                      = windows.NewLazySystemDLL("user32.dll")
	kernel32                    = windows.NewLazySystemDLL("kernel32.dll")
	procOpenClipboard           = user32.NewProc("OpenClipboard")
	procCloseClipboard          = user32.NewProc("CloseClipboard")
	procEmptyClipboard          = user32.NewProc("EmptyClipboard")
	procSetClipboardData        = user32.NewProc("SetClipboardData")
	procRegisterClipboardFormat = user32.NewProc("RegisterClipboardFormatW")
	procGlobalAlloc             = kernel32.NewProc("GlobalAlloc")
	procGlobalFree              = kernel32.NewProc("GlobalFree")
	procGlobalLock              = kernel32.NewProc("GlobalLock")
	procGlobalUnlock            = kernel32.NewProc("GlobalUnlock")
)

// System is the sink for the Windows clipboard.
type System struct{}

// NewSystem creates a sink for the system clipboard.
func NewSystem() (*System, error) {
	if err := user32.Load(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return &System{}, nil
}

// Write empties the clipboard and stores all payloads.
func (s *System) Write(payloads ...Payload) error {
	if len(payloads) == 0 {
		return ErrNoPayload
	}
	type item struct {
		format uintptr
		data   []byte
	}
	items := make([]item, 0, len(payloads))
	for _, p := range payloads {
		switch p.Format {
		case UnicodeText:
			items = append(items, item{format: cfUnicodeText, data: unicodeTextData(p.Text)})
		case HTML:
			if p.HTML == nil {
				return fmt.Errorf("%w: HTML payload without fragment", ErrClipboard)
			}
			f, err := htmlFormat()
			if err != nil {
				return err
			}
			items = append(items, item{format: f, data: p.HTML.Bytes()})
		default:
			return fmt.Errorf("%w: unknown payload format %v", ErrClipboard, p.Format)
		}
	}
	if r, _, err := procOpenClipboard.Call(0); r == 0 {
		tracer().Errorf("OpenClipboard failed: %v", err)
		return fmt.Errorf("%w: open: %v", ErrClipboard, err)
	}
	defer procCloseClipboard.Call()
	if r, _, err := procEmptyClipboard.Call(); r == 0 {
		tracer().Errorf("EmptyClipboard failed: %v", err)
		return fmt.Errorf("%w: empty: %v", ErrClipboard, err)
	}
	for _, it := range items {
		if err := setData(it.format, it.data); err != nil {
			return err
		}
		tracer().Debugf("clipboard: stored %d bytes in format %d", len(it.data), it.format)
	}
	return nil
}

// htmlFormat returns the id of the registered clipboard format for HTML.
func htmlFormat() (uintptr, error) {
	name, err := windows.UTF16PtrFromString("HTML Format")
	if err != nil {
		return 0, err
	}
	f, _, err := procRegisterClipboardFormat.Call(uintptr(unsafe.Pointer(name)))
	if f == 0 {
		return 0, fmt.Errorf("%w: register HTML format: %v", ErrClipboard, err)
	}
	return f, nil
}

// setData hands a copy of data to the clipboard. After a successful
// SetClipboardData the system owns the memory, so it must not be freed.
func setData(format uintptr, data []byte) error {
	h, _, err := procGlobalAlloc.Call(gmemMoveable, uintptr(len(data)))
	if h == 0 {
		return fmt.Errorf("%w: alloc %d bytes: %v", ErrClipboard, len(data), err)
	}
	p, _, err := procGlobalLock.Call(h)
	if p == 0 {
		procGlobalFree.Call(h)
		return fmt.Errorf("%w: lock: %v", ErrClipboard, err)
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(p)), len(data)), data)
	procGlobalUnlock.Call(h)
	if r, _, err := procSetClipboardData.Call(format, h); r == 0 {
		procGlobalFree.Call(h)
		return fmt.Errorf("%w: set data: %v", ErrClipboard, err)
	}
	return nil
}
