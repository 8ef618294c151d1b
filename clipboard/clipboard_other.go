//go:build !windows

package clipboard

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// tool is a command line program storing its standard input in the clipboard.
type tool struct {
	name     string
	textArgs []string
	htmlArgs []string // nil if the tool does not support MIME types
}

var (
	wlCopy = tool{name: "wl-copy", htmlArgs: []string{"--type", "text/html"}}
	xclip  = tool{name: "xclip", textArgs: []string{"-selection", "clipboard"}, htmlArgs: []string{"-selection", "clipboard", "-t", "text/html"}}
	pbcopy = tool{name: "pbcopy"}
)

// System is the sink for the system clipboard, using a clipboard tool.
type System struct {
	tool tool
	path string
}

// NewSystem finds a clipboard tool for the current environment. If none is
// installed, ErrClipboard is returned.
func NewSystem() (*System, error) {
	var candidates []tool
	switch {
	case runtime.GOOS == "darwin":
		candidates = []tool{pbcopy}
	case os.Getenv("WAYLAND_DISPLAY") != "":
		candidates = []tool{wlCopy, xclip}
	default:
		candidates = []tool{xclip, wlCopy}
	}
	for _, t := range candidates {
		if path, err := exec.LookPath(t.name); err == nil {
			tracer().Debugf("clipboard: using %s", path)
			return &System{tool: t, path: path}, nil
		}
	}
	names := make([]string, len(candidates))
	for i, t := range candidates {
		names[i] = t.name
	}
	return nil, fmt.Errorf("%w: none of %s found", ErrClipboard, strings.Join(names, ", "))
}

// Write stores a single payload: the HTML document, if present and supported by
// the tool, the plain text otherwise.
func (s *System) Write(payloads ...Payload) error {
	if len(payloads) == 0 {
		return ErrNoPayload
	}
	p, args := payloads[0], s.tool.textArgs
	for _, q := range payloads {
		if q.Format == HTML && s.tool.htmlArgs != nil {
			p, args = q, s.tool.htmlArgs
			break
		} else if q.Format == UnicodeText {
			p = q
		}
	}
	if p.Format == HTML && s.tool.htmlArgs == nil {
		return fmt.Errorf("%w: %s does not support HTML", ErrClipboard, s.tool.name)
	}
	data, err := utf8Data(p)
	if err != nil {
		return err
	}
	cmd := exec.Command(s.path, args...)
	cmd.Stdin = bytes.NewReader(data)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		tracer().Errorf("clipboard: %s failed: %v", s.tool.name, err)
		return fmt.Errorf("%w: %s: %v: %s", ErrClipboard, s.tool.name, err,
			strings.TrimSpace(stderr.String()))
	}
	tracer().Debugf("clipboard: stored %d bytes of %v", len(data), p.Format)
	return nil
}
