// Package enginetest provides a fake engine for tests.
package enginetest

import (
	"fmt"
	"os"
	"strings"

	"github.com/gmtgo/gmt/engine"
)

// Call is one recorded module invocation.
type Call struct {
	Module string
	Args   string
}

// Recorder is an engine.Engine that records every module call in
// order. With WriteOutputs set it also synthesizes the file a
// psconvert call would have produced, so save and preview paths can be
// exercised without the native engine.
type Recorder struct {
	Calls        []Call
	WriteOutputs bool
	Output       []byte // contents for synthesized output files
	Fail         error  // returned by every CallModule when set
	Initialized  bool
	Closed       bool
}

// Compile-time interface check.
var _ engine.Engine = (*Recorder)(nil)

// New creates an empty Recorder.
func New() *Recorder { return &Recorder{} }

// NewWriting creates a Recorder that synthesizes psconvert output
// files.
func NewWriting() *Recorder { return &Recorder{WriteOutputs: true} }

// Name implements engine.Engine.
func (r *Recorder) Name() string { return "recorder" }

// Init implements engine.Engine.
func (r *Recorder) Init() error {
	r.Initialized = true
	return nil
}

// Close implements engine.Engine.
func (r *Recorder) Close() { r.Closed = true }

// CallModule implements engine.Engine.
func (r *Recorder) CallModule(module, args string) error {
	r.Calls = append(r.Calls, Call{Module: module, Args: args})
	if r.Fail != nil {
		return r.Fail
	}
	if module == "psconvert" && r.WriteOutputs {
		return r.writeOutput(args)
	}
	return nil
}

// Last returns the most recent call, or the zero Call when none were
// made.
func (r *Recorder) Last() Call {
	if len(r.Calls) == 0 {
		return Call{}
	}
	return r.Calls[len(r.Calls)-1]
}

// ModuleCalls returns all calls to one module, in order.
func (r *Recorder) ModuleCalls(module string) []Call {
	var calls []Call
	for _, c := range r.Calls {
		if c.Module == module {
			calls = append(calls, c)
		}
	}
	return calls
}

// extensions maps engine format codes back to file extensions, for
// reconstructing the output path of a psconvert call.
var extensions = map[string]string{
	"g": "png", "f": "pdf", "j": "jpg", "b": "bmp", "e": "eps", "t": "tif",
}

// writeOutput parses the output prefix (-F) and format code (-T) out of
// the option string and writes the file the engine would have produced.
func (r *Recorder) writeOutput(args string) error {
	var prefix, code string
	for _, field := range strings.Fields(args) {
		switch {
		case strings.HasPrefix(field, "-F"):
			prefix = field[2:]
		case strings.HasPrefix(field, "-T"):
			code = field[2:]
		}
	}
	if prefix == "" || code == "" {
		return nil
	}
	ext, ok := extensions[strings.ToLower(code)]
	if !ok {
		return fmt.Errorf("enginetest: unknown format code %q", code)
	}
	data := r.Output
	if data == nil {
		data = []byte("preview")
	}
	return os.WriteFile(prefix+"."+ext, data, 0o644)
}
