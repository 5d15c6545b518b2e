// Package engine wires key input, the active layout, the composition
// automaton, and the output emitter into one synchronous session. Exactly
// one key event is processed per call, strictly in arrival order.
package engine

import (
	"github.com/npillmayer/schuko/tracing"

	"hansori/internal/compose"
	"hansori/internal/emitter"
	"hansori/internal/layout"
	"hansori/internal/types"
)

// tracer traces to hansori.engine .
func tracer() tracing.Trace {
	return tracing.Select("hansori.engine")
}

type Engine struct {
	out     emitter.Output
	layout  *layout.Layout
	aut     *compose.Automaton
	mode    types.InputMode
	preedit string
	sinkErr error
}

// Options configures a session.
type Options struct {
	Mode           types.InputMode
	CompoundDouble bool
}

func New(lay *layout.Layout, out emitter.Output, opts Options) *Engine {
	e := &Engine{out: out, layout: lay, mode: opts.Mode}
	e.aut = compose.New(compose.SinkFunc(e.commitBlock))
	e.aut.EnableCompoundDouble(opts.CompoundDouble)
	return e
}

func (e *Engine) Mode() types.InputMode { return e.mode }

func (e *Engine) Preedit() string { return e.preedit }

// HandleKey processes one typed rune.
func (e *Engine) HandleKey(key rune) error {
	if e.mode == types.ModeLatin {
		return e.out.SendText(string(key))
	}

	sym := e.layout.Translate(key)
	if sym == nil {
		// Out-of-alphabet input: discard the open block rather than
		// guessing a slot for it, then let the raw rune through.
		e.aut.Reset()
		if err := e.replacePreedit(""); err != nil {
			return err
		}
		return e.out.SendText(string(key))
	}

	switch sym.Kind {
	case layout.SymbolPassthrough:
		if sym.CommitBefore {
			if err := e.commitPreedit(); err != nil {
				return err
			}
		}
		return e.out.SendText(string(key))
	case layout.SymbolText:
		if sym.CommitBefore {
			if err := e.commitPreedit(); err != nil {
				return err
			}
		}
		return e.out.SendText(sym.Text)
	case layout.SymbolJamo:
		e.aut.Feed(sym.Jamo, sym.Role)
		if err := e.takeSinkErr(); err != nil {
			return err
		}
		return e.refreshPreedit()
	case layout.SymbolControl:
		return e.handleControl(sym.Control)
	default:
		return nil
	}
}

func (e *Engine) handleControl(c layout.Control) error {
	switch c {
	case layout.ControlReset:
		e.aut.Reset()
		return e.replacePreedit("")
	case layout.ControlSuppressInitial:
		e.aut.SuppressNextInitial()
		if err := e.takeSinkErr(); err != nil {
			return err
		}
		return e.refreshPreedit()
	default:
		return nil
	}
}

// Backspace edits the open block. It reports false when nothing was open,
// so the frontend can delete already-committed text instead.
func (e *Engine) Backspace() (bool, error) {
	if e.mode == types.ModeLatin {
		return false, nil
	}
	if !e.aut.Backspace() {
		return false, nil
	}
	return true, e.refreshPreedit()
}

// ToggleMode flips between Hangul composition and Latin passthrough,
// committing any open block first.
func (e *Engine) ToggleMode() error {
	if err := e.commitPreedit(); err != nil {
		return err
	}
	if e.mode == types.ModeHangul {
		e.mode = types.ModeLatin
	} else {
		e.mode = types.ModeHangul
	}
	tracer().Infof("input mode now %s", e.mode)
	return nil
}

// Flush commits the open block and flushes the emitter.
func (e *Engine) Flush() error {
	if err := e.commitPreedit(); err != nil {
		return err
	}
	return e.out.Flush()
}

// commitBlock is the automaton's sink: retract the preedit, then emit the
// finished block.
func (e *Engine) commitBlock(text string) {
	if err := e.replacePreedit(""); err != nil {
		e.keepSinkErr(err)
		return
	}
	if err := e.out.SendText(text); err != nil {
		e.keepSinkErr(err)
	}
}

func (e *Engine) commitPreedit() error {
	e.aut.Flush()
	if err := e.takeSinkErr(); err != nil {
		return err
	}
	return e.replacePreedit("")
}

func (e *Engine) refreshPreedit() error {
	return e.replacePreedit(e.aut.Preedit())
}

func (e *Engine) replacePreedit(newText string) error {
	if newText == e.preedit {
		return nil
	}
	if e.preedit != "" {
		if err := e.out.SendBackspace(countRunes(e.preedit)); err != nil {
			return err
		}
	}
	if newText != "" {
		if err := e.out.SendText(newText); err != nil {
			return err
		}
	}
	e.preedit = newText
	return nil
}

func (e *Engine) keepSinkErr(err error) {
	if e.sinkErr == nil {
		e.sinkErr = err
	}
}

func (e *Engine) takeSinkErr() error {
	err := e.sinkErr
	e.sinkErr = nil
	return err
}

func countRunes(s string) int {
	count := 0
	for range s {
		count++
	}
	return count
}
