// Package compose implements the Hangul composition automaton: a
// single-writer state machine that consumes one classified phonetic unit
// per call, fills the slots of the open syllable block, and hands finished
// blocks to a commit sink in arrival order.
package compose

import (
	"github.com/npillmayer/schuko/tracing"

	"hansori/internal/jamo"
)

// tracer traces to hansori.compose .
func tracer() tracing.Trace {
	return tracing.Select("hansori.compose")
}

// Sink receives each committed block exactly once, in event order.
type Sink interface {
	Commit(text string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(string)

func (f SinkFunc) Commit(text string) { f(text) }

// Automaton owns exactly one open Buffer. Callers feed events strictly in
// arrival order; every transition either mutates the open buffer or commits
// it and opens the next one, never both more than once.
type Automaton struct {
	buf            Buffer
	sink           Sink
	compoundDouble bool
	suppressLead   bool
}

func New(sink Sink) *Automaton {
	return &Automaton{sink: sink}
}

// EnableCompoundDouble toggles the fallback merge onto precomposed vowels
// (ㅘ+ㅣ→ㅙ and friends). Read-only to the transition logic.
func (a *Automaton) EnableCompoundDouble(on bool) {
	a.compoundDouble = on
}

// Feed dispatches a unit by its classified role. It reports false for a
// unit outside the supported alphabet, which the caller should treat as a
// Reset per the stray-input policy.
func (a *Automaton) Feed(u rune, role jamo.Role) bool {
	if jamo.IsVowel(u) {
		a.FeedVowel(u)
		return true
	}
	if jamo.IsConsonant(u) {
		a.feedConsonant(u, role)
		return true
	}
	return false
}

// FeedConsonant accepts a consonant unit with no placement hint.
func (a *Automaton) FeedConsonant(u rune) {
	a.feedConsonant(u, jamo.RoleAuto)
}

// feedConsonant walks the ordered decision chain for consonant events.
// First match wins; later branches assume the earlier ones failed.
func (a *Automaton) feedConsonant(u rune, role jamo.Role) {
	a.suppressLead = false
	b := &a.buf

	if role == jamo.RoleLeading {
		a.commit()
		a.buf.initial[0] = u
		return
	}
	if role == jamo.RoleTrailing {
		a.attachTrailing(u)
		return
	}

	switch {
	case b.initial[0] == 0 && b.medial[0] == 0:
		b.initial[0] = u
	case b.medial[0] == 0 && b.initial[1] == 0 && canCombineInitial(b.initial[0], u):
		b.initial[1] = u
	case b.medial[0] != 0 && b.final[0] == 0 && composable(b.EffectiveInitial(), b.EffectiveMedial(), u):
		b.final[0] = u
	case b.final[0] != 0 && b.final[1] == 0 && validFinalCluster(b, u):
		b.final[1] = u
	default:
		a.commit()
		a.buf.initial[0] = u
	}
}

// attachTrailing handles a consonant carrying an explicit trailing hint
// from a three-set layout: it may only land in a final slot.
func (a *Automaton) attachTrailing(u rune) {
	b := &a.buf
	switch {
	case b.medial[0] != 0 && b.final[0] == 0 && composable(b.EffectiveInitial(), b.EffectiveMedial(), u):
		b.final[0] = u
	case b.final[0] != 0 && b.final[1] == 0 && validFinalCluster(b, u):
		b.final[1] = u
	default:
		a.commit()
		a.buf.initial[0] = u
	}
}

// FeedVowel accepts a medial vowel unit.
func (a *Automaton) FeedVowel(u rune) {
	b := &a.buf

	if b.medial[0] == 0 {
		if b.initial[0] == 0 {
			if a.suppressLead {
				a.suppressLead = false
			} else {
				b.initial[0] = jamo.SilentLeading
			}
		}
		b.medial[0] = u
		return
	}

	if b.medial[1] == 0 && b.final[0] == 0 {
		// Ordered glide rules: rewrite-in-place, rounding fill,
		// standard diphthong fill, then the mode-gated compat merge.
		if b.medial[0] == u {
			if g, ok := jamo.Glide(u); ok {
				b.medial[0] = g
				return
			}
		}
		if base, ok := jamo.Rounding(b.medial[0], u); ok {
			b.medial[0] = base
			b.medial[1] = u
			return
		}
		if _, ok := jamo.CombineMedial(b.medial[0], u); ok {
			b.medial[1] = u
			return
		}
		if a.compoundDouble {
			if _, ok := jamo.CombineMedialCompat(b.medial[0], u); ok {
				b.medial[1] = u
				return
			}
		}
	}

	// Commit with resyllabification: a trailing consonant migrates to lead
	// the block this vowel opens. The donated slot is cleared before the
	// old block renders.
	var donor rune
	switch {
	case b.final[1] != 0:
		donor = b.final[1]
		b.final[1] = 0
	case b.final[0] != 0:
		donor = b.final[0]
		b.final[0] = 0
	}
	a.commit()

	if donor != 0 {
		a.buf.initial[0] = jamo.LeadFromTail(donor)
	} else {
		a.buf.initial[0] = jamo.SilentLeading
	}
	a.buf.medial[0] = u
}

// Reset discards the open block without committing it.
func (a *Automaton) Reset() {
	if !a.buf.Empty() {
		tracer().Debugf("discarding open block %q", a.buf.Rendered())
	}
	a.buf = Buffer{}
	a.suppressLead = false
}

// SuppressNextInitial opens a fresh block with a sticky marker that keeps
// the next vowel from auto-inserting the silent initial. The marker is
// consumed by that vowel, or dropped by any earlier consonant.
func (a *Automaton) SuppressNextInitial() {
	a.Flush()
	a.suppressLead = true
}

// Flush commits whatever is open. Needed by callers on mode switches,
// passthrough keys, and shutdown.
func (a *Automaton) Flush() {
	a.commit()
}

// Backspace removes the most recent unit from the open block, splitting a
// precomposed compound in place before clearing the slot. It reports false
// when the block is already empty.
func (a *Automaton) Backspace() bool {
	b := &a.buf
	switch {
	case b.final[1] != 0:
		b.final[1] = 0
	case b.final[0] != 0:
		if first, _, ok := jamo.SplitFinal(b.final[0]); ok {
			b.final[0] = first
		} else {
			b.final[0] = 0
		}
	case b.medial[1] != 0:
		b.medial[1] = 0
	case b.medial[0] != 0:
		if first, _, ok := jamo.SplitMedial(b.medial[0]); ok {
			b.medial[0] = first
		} else {
			b.medial[0] = 0
			if b.initial[0] == jamo.SilentLeading && b.initial[1] == 0 {
				b.initial[0] = 0
			}
		}
	case b.initial[1] != 0:
		b.initial[1] = 0
	case b.initial[0] != 0:
		if first, _, ok := jamo.SplitInitial(b.initial[0]); ok {
			b.initial[0] = first
		} else {
			b.initial[0] = 0
		}
	default:
		return false
	}
	return true
}

// Preedit renders the open block for preview.
func (a *Automaton) Preedit() string {
	return a.buf.Rendered()
}

// commit hands the open block to the sink and opens an empty one. An empty
// block commits nothing, so the sink sees exactly one call per real block.
func (a *Automaton) commit() {
	if a.buf.Empty() {
		return
	}
	text := a.buf.Rendered()
	a.buf = Buffer{}
	tracer().Debugf("commit %q", text)
	if a.sink != nil && text != "" {
		a.sink.Commit(text)
	}
}

func canCombineInitial(a, b rune) bool {
	_, ok := jamo.CombineInitial(a, b)
	return ok
}

// composable is the lookahead guard for opening a final slot: the block
// must still be a valid syllable with u attached.
func composable(lead, vowel, tail rune) bool {
	_, ok := jamo.Compose(lead, vowel, tail)
	return ok
}

func validFinalCluster(b *Buffer, u rune) bool {
	merged, ok := jamo.CombineFinal(b.final[0], u)
	if !ok {
		return false
	}
	return composable(b.EffectiveInitial(), b.EffectiveMedial(), merged)
}
