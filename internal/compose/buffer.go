package compose

import (
	"hansori/internal/jamo"
)

// Buffer is the state of one in-progress syllable block: two candidate
// initial consonants, two candidate medial vowels, two candidate final
// consonants. Rank-2 slots are only ever filled after their rank-1 slot,
// and slots hold the raw units as typed; merged values are resolved on
// read, never stored back.
type Buffer struct {
	initial [2]rune
	medial  [2]rune
	final   [2]rune
}

// Empty reports whether no slot is occupied.
func (b *Buffer) Empty() bool {
	return b.initial[0] == 0 && b.medial[0] == 0 && b.final[0] == 0
}

// EffectiveInitial resolves the initial slot pair into the consonant the
// syllable composer consumes, or zero when unset.
func (b *Buffer) EffectiveInitial() rune {
	if b.initial[1] != 0 {
		if v, ok := jamo.CombineInitial(b.initial[0], b.initial[1]); ok {
			return v
		}
	}
	return b.initial[0]
}

// EffectiveMedial resolves the medial slot pair, or zero when unset.
func (b *Buffer) EffectiveMedial() rune {
	if b.medial[1] != 0 {
		if v, ok := jamo.ResolveMedial(b.medial[0], b.medial[1]); ok {
			return v
		}
	}
	return b.medial[0]
}

// EffectiveFinal resolves the final slot pair, or zero when unset.
func (b *Buffer) EffectiveFinal() rune {
	if b.final[1] != 0 {
		if v, ok := jamo.CombineFinal(b.final[0], b.final[1]); ok {
			return v
		}
	}
	return b.final[0]
}

// Rendered returns the text this buffer stands for: the composed syllable
// when the effective triple is valid, otherwise the occupied effective jamo
// in slot order. A suppressed-initial buffer renders its bare vowel.
func (b *Buffer) Rendered() string {
	lead := b.EffectiveInitial()
	vowel := b.EffectiveMedial()
	tail := b.EffectiveFinal()

	if lead != 0 && vowel != 0 {
		if r, ok := jamo.Compose(lead, vowel, tail); ok {
			return string(r)
		}
	}

	out := make([]rune, 0, 3)
	if lead != 0 {
		out = append(out, lead)
	}
	if vowel != 0 {
		out = append(out, vowel)
	}
	if tail != 0 {
		out = append(out, tail)
	}
	return string(out)
}
