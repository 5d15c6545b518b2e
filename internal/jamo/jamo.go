// Package jamo holds the Hangul phonetic-unit tables and the pure merge,
// split, and syllable-composition primitives consumed by the composition
// automaton. All predicates are total; "no merge" and "not composable" are
// ordinary negative results.
package jamo

// SilentLeading is the null initial consonant auto-inserted in front of a
// bare vowel so that it composes as a full syllable (ㅣ alone renders 이).
const SilentLeading = 'ㅇ'

// Role is a placement hint attached to a key by a layout. RoleAuto lets the
// automaton decide; three-set layouts carry explicit leading/trailing keys.
type Role int

const (
	RoleAuto Role = iota
	RoleLeading
	RoleTrailing
)

// IsConsonant reports whether r can occupy a consonant slot (initial or
// final position).
func IsConsonant(r rune) bool {
	if _, ok := choseongIndex[r]; ok {
		return true
	}
	_, ok := jongseongIndex[r]
	return ok && r != 0
}

// IsVowel reports whether r is a medial vowel unit.
func IsVowel(r rune) bool {
	_, ok := jungseongIndex[r]
	return ok
}

// IsInitialCapable reports whether r may serve as an initial consonant.
func IsInitialCapable(r rune) bool {
	_, ok := choseongIndex[r]
	return ok
}

// IsFinalCapable reports whether r may serve as a final consonant. The
// tense consonants ㄸ, ㅃ, ㅉ are initial-only and report false.
func IsFinalCapable(r rune) bool {
	if r == 0 {
		return false
	}
	_, ok := jongseongIndex[r]
	return ok
}

// CombineInitial merges two consonants into a compound (tense) initial.
func CombineInitial(a, b rune) (rune, bool) {
	v, ok := initialCompose[[2]rune{a, b}]
	return v, ok
}

// CombineMedial merges two vowels into a standard diphthong.
func CombineMedial(a, b rune) (rune, bool) {
	v, ok := medialCompose[[2]rune{a, b}]
	return v, ok
}

// CombineMedialCompat merges onto an already-precomposed vowel. Layouts with
// direct compound-vowel keys reach these pairs; the automaton gates them on
// its compound-double-chars mode.
func CombineMedialCompat(a, b rune) (rune, bool) {
	v, ok := medialComposeCompat[[2]rune{a, b}]
	return v, ok
}

// CombineFinal merges two consonants into a compound final cluster.
func CombineFinal(a, b rune) (rune, bool) {
	v, ok := finalCompose[[2]rune{a, b}]
	return v, ok
}

// ResolveMedial returns the effective vowel for a filled slot pair,
// consulting the standard table first, then the compat extensions.
func ResolveMedial(a, b rune) (rune, bool) {
	if v, ok := medialCompose[[2]rune{a, b}]; ok {
		return v, true
	}
	v, ok := medialComposeCompat[[2]rune{a, b}]
	return v, ok
}

func SplitInitial(r rune) (rune, rune, bool) {
	pair, ok := initialSplit[r]
	return pair[0], pair[1], ok
}

func SplitMedial(r rune) (rune, rune, bool) {
	pair, ok := medialSplit[r]
	return pair[0], pair[1], ok
}

func SplitFinal(r rune) (rune, rune, bool) {
	pair, ok := finalSplit[r]
	return pair[0], pair[1], ok
}

// Glide returns the y-glide counterpart of a plain vowel.
func Glide(r rune) (rune, bool) {
	v, ok := yGlide[r]
	return v, ok
}

// Rounding rewrites a pending cur toward a rounded base so that next can
// join it as a diphthong. Only ㅡ currently rounds.
func Rounding(cur, next rune) (rune, bool) {
	if cur != 'ㅡ' {
		return 0, false
	}
	v, ok := rounding[next]
	return v, ok
}

// LeadFromTail converts a final consonant into the unit that starts the next
// syllable when resyllabification donates it forward.
func LeadFromTail(t rune) rune {
	if lead, ok := tailToLead[t]; ok {
		return lead
	}
	return t
}

const (
	baseCodePoint = 0xAC00
	medialCount   = 21
	trailingCount = 28
)

// Compose renders an (initial, medial, final) triple into a precomposed
// syllable. A zero tail means no final consonant. The boolean result is the
// syllable-validity rule: every slot value must be a legal occupant.
func Compose(lead, vowel, tail rune) (rune, bool) {
	li, ok := choseongIndex[lead]
	if !ok {
		return 0, false
	}
	mi, ok := jungseongIndex[vowel]
	if !ok {
		return 0, false
	}
	ti := 0
	if tail != 0 {
		ti, ok = jongseongIndex[tail]
		if !ok {
			return 0, false
		}
	}
	return rune(baseCodePoint + (li*medialCount+mi)*trailingCount + ti), true
}
