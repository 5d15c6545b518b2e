// Package layout maps typed key runes to the symbols the engine acts on:
// phonetic units with a placement hint, literal text, passthrough keys, and
// the two composition control events.
package layout

import (
	"fmt"
	"sort"

	"hansori/internal/jamo"
)

type SymbolKind int

const (
	SymbolPassthrough SymbolKind = iota
	SymbolText
	SymbolJamo
	SymbolControl
)

type Control int

const (
	ControlReset Control = iota
	ControlSuppressInitial
)

type Symbol struct {
	Kind         SymbolKind
	Text         string
	Jamo         rune
	Role         jamo.Role
	Control      Control
	CommitBefore bool
}

type Layout struct {
	name    string
	mapping map[rune]*Symbol
}

func NewLayout(name string) *Layout {
	return &Layout{name: name, mapping: make(map[rune]*Symbol)}
}

func (l *Layout) Name() string { return l.name }

// Translate resolves a key rune. A nil result means the key is outside the
// layout's alphabet.
func (l *Layout) Translate(key rune) *Symbol {
	if l == nil {
		return nil
	}
	return l.mapping[key]
}

// ApplyOverride rebinds a single key, for user keymap customization.
func (l *Layout) ApplyOverride(key rune, symbol *Symbol) {
	if l == nil {
		return
	}
	l.mapping[key] = symbol
}

func makeJamo(value rune) *Symbol {
	return &Symbol{Kind: SymbolJamo, Jamo: value, Role: jamo.RoleAuto}
}

func makeJamoRole(value rune, role jamo.Role) *Symbol {
	return &Symbol{Kind: SymbolJamo, Jamo: value, Role: role}
}

func makePassthrough() *Symbol {
	return &Symbol{Kind: SymbolPassthrough, CommitBefore: true}
}

func makeControl(c Control) *Symbol {
	return &Symbol{Kind: SymbolControl, Control: c}
}

func addPassthroughRow(mapping map[rune]*Symbol, keys string) {
	passthrough := makePassthrough()
	for _, key := range keys {
		mapping[key] = passthrough
	}
}

func buildDubeolsik() *Layout {
	l := NewLayout("dubeolsik")
	m := l.mapping

	consonants := map[rune]rune{
		'r': 'ㄱ', 'R': 'ㄲ',
		's': 'ㄴ', 'S': 'ㄴ',
		'e': 'ㄷ', 'E': 'ㄸ',
		'f': 'ㄹ', 'F': 'ㄹ',
		'a': 'ㅁ', 'A': 'ㅁ',
		'q': 'ㅂ', 'Q': 'ㅃ',
		't': 'ㅅ', 'T': 'ㅆ',
		'd': 'ㅇ', 'D': 'ㅇ',
		'w': 'ㅈ', 'W': 'ㅉ',
		'c': 'ㅊ', 'C': 'ㅊ',
		'z': 'ㅋ', 'Z': 'ㅋ',
		'x': 'ㅌ', 'X': 'ㅌ',
		'v': 'ㅍ', 'V': 'ㅍ',
		'g': 'ㅎ', 'G': 'ㅎ',
	}
	vowels := map[rune]rune{
		'k': 'ㅏ', 'K': 'ㅏ',
		'o': 'ㅐ', 'O': 'ㅒ',
		'i': 'ㅑ', 'I': 'ㅑ',
		'j': 'ㅓ', 'J': 'ㅓ',
		'p': 'ㅔ', 'P': 'ㅖ',
		'u': 'ㅕ', 'U': 'ㅕ',
		'h': 'ㅗ', 'H': 'ㅗ',
		'y': 'ㅛ', 'Y': 'ㅛ',
		'n': 'ㅜ', 'N': 'ㅜ',
		'b': 'ㅠ', 'B': 'ㅠ',
		'm': 'ㅡ', 'M': 'ㅡ',
		'l': 'ㅣ', 'L': 'ㅣ',
	}
	for key, value := range consonants {
		m[key] = makeJamo(value)
	}
	for key, value := range vowels {
		m[key] = makeJamo(value)
	}

	addPassthroughRow(m, "1234567890-=[]\\`;',./ \t\n!@#$%^&*()_+{}|:\"<>?~")
	return l
}

func buildSebeolsik390() *Layout {
	l := NewLayout("sebeolsik-390")
	m := l.mapping

	addPassthroughRow(m, "1234567890-= \t\n")

	m['q'] = makeJamo('ㅂ')
	m['Q'] = makeJamo('ㅃ')
	m['w'] = makeJamo('ㅈ')
	m['W'] = makeJamo('ㅉ')
	m['e'] = makeJamo('ㄷ')
	m['E'] = makeJamo('ㄸ')
	m['r'] = makeJamo('ㄱ')
	m['R'] = makeJamo('ㄲ')
	m['t'] = makeJamo('ㅅ')
	m['T'] = makeJamo('ㅆ')
	m['y'] = makeJamo('ㅛ')
	m['Y'] = makeJamoRole('ㅅ', jamo.RoleTrailing)
	m['u'] = makeJamo('ㅕ')
	m['U'] = makeJamoRole('ㅈ', jamo.RoleTrailing)
	m['i'] = makeJamo('ㅑ')
	m['I'] = makeJamoRole('ㅊ', jamo.RoleTrailing)
	m['o'] = makeJamo('ㅐ')
	m['O'] = makeJamoRole('ㅋ', jamo.RoleTrailing)
	m['p'] = makeJamo('ㅔ')
	m['P'] = makeJamoRole('ㅌ', jamo.RoleTrailing)
	m['['] = makeJamo('ㅒ')
	m['{'] = makeJamoRole('ㅍ', jamo.RoleTrailing)
	m[']'] = makeJamo('ㅖ')
	m['}'] = makeJamoRole('ㅎ', jamo.RoleTrailing)
	m['\\'] = makeJamo('ㅢ')
	m['|'] = makeControl(ControlSuppressInitial)

	m['a'] = makeJamo('ㅁ')
	m['A'] = makeJamo('ㅁ')
	m['s'] = makeJamo('ㄴ')
	m['S'] = makeJamo('ㄴ')
	m['d'] = makeJamo('ㅇ')
	m['D'] = makeJamo('ㅇ')
	m['f'] = makeJamo('ㄹ')
	m['F'] = makeJamo('ㄹ')
	m['g'] = makeJamo('ㅎ')
	m['G'] = makeJamo('ㅎ')
	m['h'] = makeJamo('ㅗ')
	m['H'] = makeJamoRole('ㄱ', jamo.RoleTrailing)
	m['j'] = makeJamo('ㅓ')
	m['J'] = makeJamoRole('ㄴ', jamo.RoleTrailing)
	m['k'] = makeJamo('ㅏ')
	m['K'] = makeJamoRole('ㄷ', jamo.RoleTrailing)
	m['l'] = makeJamo('ㅣ')
	m['L'] = makeJamoRole('ㄹ', jamo.RoleTrailing)
	m[';'] = makeJamo('ㅠ')
	m[':'] = makeJamoRole('ㅁ', jamo.RoleTrailing)
	m['\''] = makeJamo('ㅜ')
	m['"'] = makeJamoRole('ㅂ', jamo.RoleTrailing)

	m['z'] = makeJamo('ㅋ')
	m['Z'] = makeJamo('ㅋ')
	m['x'] = makeJamo('ㅌ')
	m['X'] = makeJamo('ㅌ')
	m['c'] = makeJamo('ㅊ')
	m['C'] = makeJamo('ㅊ')
	m['v'] = makeJamo('ㅍ')
	m['V'] = makeJamo('ㅍ')
	m['b'] = makeJamo('ㅠ')
	m['B'] = makeJamoRole('ㅇ', jamo.RoleTrailing)
	m['n'] = makeJamo('ㅜ')
	m['N'] = makeJamoRole('ㅅ', jamo.RoleTrailing)
	m['m'] = makeJamo('ㅡ')
	m['M'] = makeJamoRole('ㅎ', jamo.RoleTrailing)

	m[','] = makeJamo('ㅘ')
	m['<'] = makeJamo('ㅙ')
	m['.'] = makeJamo('ㅝ')
	m['>'] = makeJamo('ㅞ')
	m['/'] = makeJamo('ㅟ')
	m['?'] = makePassthrough()

	return l
}

func AvailableLayouts() []string {
	names := []string{"dubeolsik", "sebeolsik-390"}
	sort.Strings(names)
	return names
}

func Load(name string) (*Layout, error) {
	switch name {
	case "", "dubeolsik":
		return buildDubeolsik(), nil
	case "sebeolsik-390", "sebeolsik":
		return buildSebeolsik390(), nil
	default:
		return nil, fmt.Errorf("unknown layout: %s", name)
	}
}
