package compose

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hansori/internal/jamo"
)

type recordingSink struct {
	commits []string
}

func (s *recordingSink) Commit(text string) {
	s.commits = append(s.commits, text)
}

func newTestAutomaton() (*Automaton, *recordingSink) {
	sink := &recordingSink{}
	return New(sink), sink
}

func TestComposeSyllable(t *testing.T) {
	a, sink := newTestAutomaton()

	a.FeedConsonant('ㅎ')
	if got := a.Preedit(); got != "ㅎ" {
		t.Fatalf("expected preedit 'ㅎ', got %q", got)
	}

	a.FeedVowel('ㅏ')
	if got := a.Preedit(); got != "하" {
		t.Fatalf("expected preedit '하', got %q", got)
	}

	a.FeedConsonant('ㄴ')
	if got := a.Preedit(); got != "한" {
		t.Fatalf("expected preedit '한', got %q", got)
	}

	if len(sink.commits) != 0 {
		t.Fatalf("expected no commit while composing, got %v", sink.commits)
	}

	a.Flush()
	if len(sink.commits) != 1 || sink.commits[0] != "한" {
		t.Fatalf("expected flush to commit '한', got %v", sink.commits)
	}

	a.Flush()
	if len(sink.commits) != 1 {
		t.Fatalf("expected second flush to commit nothing, got %v", sink.commits)
	}
}

func TestDoubleInitial(t *testing.T) {
	a, _ := newTestAutomaton()

	a.FeedConsonant('ㄱ')
	a.FeedConsonant('ㄱ')
	if got := a.Preedit(); got != "ㄲ" {
		t.Fatalf("expected double initial to form 'ㄲ', got %q", got)
	}

	a.FeedVowel('ㅏ')
	if got := a.Preedit(); got != "까" {
		t.Fatalf("expected syllable '까', got %q", got)
	}
}

func TestDoubleFinal(t *testing.T) {
	a, sink := newTestAutomaton()

	a.FeedConsonant('ㄱ')
	a.FeedVowel('ㅏ')
	a.FeedConsonant('ㅂ')
	if got := a.Preedit(); got != "갑" {
		t.Fatalf("expected trailing consonant to produce '갑', got %q", got)
	}

	a.FeedConsonant('ㅅ')
	if got := a.Preedit(); got != "값" {
		t.Fatalf("expected double final to produce '값', got %q", got)
	}

	a.Flush()
	if len(sink.commits) != 1 || sink.commits[0] != "값" {
		t.Fatalf("expected flush to commit '값', got %v", sink.commits)
	}
}

func TestBackspace(t *testing.T) {
	a, _ := newTestAutomaton()
	a.FeedConsonant('ㄱ')
	a.FeedVowel('ㅏ')
	a.FeedConsonant('ㅂ')
	a.FeedConsonant('ㅅ')

	steps := []string{"갑", "가", "ㄱ", ""}
	for _, want := range steps {
		if !a.Backspace() {
			t.Fatalf("expected backspace to edit toward %q", want)
		}
		if got := a.Preedit(); got != want {
			t.Fatalf("expected preedit %q after backspace, got %q", want, got)
		}
	}

	if a.Backspace() {
		t.Fatalf("expected no further backspace edits once empty")
	}
}

func TestForcedRoles(t *testing.T) {
	a, sink := newTestAutomaton()

	a.FeedConsonant('ㄱ')
	a.FeedVowel('ㅏ')

	a.Feed('ㄱ', jamo.RoleTrailing)
	if got := a.Preedit(); got != "각" {
		t.Fatalf("expected trailing role to attach consonant, got %q", got)
	}

	a.Feed('ㄴ', jamo.RoleLeading)
	if len(sink.commits) != 1 || sink.commits[0] != "각" {
		t.Fatalf("expected forced leading to commit '각' first, got %v", sink.commits)
	}
	if got := a.Preedit(); got != "ㄴ" {
		t.Fatalf("expected new preedit 'ㄴ', got %q", got)
	}
}

// Single active block: commits happen exactly when no branch accepts the
// unit into the open block.
func TestCommitCount(t *testing.T) {
	a, sink := newTestAutomaton()

	for _, u := range []rune{'ㄱ', 'ㅏ', 'ㄱ', 'ㄱ'} {
		require.True(t, a.Feed(u, jamo.RoleAuto))
	}
	require.Empty(t, sink.commits, "깍 should still be one open block")
	require.Equal(t, "깍", a.Preedit())

	a.FeedConsonant('ㄱ')
	require.Equal(t, []string{"깍"}, sink.commits)
	require.Equal(t, "ㄱ", a.Preedit())
}

// Slot rank invariant over exhaustive small event sequences: a rank-2 slot
// is only ever filled on top of its rank-1 slot, and a vowel never lands
// without an initial (absent suppression).
func TestSlotRankInvariantExhaustive(t *testing.T) {
	alphabet := []rune{'ㄱ', 'ㅅ', 'ㅏ', 'ㅡ', 'ㅣ'}

	var walk func(a *Automaton, depth int)
	walk = func(a *Automaton, depth int) {
		if depth == 0 {
			return
		}
		for _, u := range alphabet {
			clone := *a
			clone.sink = nil
			clone.Feed(u, jamo.RoleAuto)
			b := &clone.buf
			if b.initial[1] != 0 && b.initial[0] == 0 {
				t.Fatalf("initial rank invariant violated after %c", u)
			}
			if b.medial[1] != 0 && b.medial[0] == 0 {
				t.Fatalf("medial rank invariant violated after %c", u)
			}
			if b.final[1] != 0 && b.final[0] == 0 {
				t.Fatalf("final rank invariant violated after %c", u)
			}
			if b.medial[0] != 0 && b.initial[0] == 0 {
				t.Fatalf("vowel composed without an initial after %c", u)
			}
			if b.final[0] != 0 && (b.initial[0] == 0 || b.medial[0] == 0) {
				t.Fatalf("final filled on an incomplete block after %c", u)
			}
			walk(&clone, depth-1)
		}
	}

	a, _ := newTestAutomaton()
	a.sink = nil
	walk(a, 4)
}

// Resyllabification: 하 + ㄴ + ㅣ commits 하 and moves the ㄴ forward, so
// the stream renders 하니 and never 한 plus a stray vowel.
func TestResyllabification(t *testing.T) {
	a, sink := newTestAutomaton()

	a.FeedConsonant('ㅎ')
	a.FeedVowel('ㅏ')
	a.FeedConsonant('ㄴ')
	a.FeedVowel('ㅣ')

	require.Equal(t, []string{"하"}, sink.commits)
	require.Equal(t, "니", a.Preedit())
	require.Equal(t, 'ㄴ', a.buf.initial[0])
	require.Equal(t, 'ㅣ', a.buf.medial[0])

	a.Flush()
	require.Equal(t, []string{"하", "니"}, sink.commits)
}

// A compound final donates only its second element.
func TestResyllabificationSplitsCompoundFinal(t *testing.T) {
	a, sink := newTestAutomaton()

	for _, u := range []rune{'ㄱ', 'ㅏ', 'ㅂ', 'ㅅ', 'ㅏ'} {
		a.Feed(u, jamo.RoleAuto)
	}
	require.Equal(t, []string{"갑"}, sink.commits)
	require.Equal(t, "사", a.Preedit())
}

// Auto initial: a lone vowel composes behind the silent consonant.
func TestAutoInitial(t *testing.T) {
	a, _ := newTestAutomaton()
	a.FeedVowel('ㅣ')
	require.Equal(t, jamo.SilentLeading, a.buf.initial[0])
	require.Equal(t, "이", a.Preedit())
}

// Suppression: the marker keeps the next vowel bare, is consumed by it,
// and is dropped by an intervening consonant.
func TestSuppressAutoInitial(t *testing.T) {
	a, _ := newTestAutomaton()

	a.SuppressNextInitial()
	a.FeedVowel('ㅏ')
	require.Equal(t, rune(0), a.buf.initial[0])
	require.Equal(t, "ㅏ", a.Preedit())

	// Marker was consumed: the next bare vowel composes normally.
	a.FeedVowel('ㅏ')
	require.Equal(t, "ㅑ", a.Preedit(), "doubled vowel glides in place even without an initial")

	a.Reset()
	a.SuppressNextInitial()
	a.FeedConsonant('ㄱ')
	a.FeedVowel('ㅏ')
	require.Equal(t, "가", a.Preedit(), "a consonant discards the marker")
}

// Diphthong precomposition: ㅡ then ㅏ rewrites the base to ㅗ so the pair
// resolves to ㅘ, identical to typing the diphthong directly.
func TestRoundingRewrite(t *testing.T) {
	a, _ := newTestAutomaton()

	a.FeedVowel('ㅡ')
	a.FeedVowel('ㅏ')
	require.Equal(t, 'ㅗ', a.buf.medial[0], "ㅡ must not be left in place")
	require.Equal(t, 'ㅏ', a.buf.medial[1])

	direct, ok := jamo.Compose(jamo.SilentLeading, 'ㅘ', 0)
	require.True(t, ok)
	require.Equal(t, string(direct), a.Preedit())
}

// An invalid final falls through to commit-and-restart without corrupting
// the open block.
func TestInvalidFinalCommits(t *testing.T) {
	a, sink := newTestAutomaton()

	a.FeedConsonant('ㄱ')
	a.FeedVowel('ㅏ')
	a.FeedConsonant('ㄸ')

	require.Equal(t, []string{"가"}, sink.commits)
	require.Equal(t, "ㄸ", a.Preedit())
	require.Equal(t, rune(0), a.buf.final[0])
	require.Equal(t, rune(0), a.buf.medial[0])
}

// 서울: the ㅜ cannot join 서, so 서 commits and the ㅜ opens the block
// that ㄹ then closes into 울.
func TestSeoulScenario(t *testing.T) {
	a, sink := newTestAutomaton()

	for _, u := range []rune{'ㅅ', 'ㅓ', 'ㅜ', 'ㄹ'} {
		a.Feed(u, jamo.RoleAuto)
	}
	require.Equal(t, []string{"서"}, sink.commits)
	require.Equal(t, "울", a.Preedit())

	a.Flush()
	require.Equal(t, []string{"서", "울"}, sink.commits)
}

// A consonant-path commit keeps its final: donation is a vowel-path rule.
func TestConsonantCommitDoesNotResyllabify(t *testing.T) {
	a, sink := newTestAutomaton()

	a.FeedConsonant('ㅎ')
	a.FeedVowel('ㅏ')
	a.FeedConsonant('ㄴ')
	a.FeedConsonant('ㅃ')

	require.Equal(t, []string{"한"}, sink.commits)
	require.Equal(t, "ㅃ", a.Preedit())
}

func TestCompoundDoubleFallback(t *testing.T) {
	a, sink := newTestAutomaton()
	a.EnableCompoundDouble(true)

	a.FeedVowel('ㅘ')
	a.FeedVowel('ㅣ')
	require.Empty(t, sink.commits)
	require.Equal(t, "왜", a.Preedit())

	a.Reset()
	a.EnableCompoundDouble(false)
	a.FeedVowel('ㅘ')
	a.FeedVowel('ㅣ')
	require.Equal(t, []string{"와"}, sink.commits)
	require.Equal(t, "이", a.Preedit())
}

func TestReset(t *testing.T) {
	a, sink := newTestAutomaton()

	a.FeedConsonant('ㄱ')
	a.FeedVowel('ㅏ')
	a.Reset()

	require.Empty(t, sink.commits, "reset must not commit")
	require.Equal(t, "", a.Preedit())

	a.FeedVowel('ㅏ')
	require.Equal(t, "아", a.Preedit())
}

func TestFeedRejectsUnknownUnit(t *testing.T) {
	a, sink := newTestAutomaton()
	require.False(t, a.Feed('x', jamo.RoleAuto))
	require.Empty(t, sink.commits)
	require.Equal(t, "", a.Preedit())
}
