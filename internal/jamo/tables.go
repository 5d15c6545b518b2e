package jamo

var (
	choseong  = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	jungseong = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	jongseong = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

var (
	initialCompose = map[[2]rune]rune{
		{'ㄱ', 'ㄱ'}: 'ㄲ',
		{'ㄷ', 'ㄷ'}: 'ㄸ',
		{'ㅂ', 'ㅂ'}: 'ㅃ',
		{'ㅈ', 'ㅈ'}: 'ㅉ',
		{'ㅅ', 'ㅅ'}: 'ㅆ',
	}
	medialCompose = map[[2]rune]rune{
		{'ㅗ', 'ㅏ'}: 'ㅘ',
		{'ㅗ', 'ㅐ'}: 'ㅙ',
		{'ㅗ', 'ㅣ'}: 'ㅚ',
		{'ㅜ', 'ㅓ'}: 'ㅝ',
		{'ㅜ', 'ㅔ'}: 'ㅞ',
		{'ㅜ', 'ㅣ'}: 'ㅟ',
		{'ㅡ', 'ㅣ'}: 'ㅢ',
	}
	// Extra merges onto already-precomposed vowels. Only reachable from
	// layouts with direct compound-vowel keys, and only when the
	// compound-double-chars mode is enabled.
	medialComposeCompat = map[[2]rune]rune{
		{'ㅘ', 'ㅣ'}: 'ㅙ',
		{'ㅝ', 'ㅣ'}: 'ㅞ',
	}
	finalCompose = map[[2]rune]rune{
		{'ㄱ', 'ㄱ'}: 'ㄲ',
		{'ㄱ', 'ㅅ'}: 'ㄳ',
		{'ㄴ', 'ㅈ'}: 'ㄵ',
		{'ㄴ', 'ㅎ'}: 'ㄶ',
		{'ㄹ', 'ㄱ'}: 'ㄺ',
		{'ㄹ', 'ㅁ'}: 'ㄻ',
		{'ㄹ', 'ㅂ'}: 'ㄼ',
		{'ㄹ', 'ㅅ'}: 'ㄽ',
		{'ㄹ', 'ㅌ'}: 'ㄾ',
		{'ㄹ', 'ㅍ'}: 'ㄿ',
		{'ㄹ', 'ㅎ'}: 'ㅀ',
		{'ㅂ', 'ㅅ'}: 'ㅄ',
		{'ㅅ', 'ㅅ'}: 'ㅆ',
	}
)

// yGlide maps a plain vowel to its y-glide counterpart. Kept as an explicit
// lookup; the distance between a vowel and its glide variant in the jamo
// index table is not a portable invariant.
var yGlide = map[rune]rune{
	'ㅏ': 'ㅑ',
	'ㅐ': 'ㅒ',
	'ㅓ': 'ㅕ',
	'ㅔ': 'ㅖ',
	'ㅗ': 'ㅛ',
	'ㅜ': 'ㅠ',
}

// rounding rewrites a pending ㅡ to a rounded base when the listed vowel
// follows, so that ㅡ+ㅏ composes toward ㅘ rather than stranding the ㅡ.
// ㅣ is deliberately absent: ㅡ+ㅣ is the ordinary diphthong ㅢ.
var rounding = map[rune]rune{
	'ㅏ': 'ㅗ',
	'ㅐ': 'ㅗ',
	'ㅓ': 'ㅜ',
	'ㅔ': 'ㅜ',
}

var (
	initialSplit = invertDouble(initialCompose)
	medialSplit  = invertDouble(medialCompose)
	finalSplit   = invertDouble(finalCompose)
)

var (
	choseongIndex  = buildIndex(choseong)
	jungseongIndex = buildIndex(jungseong)
	jongseongIndex = buildIndex(jongseong)
)

var tailToLead = map[rune]rune{
	'ㄱ': 'ㄱ',
	'ㄲ': 'ㄲ',
	'ㄳ': 'ㄱ',
	'ㄴ': 'ㄴ',
	'ㄵ': 'ㄴ',
	'ㄶ': 'ㄴ',
	'ㄷ': 'ㄷ',
	'ㄹ': 'ㄹ',
	'ㄺ': 'ㄹ',
	'ㄻ': 'ㄹ',
	'ㄼ': 'ㄹ',
	'ㄽ': 'ㄹ',
	'ㄾ': 'ㄹ',
	'ㄿ': 'ㄹ',
	'ㅀ': 'ㄹ',
	'ㅁ': 'ㅁ',
	'ㅂ': 'ㅂ',
	'ㅄ': 'ㅂ',
	'ㅅ': 'ㅅ',
	'ㅆ': 'ㅆ',
	'ㅇ': 'ㅇ',
	'ㅈ': 'ㅈ',
	'ㅊ': 'ㅊ',
	'ㅋ': 'ㅋ',
	'ㅌ': 'ㅌ',
	'ㅍ': 'ㅍ',
	'ㅎ': 'ㅎ',
}

func invertDouble(src map[[2]rune]rune) map[rune][2]rune {
	dst := make(map[rune][2]rune, len(src))
	for pair, v := range src {
		dst[v] = pair
	}
	return dst
}

func buildIndex(list []rune) map[rune]int {
	idx := make(map[rune]int, len(list))
	for i, r := range list {
		idx[r] = i
	}
	return idx
}
