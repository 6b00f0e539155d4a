package llm

// CharsetPolicy is the language-purity filter applied to generated
// content. Small local models occasionally leak CJK glyphs or
// fullwidth punctuation into otherwise Turkish output; any such rune
// fails the whole question.
type CharsetPolicy struct {
	// DeniedRanges are inclusive rune ranges that must not appear.
	DeniedRanges []RuneRange

	// DeniedRunes are individual runes outside the ranges.
	DeniedRunes []rune
}

// RuneRange is an inclusive Unicode code point range.
type RuneRange struct {
	Lo, Hi rune
}

// TurkishContentPolicy rejects CJK unified ideographs, the halfwidth
// and fullwidth forms block, and the vertical-form punctuation the
// model has been seen emitting.
var TurkishContentPolicy = CharsetPolicy{
	DeniedRanges: []RuneRange{
		{Lo: 0x4E00, Hi: 0x9FFF}, // CJK unified ideographs
		{Lo: 0xFF00, Hi: 0xFFEF}, // halfwidth and fullwidth forms
	},
	DeniedRunes: []rune{'︿', '：', '，', '＜', '＞'},
}

// Violation returns the first disallowed rune in s, if any.
func (p CharsetPolicy) Violation(s string) (rune, bool) {
	for _, r := range s {
		for _, rr := range p.DeniedRanges {
			if r >= rr.Lo && r <= rr.Hi {
				return r, true
			}
		}
		for _, denied := range p.DeniedRunes {
			if r == denied {
				return r, true
			}
		}
	}
	return 0, false
}
