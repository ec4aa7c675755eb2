package porter

// rule is one ordered rewrite: if the word ends with suffix and the guard
// holds for the stem preceding the suffix, the suffix is replaced. Rules
// within a step are tried in declared order and the first rule whose
// suffix matches and whose guard holds wins; a matching suffix with a
// failing guard falls through to the next rule.
type rule struct {
	suffix      []string
	replacement []string
	guard       func(stem []string) bool
}

// applyRules runs one step's rule table over the word.
func applyRules(word []string, rules []rule) []string {
	for _, r := range rules {
		if !hasSuffix(word, r.suffix...) {
			continue
		}
		stem := word[:len(word)-len(r.suffix)]
		if r.guard != nil && !r.guard(stem) {
			continue
		}
		return append(stem, r.replacement...)
	}
	return word
}

// measureOver builds a guard requiring the stem's measure to exceed n.
func measureOver(n int) func(stem []string) bool {
	return func(stem []string) bool {
		return measure(stem) > n
	}
}

// Step 1a: plurals. The declared order matters: "sses" must strip to "ss"
// before the bare "s" rule can see the word, and "ss" is an explicit
// identity rule so that "caress" is left alone.
var step1aRules = []rule{
	{suffix: clusters("sses"), replacement: clusters("ss")},
	{suffix: clusters("ies"), replacement: clusters("i")},
	{suffix: clusters("ss"), replacement: clusters("ss")},
	{suffix: clusters("s")},
}

// Step 1b cleanup: after "ed" or "ing" came off, undo a mangled ending.
// "at"/"bl"/"iz" grow back their "e" as whole-suffix replacements.
var step1bCleanupRules = []rule{
	{suffix: clusters("at"), replacement: clusters("ate")},
	{suffix: clusters("bl"), replacement: clusters("ble")},
	{suffix: clusters("iz"), replacement: clusters("ize")},
}

// Step 2: double suffixes, all guarded on the stem measuring over 0.
var step2Rules = []rule{
	{suffix: clusters("ational"), replacement: clusters("ate"), guard: measureOver(0)},
	{suffix: clusters("tional"), replacement: clusters("tion"), guard: measureOver(0)},
	{suffix: clusters("enci"), replacement: clusters("ence"), guard: measureOver(0)},
	{suffix: clusters("anci"), replacement: clusters("ance"), guard: measureOver(0)},
	{suffix: clusters("izer"), replacement: clusters("ize"), guard: measureOver(0)},
	{suffix: clusters("abli"), replacement: clusters("able"), guard: measureOver(0)},
	{suffix: clusters("alli"), replacement: clusters("al"), guard: measureOver(0)},
	{suffix: clusters("entli"), replacement: clusters("ent"), guard: measureOver(0)},
	{suffix: clusters("eli"), replacement: clusters("e"), guard: measureOver(0)},
	{suffix: clusters("ousli"), replacement: clusters("ous"), guard: measureOver(0)},
	{suffix: clusters("ization"), replacement: clusters("ize"), guard: measureOver(0)},
	{suffix: clusters("ation"), replacement: clusters("ate"), guard: measureOver(0)},
	{suffix: clusters("ator"), replacement: clusters("ate"), guard: measureOver(0)},
	{suffix: clusters("alism"), replacement: clusters("al"), guard: measureOver(0)},
	{suffix: clusters("iveness"), replacement: clusters("ive"), guard: measureOver(0)},
	{suffix: clusters("fulness"), replacement: clusters("ful"), guard: measureOver(0)},
	{suffix: clusters("ousness"), replacement: clusters("ous"), guard: measureOver(0)},
	{suffix: clusters("aliti"), replacement: clusters("al"), guard: measureOver(0)},
	{suffix: clusters("iviti"), replacement: clusters("ive"), guard: measureOver(0)},
	{suffix: clusters("biliti"), replacement: clusters("ble"), guard: measureOver(0)},
}

// Step 3: -ic-, -full, -ness and friends, guarded on measure over 0.
var step3Rules = []rule{
	{suffix: clusters("icate"), replacement: clusters("ic"), guard: measureOver(0)},
	{suffix: clusters("ative"), guard: measureOver(0)},
	{suffix: clusters("alize"), replacement: clusters("al"), guard: measureOver(0)},
	{suffix: clusters("iciti"), replacement: clusters("ic"), guard: measureOver(0)},
	{suffix: clusters("ical"), replacement: clusters("ic"), guard: measureOver(0)},
	{suffix: clusters("ful"), guard: measureOver(0)},
	{suffix: clusters("ness"), guard: measureOver(0)},
}

// Step 4: the remaining suffixes come off when the stem measures over 1.
// The thresholds are the algorithm's tuned constants, declared per suffix.
// "ion" additionally requires the stem to end in "s" or "t".
var step4Rules = []rule{
	{suffix: clusters("al"), guard: measureOver(1)},
	{suffix: clusters("ance"), guard: measureOver(1)},
	{suffix: clusters("ence"), guard: measureOver(1)},
	{suffix: clusters("er"), guard: measureOver(1)},
	{suffix: clusters("ic"), guard: measureOver(1)},
	{suffix: clusters("able"), guard: measureOver(1)},
	{suffix: clusters("ible"), guard: measureOver(1)},
	{suffix: clusters("ant"), guard: measureOver(1)},
	{suffix: clusters("ement"), guard: measureOver(1)},
	{suffix: clusters("ment"), guard: measureOver(1)},
	{suffix: clusters("ent"), guard: measureOver(1)},
	{suffix: clusters("ion"), guard: func(stem []string) bool {
		if measure(stem) <= 1 || len(stem) == 0 {
			return false
		}
		last := stem[len(stem)-1]
		return last == "s" || last == "t"
	}},
	{suffix: clusters("ou"), guard: measureOver(1)},
	{suffix: clusters("ism"), guard: measureOver(1)},
	{suffix: clusters("ate"), guard: measureOver(1)},
	{suffix: clusters("iti"), guard: measureOver(1)},
	{suffix: clusters("ous"), guard: measureOver(1)},
	{suffix: clusters("ive"), guard: measureOver(1)},
	{suffix: clusters("ize"), guard: measureOver(1)},
}
