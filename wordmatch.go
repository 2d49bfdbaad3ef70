package abbrevgo

import (
	"strings"
)

// patAtom is one unit of a segmented pattern: a word prefix, a camel
// fragment, or a digit run. Text is lowercase with any '*' retained.
type patAtom struct {
	text    string
	wild    bool
	numeric bool
}

type span struct{ start, end int }

// testerSpans returns the token spans of a tester string (tokens are
// separated by single spaces; the tester carries a leading space).
func testerSpans(tester string) []span {
	var words []span
	start := -1
	for i := 0; i < len(tester); i++ {
		if tester[i] == ' ' {
			if start >= 0 {
				words = append(words, span{start, i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, span{start, len(tester)})
	}
	return words
}

// Unit links: how a literal attaches to the previous one. Star units
// attach anywhere at or after the previous end, with the gap counting
// as wildcard-covered rather than skipped.
const (
	linkFirst = iota // any word start
	linkWord         // a word start strictly after the previous end
	linkCamel        // adjacent continuation, else a later word start
)

type matchUnit struct {
	text string
	link int
	star bool
	atom int // index of the owning atom
}

// flattenAtoms lowers atoms into matchUnits. A wildcard atom becomes
// its literal segments: the first keeps the atom's link, the rest
// attach as star units.
func flattenAtoms(atoms []patAtom, camel bool) []matchUnit {
	units := make([]matchUnit, 0, len(atoms))
	for i, a := range atoms {
		link := linkWord
		if i == 0 {
			link = linkFirst
		} else if camel {
			link = linkCamel
		}
		if !a.wild {
			units = append(units, matchUnit{text: a.text, link: link, atom: i})
			continue
		}
		for k, seg := range strings.Split(a.text, "*") {
			if k == 0 {
				units = append(units, matchUnit{text: seg, link: link, atom: i})
			} else {
				units = append(units, matchUnit{text: seg, star: true, atom: i})
			}
		}
	}
	return units
}

type placement struct {
	from, to int
	star     bool // gap between the previous placement and from is wildcard-covered
}

type walkResult struct {
	ok              bool
	partials        int      // atoms that matched a prefix only, or used '*'
	interiorSkipped []string // untouched words before the last touched one
	trailingSkipped []string // untouched words after the last touched one
	allFull         bool     // every entered word consumed exactly start to end
}

func (r *walkResult) skippedAllStops(isStop func(string) bool) bool {
	for _, w := range r.interiorSkipped {
		if !isStop(w) {
			return false
		}
	}
	for _, w := range r.trailingSkipped {
		if !isStop(w) {
			return false
		}
	}
	return true
}

func (r *walkResult) anySkipped() bool {
	return len(r.interiorSkipped) > 0 || len(r.trailingSkipped) > 0
}

// matchTester walks the pattern atoms over a tester string, mirroring
// the query regex: leftmost-lazy word joins, camel adjacency preferring
// in-word continuation, greedy wildcard gaps, and a trailing digit
// guard after a final numeric atom. It reports word-level statistics
// the scorers classify on.
func matchTester(atoms []patAtom, camel bool, tester string) walkResult {
	if len(atoms) == 0 || tester == "" {
		return walkResult{}
	}
	words := testerSpans(tester)
	if len(words) == 0 {
		return walkResult{}
	}
	units := flattenAtoms(atoms, camel)
	last := atoms[len(atoms)-1]
	guard := last.numeric && !last.wild

	placements := make([]placement, 0, len(units))

	var dfs func(ui, pos int) bool
	place := func(ui, pos, end int, star bool) bool {
		placements = append(placements, placement{from: pos, to: end, star: star})
		if dfs(ui+1, end) {
			return true
		}
		placements = placements[:len(placements)-1]
		return false
	}
	dfs = func(ui, pos int) bool {
		if ui == len(units) {
			if guard && pos < len(tester) && tester[pos] >= '0' && tester[pos] <= '9' {
				return false
			}
			return true
		}
		u := units[ui]
		if u.star {
			if u.text == "" {
				// Bare trailing '*': greedily covers through the end of
				// the tester, or to wherever the next unit lands.
				return place(ui, pos, pos, true)
			}
			// Greedy '*': try the latest occurrence first.
			var occ []int
			for at := pos; ; {
				j := strings.Index(tester[at:], u.text)
				if j < 0 {
					break
				}
				occ = append(occ, at+j)
				at += j + 1
			}
			for k := len(occ) - 1; k >= 0; k-- {
				if place(ui, occ[k], occ[k]+len(u.text), true) {
					return true
				}
			}
			return false
		}
		if u.link == linkCamel && pos < len(tester) && tester[pos] != ' ' &&
			strings.HasPrefix(tester[pos:], u.text) {
			if place(ui, pos, pos+len(u.text), false) {
				return true
			}
		}
		minStart := pos + 1
		if u.link == linkFirst {
			minStart = 0
		}
		for _, w := range words {
			if w.start < minStart {
				continue
			}
			if strings.HasPrefix(tester[w.start:], u.text) {
				if place(ui, w.start, w.start+len(u.text), false) {
					return true
				}
			}
		}
		return false
	}

	if !dfs(0, 0) {
		return walkResult{}
	}
	return summarize(units, placements, atoms, words, tester)
}

// summarize turns a successful placement list into word statistics.
func summarize(units []matchUnit, placements []placement, atoms []patAtom, words []span, tester string) walkResult {
	res := walkResult{ok: true}

	// Literal intervals and wildcard-covered gaps.
	type ivl struct{ from, to int }
	var lits, gaps []ivl
	prevEnd := 0
	for i, p := range placements {
		if p.star {
			gaps = append(gaps, ivl{prevEnd, p.from})
		}
		if p.to > p.from {
			lits = append(lits, ivl{p.from, p.to})
		}
		prevEnd = p.to
		// A bare star covers greedily up to the next literal, or the end
		// of the tester.
		if p.star && units[i].text == "" {
			to := len(tester)
			if i+1 < len(placements) {
				to = placements[i+1].from
			}
			gaps = append(gaps, ivl{p.from, to})
		}
	}

	overlaps := func(list []ivl, w span) bool {
		for _, v := range list {
			if v.from < w.end && v.to > w.start {
				return true
			}
		}
		return false
	}

	lastTouched := -1
	for wi, w := range words {
		if overlaps(lits, w) || overlaps(gaps, w) {
			lastTouched = wi
		}
	}
	res.allFull = true
	for wi, w := range words {
		entered := overlaps(lits, w)
		covered := overlaps(gaps, w)
		if !entered && !covered {
			word := tester[w.start:w.end]
			if wi > lastTouched {
				res.trailingSkipped = append(res.trailingSkipped, word)
			} else {
				res.interiorSkipped = append(res.interiorSkipped, word)
			}
			continue
		}
		if !entered {
			continue
		}
		lo, hi := w.end, w.start
		for _, v := range lits {
			if v.from < w.end && v.to > w.start {
				if v.from < lo {
					lo = v.from
				}
				if v.to > hi {
					hi = v.to
				}
			}
		}
		if lo != w.start || hi != w.end {
			res.allFull = false
		}
	}

	// Per-atom partial demerits.
	wordEndAt := func(off int) int {
		for _, w := range words {
			if off > w.start && off <= w.end {
				return w.end
			}
		}
		return -1
	}
	for ai, a := range atoms {
		if a.wild {
			res.partials++
			continue
		}
		end := -1
		for ui, u := range units {
			if u.atom == ai {
				end = placements[ui].to
			}
		}
		if end >= 0 && wordEndAt(end) != end {
			res.partials++
		}
	}
	return res
}
