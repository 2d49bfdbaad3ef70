package abbrevgo

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/abbrevgo/internal/bitmap"
	"github.com/hupe1980/abbrevgo/textnorm"
)

// parallelAnalyzeMin is the pending-entry backlog at which lazy
// analysis fans out over worker goroutines.
const parallelAnalyzeMin = 64

// Matcher is a searchable index from short patterns (abbreviations,
// keywords, camel-cased sigils, optionally containing '*') to
// registered named entries. Entries accumulate through the Add methods;
// queries resolve patterns against them under a ranked, Unicode- and
// punctuation-tolerant similarity measure.
//
// The matcher serializes its own state behind a mutex, so concurrent
// use is safe, but loader closures may run while the lock is held and
// must not call back into the matcher.
type Matcher[V comparable] struct {
	mu sync.Mutex

	entries  []*Entry[V]
	ltesters []string

	nAnalyzed int
	nDeparen  int

	priorities map[uint32]float64
	tagBits    map[uint32]*bitmap.Set // posting set per tag bit position

	matchCache  map[string]*bitmap.Set // legacy scorer
	xmatchCache map[string]*bitmap.Set // primary scorer

	logger         *Logger
	crossCheck     bool
	analyzeWorkers int
}

// New creates an empty matcher.
func New[V comparable](opts ...Option) *Matcher[V] {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.analyzeWorkers < 1 {
		o.analyzeWorkers = runtime.GOMAXPROCS(0)
	}
	return &Matcher[V]{
		priorities:     make(map[uint32]float64),
		tagBits:        make(map[uint32]*bitmap.Set),
		matchCache:     make(map[string]*bitmap.Set),
		xmatchCache:    make(map[string]*bitmap.Set),
		logger:         o.logger,
		crossCheck:     o.crossCheck,
		analyzeWorkers: o.analyzeWorkers,
	}
}

// NumEntries returns the number of registered entries, aliases
// included.
func (m *Matcher[V]) NumEntries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// AddPhrase registers a named phrase with an eager payload and returns
// its entry. The name is accent-folded and whitespace-simplified on
// insertion. A single-word strict-camel name ("FooBar") additionally
// registers a case-split alias ("Foo Bar") sharing the same payload.
func (m *Matcher[V]) AddPhrase(name string, value V, tflags uint32) *Entry[V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addPhraseLocked(name, &valueBox[V]{value: value, loaded: true}, tflags)
}

// AddPhraseLazy registers a named phrase whose payload is produced by
// loader on first use. The loader must return a non-zero value and must
// not call back into the matcher.
func (m *Matcher[V]) AddPhraseLazy(name string, loader func() V, tflags uint32) *Entry[V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addPhraseLocked(name, &valueBox[V]{loader: loader}, tflags)
}

// AddKeyword registers a keyword entry: a single token matched by exact
// lowercased equality. Panics if name contains whitespace.
func (m *Matcher[V]) AddKeyword(name string, value V, tflags uint32) *Entry[V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addKeywordLocked(name, &valueBox[V]{value: value, loaded: true}, tflags)
}

// AddKeywordLazy registers a keyword entry with a lazy payload. Panics
// if name contains whitespace.
func (m *Matcher[V]) AddKeywordLazy(name string, loader func() V, tflags uint32) *Entry[V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addKeywordLocked(name, &valueBox[V]{loader: loader}, tflags)
}

// SetPriority records a priority for the tag tier selected by the low
// bits of tflags. Among entries matching a query, higher priorities
// displace lower ones.
func (m *Matcher[V]) SetPriority(tflags uint32, prio float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.priorities[tflags&tflagTierMask] = prio
}

func (m *Matcher[V]) addPhraseLocked(name string, box *valueBox[V], tflags uint32) *Entry[V] {
	name = textnorm.SimplifyWhitespace(textnorm.Deaccent(name))
	e := &Entry[V]{name: name, box: box, tflags: tflags &^ TFlagKeyword}
	m.appendEntry(e)
	if !strings.Contains(name, " ") && textnorm.IsStrictCamelWord(name) {
		split := textnorm.SplitCamel(name)
		if split != name {
			m.appendEntry(&Entry[V]{name: split, box: box, tflags: e.tflags})
		}
	}
	m.invalidateAll()
	return e
}

func (m *Matcher[V]) addKeywordLocked(name string, box *valueBox[V], tflags uint32) *Entry[V] {
	if strings.ContainsFunc(name, unicode.IsSpace) {
		panic(fmt.Errorf("abbrevgo: %w: %q", ErrKeywordWhitespace, name))
	}
	name = textnorm.Deaccent(name)
	e := &Entry[V]{name: name, box: box, tflags: tflags | TFlagKeyword}
	m.appendEntry(e)
	m.purgeCachesFor(strings.ToLower(name))
	return e
}

func (m *Matcher[V]) appendEntry(e *Entry[V]) {
	pos := uint32(len(m.entries))
	m.entries = append(m.entries, e)
	m.ltesters = append(m.ltesters, "")
	for bit := uint32(0); bit < 32; bit++ {
		if e.tflags&(1<<bit) != 0 {
			s, ok := m.tagBits[bit]
			if !ok {
				s = bitmap.New()
				m.tagBits[bit] = s
			}
			s.Add(pos)
		}
	}
}

// invalidateAll drops both match caches. Any mutation that introduces
// non-keyword content invalidates every memoized result.
func (m *Matcher[V]) invalidateAll() {
	if len(m.matchCache) > 0 {
		m.matchCache = make(map[string]*bitmap.Set)
	}
	if len(m.xmatchCache) > 0 {
		m.xmatchCache = make(map[string]*bitmap.Set)
	}
}

// purgeCachesFor drops only the cached results whose pattern
// canonicalizes to lname. A pure keyword addition leaves every other
// memoized result stable.
func (m *Matcher[V]) purgeCachesFor(lname string) {
	for k := range m.matchCache {
		if canonPattern(k) == lname {
			delete(m.matchCache, k)
		}
	}
	for k := range m.xmatchCache {
		if canonPattern(k) == lname {
			delete(m.xmatchCache, k)
		}
	}
}

func canonPattern(p string) string {
	return strings.ToLower(textnorm.SimplifyWhitespace(textnorm.Deaccent(p)))
}

// analyzeLocked computes the derived fields of every entry the analyzed
// high-water mark has not reached: the dedashed name and the tester
// string queries scan. Large backlogs fan out over worker goroutines;
// each worker touches disjoint slots.
func (m *Matcher[V]) analyzeLocked() {
	n := len(m.entries)
	if m.nAnalyzed == n {
		return
	}
	pending := n - m.nAnalyzed
	workers := 1
	if pending >= parallelAnalyzeMin && m.analyzeWorkers > 1 {
		workers = m.analyzeWorkers
	}
	if workers == 1 {
		for i := m.nAnalyzed; i < n; i++ {
			m.analyzeEntry(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		chunk := (pending + workers - 1) / workers
		for lo := m.nAnalyzed; lo < n; lo += chunk {
			hi := lo + chunk
			if hi > n {
				hi = n
			}
			g.Go(func() error {
				for i := lo; i < hi; i++ {
					m.analyzeEntry(i)
				}
				return nil
			})
		}
		_ = g.Wait()
	}
	m.logger.LogAnalyze(pending, workers)
	m.nAnalyzed = n
}

func (m *Matcher[V]) analyzeEntry(i int) {
	e := m.entries[i]
	if e.dedashName == "" {
		e.dedashName = textnorm.SimplifyWhitespace(textnorm.Dedash(e.name))
	}
	if m.ltesters[i] != "" {
		return
	}
	if e.IsKeyword() {
		m.ltesters[i] = " " + strings.ToLower(e.name)
	} else {
		m.ltesters[i] = textnorm.MakeXTester(strings.ToLower(e.name))
	}
}

// AddDeparenthesized generates alternate names: for every phrase entry
// not yet visited whose name carries a parenthesized or bracketed
// segment, a clone with that segment stripped is appended, provided the
// shortened name is non-empty and its tester is not already present.
func (m *Matcher[V]) AddDeparenthesized() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyzeLocked()

	n := len(m.entries)
	added := false
	for i := m.nDeparen; i < n; i++ {
		e := m.entries[i]
		if e.IsKeyword() {
			continue
		}
		stripped := textnorm.StripParens(e.name)
		if stripped == "" || stripped == e.name {
			continue
		}
		lt := textnorm.MakeXTester(strings.ToLower(stripped))
		if lt == "" || m.testerExists(lt) {
			continue
		}
		clone := &Entry[V]{
			name:       stripped,
			dedashName: textnorm.SimplifyWhitespace(textnorm.Dedash(stripped)),
			box:        e.box,
			tflags:     e.tflags,
		}
		m.appendEntry(clone)
		m.ltesters[len(m.ltesters)-1] = lt
		added = true
	}
	m.nDeparen = n
	m.nAnalyzed = len(m.entries)
	if added {
		m.invalidateAll()
	}
}

func (m *Matcher[V]) testerExists(lt string) bool {
	for _, t := range m.ltesters {
		if t == lt {
			return true
		}
	}
	return false
}
