package abbrevgo

import "fmt"

const (
	// TFlagKeyword marks a keyword entry: a single-token name matched by
	// exact lowercased equality.
	TFlagKeyword uint32 = 0x10000000

	// tflagTierMask selects the low bits of a tag bitfield that key the
	// priority table. Bits between the tier mask and TFlagKeyword are
	// available for caller-defined category masks.
	tflagTierMask uint32 = 0xFF
)

// valueBox holds an entry's payload, either supplied eagerly or
// produced once by a loader. Alias entries (camel splits,
// deparenthesized clones, installed keywords) share the box of the
// entry they alias, so a loader runs at most once per logical value and
// box identity doubles as alias identity.
type valueBox[V comparable] struct {
	loader func() V
	value  V
	loaded bool
}

func (b *valueBox[V]) load() V {
	if !b.loaded {
		v := b.loader()
		var zero V
		if v == zero {
			panic(fmt.Errorf("abbrevgo: %w", ErrZeroLoaderValue))
		}
		b.value = v
		b.loaded = true
		b.loader = nil
	}
	return b.value
}

// Entry is a registered name with an associated payload. Entries are
// created by the Add methods of Matcher and remain valid across all
// subsequent additions; the entry list is append-only and entries are
// never mutated apart from lazy derivations.
type Entry[V comparable] struct {
	name       string
	dedashName string
	box        *valueBox[V]
	tflags     uint32
}

// Name returns the entry's display name, as normalized on insertion.
func (e *Entry[V]) Name() string { return e.name }

// TFlags returns the entry's tag bitfield.
func (e *Entry[V]) TFlags() uint32 { return e.tflags }

// IsKeyword reports whether the entry is a keyword entry.
func (e *Entry[V]) IsKeyword() bool { return e.tflags&TFlagKeyword != 0 }

// Value returns the entry's payload, invoking the lazy loader on first
// use. The loader must not call back into the Matcher that owns the
// entry, and must not return the zero value.
func (e *Entry[V]) Value() V { return e.box.load() }

// sameValue reports whether two entries resolve to the same payload:
// either they alias the same value box, or their values (loaded first
// where still lazy) compare equal.
func sameValue[V comparable](a, b *Entry[V]) bool {
	if a.box == b.box {
		return true
	}
	return a.box.load() == b.box.load()
}
