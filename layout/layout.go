// Package layout provides keyboard layouts: immutable tables mapping a
// (group, level, key) position to the symbol printed on the keytop.
package layout

import (
	"sort"

	"github.com/Alia5/scankey/keys"
)

// Position addresses one symbol slot of a layout.
type Position struct {
	Group uint8
	Level uint8
	Key   keys.Key
}

// Layout is a read-only symbol table for one physical keyboard arrangement.
// A Layout must not be modified after it has been built; share it by pointer.
type Layout struct {
	name        string
	hasAltGrKey bool
	symbols     map[Position]rune
}

// Name returns the registry name of the layout.
func (l *Layout) Name() string { return l.name }

// HasAltGrKey reports whether the right Alt key acts as AltGr. When false
// the key behaves as a second Alt.
func (l *Layout) HasAltGrKey() bool { return l.hasAltGrKey }

// Lookup returns the symbol at (group, level, key). Most positions are unmapped.
func (l *Layout) Lookup(group, level uint8, k keys.Key) (rune, bool) {
	r, ok := l.symbols[Position{Group: group, Level: level, Key: k}]
	return r, ok
}

// Len returns the number of mapped positions.
func (l *Layout) Len() int { return len(l.symbols) }

// Positions returns all mapped positions ordered by group, key and level.
func (l *Layout) Positions() []Position {
	out := make([]Position, 0, len(l.symbols))
	for p := range l.symbols {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		return a.Level < b.Level
	})
	return out
}

// Builder assembles a Layout. The zero value is not usable; call NewBuilder.
type Builder struct {
	l *Layout
}

// NewBuilder starts a layout with the given name.
func NewBuilder(name string, hasAltGrKey bool) *Builder {
	return &Builder{l: &Layout{
		name:        name,
		hasAltGrKey: hasAltGrKey,
		symbols:     make(map[Position]rune),
	}}
}

// Set maps a single position. A zero rune clears the position.
func (b *Builder) Set(group, level uint8, k keys.Key, r rune) *Builder {
	p := Position{Group: group, Level: level, Key: k}
	if r == 0 {
		delete(b.l.symbols, p)
		return b
	}
	b.l.symbols[p] = r
	return b
}

// Group maps every key of table into group. Index 0 of each entry is level 0,
// index 1 is level 1; zero runes leave the slot unmapped.
func (b *Builder) Group(group uint8, table map[keys.Key][2]rune) *Builder {
	for k, levels := range table {
		for level, r := range levels {
			if r != 0 {
				b.Set(group, uint8(level), k, r)
			}
		}
	}
	return b
}

// Build returns the finished layout. The builder must not be used afterwards.
func (b *Builder) Build() *Layout {
	l := b.l
	b.l = nil
	return l
}
