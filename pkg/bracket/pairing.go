package bracket

import (
	"fmt"

	"github.com/larynjahor/brackets/container"
	"github.com/larynjahor/brackets/pkg"
)

type Class uint8

const (
	ClassOther Class = iota
	ClassOpen
	ClassClose
)

type Pair struct {
	Open  rune
	Close rune
}

// DefaultPairs are the ASCII round, square and curly brackets.
var DefaultPairs = []Pair{
	{Open: '(', Close: ')'},
	{Open: '[', Close: ']'},
	{Open: '{', Close: '}'},
}

var defaultPairing = mustPairing(DefaultPairs...)

// DefaultPairing returns the pairing built from DefaultPairs.
func DefaultPairing() *Pairing {
	return defaultPairing
}

// NewPairing builds a pairing from pairs. Every rune may appear at most once
// across all pairs and no pair may close with its own opener.
func NewPairing(pairs ...Pair) (*Pairing, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: no pairs", pkg.ErrInvalidPairing)
	}

	seen := container.NewSet[rune](len(pairs) * 2)

	p := &Pairing{
		pairs:  make([]Pair, 0, len(pairs)),
		open:   make(map[rune]rune, len(pairs)),
		closer: make(map[rune]rune, len(pairs)),
	}

	for _, pair := range pairs {
		if pair.Open == pair.Close {
			return nil, fmt.Errorf("%w: %q closes itself", pkg.ErrInvalidPairing, pair.Open)
		}

		for _, r := range []rune{pair.Open, pair.Close} {
			if !seen.Add(r) {
				return nil, fmt.Errorf("%w: %q used twice", pkg.ErrInvalidPairing, r)
			}
		}

		p.pairs = append(p.pairs, pair)
		p.open[pair.Open] = pair.Close
		p.closer[pair.Close] = pair.Open
	}

	return p, nil
}

// Pairing is an immutable bijection between opening and closing runes.
type Pairing struct {
	pairs  []Pair
	open   map[rune]rune // open -> close
	closer map[rune]rune // close -> open
}

func (p *Pairing) Classify(r rune) Class {
	if _, ok := p.open[r]; ok {
		return ClassOpen
	}

	if _, ok := p.closer[r]; ok {
		return ClassClose
	}

	return ClassOther
}

// Opener returns the rune that close closes.
func (p *Pairing) Opener(close rune) (rune, bool) {
	r, ok := p.closer[close]

	return r, ok
}

// Closer returns the rune that closes open.
func (p *Pairing) Closer(open rune) (rune, bool) {
	r, ok := p.open[open]

	return r, ok
}

func (p *Pairing) Pairs() []Pair {
	return append([]Pair(nil), p.pairs...)
}

func mustPairing(pairs ...Pair) *Pairing {
	p, err := NewPairing(pairs...)
	if err != nil {
		panic(err)
	}

	return p
}
