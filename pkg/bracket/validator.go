package bracket

import (
	"github.com/larynjahor/brackets/container"
	"github.com/samber/mo"
)

var defaultValidator = NewValidator(defaultPairing)

// Match reports whether the round, square and curly brackets in input are
// correctly nested and paired. Every other rune is ignored.
func Match(input string) bool {
	return defaultValidator.Match(input)
}

// Check is Match with a diagnostic: it returns the first violation found in
// input, or None when input is balanced.
func Check(input string) mo.Option[Failure] {
	return defaultValidator.Check(input)
}

func NewValidator(pairing *Pairing) *Validator {
	if pairing == nil {
		pairing = defaultPairing
	}

	return &Validator{
		pairing: pairing,
	}
}

// Validator holds no state between calls and may be shared by goroutines.
type Validator struct {
	pairing *Pairing
}

func (v *Validator) Pairing() *Pairing {
	return v.pairing
}

func (v *Validator) Match(input string) bool {
	open := container.NewStack[rune]()

	for _, r := range input {
		switch v.pairing.Classify(r) {
		case ClassOpen:
			open.Push(r)
		case ClassClose:
			top, ok := open.Pop().Get()
			if !ok {
				return false
			}

			if want, _ := v.pairing.Opener(r); top != want {
				return false
			}
		}
	}

	return open.Empty()
}

type token struct {
	r      rune
	offset int
	line   int
	column int
}

func (v *Validator) Check(input string) mo.Option[Failure] {
	open := container.NewStack[token]()

	line, column := 1, 0

	for offset, r := range input {
		column++

		switch v.pairing.Classify(r) {
		case ClassOpen:
			open.Push(token{r: r, offset: offset, line: line, column: column})
		case ClassClose:
			top, ok := open.Pop().Get()
			if !ok {
				return mo.Some(Failure{
					Reason: UnmatchedClose,
					Offset: offset,
					Line:   line,
					Column: column,
					Found:  r,
				})
			}

			if want, _ := v.pairing.Opener(r); top.r != want {
				expected, _ := v.pairing.Closer(top.r)

				return mo.Some(Failure{
					Reason:   Mismatch,
					Offset:   offset,
					Line:     line,
					Column:   column,
					Found:    r,
					Expected: expected,
				})
			}
		}

		if r == '\n' {
			line++
			column = 0
		}
	}

	top, ok := open.Peek().Get()
	if !ok {
		return mo.None[Failure]()
	}

	// innermost opener left on the stack
	expected, _ := v.pairing.Closer(top.r)

	return mo.Some(Failure{
		Reason:   Unclosed,
		Offset:   top.offset,
		Line:     top.line,
		Column:   top.column,
		Found:    top.r,
		Expected: expected,
	})
}
