package bracket

import (
	"fmt"

	"github.com/goccy/go-json"
)

type Reason uint8

const (
	// UnmatchedClose is a closing bracket with nothing open.
	UnmatchedClose Reason = iota + 1
	// Mismatch is a closing bracket of a different kind than the innermost open one.
	Mismatch
	// Unclosed is an opening bracket still open at the end of input.
	Unclosed
)

func (r Reason) String() string {
	switch r {
	case UnmatchedClose:
		return "unmatched closing bracket"
	case Mismatch:
		return "mismatched bracket"
	case Unclosed:
		return "unclosed bracket"
	default:
		return fmt.Sprintf("Reason(%d)", uint8(r))
	}
}

func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Failure locates the first violation in an input. Offset is in bytes, Line
// and Column start at 1 and Column counts runes. Expected is zero when no
// closer would have been accepted.
type Failure struct {
	Reason   Reason
	Offset   int
	Line     int
	Column   int
	Found    rune
	Expected rune
}

func (f Failure) String() string {
	if f.Expected == 0 {
		return fmt.Sprintf("%d:%d: %s (found %q)", f.Line, f.Column, f.Reason, f.Found)
	}

	return fmt.Sprintf("%d:%d: %s (found %q, expected %q)", f.Line, f.Column, f.Reason, f.Found, f.Expected)
}

type failureJSON struct {
	Reason   Reason `json:"reason"`
	Offset   int    `json:"offset"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Found    string `json:"found"`
	Expected string `json:"expected,omitempty"`
}

func (f Failure) MarshalJSON() ([]byte, error) {
	out := failureJSON{
		Reason: f.Reason,
		Offset: f.Offset,
		Line:   f.Line,
		Column: f.Column,
		Found:  string(f.Found),
	}

	if f.Expected != 0 {
		out.Expected = string(f.Expected)
	}

	return json.Marshal(out)
}
