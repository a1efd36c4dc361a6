package checker

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/larynjahor/brackets/pkg/bracket"
	"golang.org/x/exp/slices"
)

type Report struct {
	Files []FileResult `json:"files"`
}

type FileResult struct {
	Path    string           `json:"path"`
	Valid   bool             `json:"valid"`
	Failure *bracket.Failure `json:"failure,omitempty"`
}

// Valid reports whether every file is balanced.
func (r *Report) Valid() bool {
	return len(r.Invalid()) == 0
}

func (r *Report) Invalid() []FileResult {
	var ret []FileResult

	for _, f := range r.Files {
		if !f.Valid {
			ret = append(ret, f)
		}
	}

	return ret
}

// WriteText writes one path:line:col line per unbalanced file and a summary.
func (r *Report) WriteText(w io.Writer) error {
	invalid := r.Invalid()

	for _, f := range invalid {
		if _, err := fmt.Fprintf(w, "%s:%s\n", f.Path, f.Failure); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d files checked, %d unbalanced\n", len(r.Files), len(invalid))

	return err
}

func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

func (r *Report) sort() {
	slices.SortFunc(r.Files, func(a, b FileResult) int {
		return strings.Compare(a.Path, b.Path)
	})
}
