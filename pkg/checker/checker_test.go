package checker_test

import (
	"bytes"
	"context"
	"testing"
	"testing/fstest"

	"github.com/larynjahor/brackets/data"
	"github.com/larynjahor/brackets/pkg"
	"github.com/larynjahor/brackets/pkg/bracket"
	"github.com/larynjahor/brackets/pkg/checker"
	"github.com/stretchr/testify/require"
)

func newChecker(t *testing.T, opts ...checker.Option) *checker.Checker {
	t.Helper()

	pairing, err := data.Config.Pairing()
	require.NoError(t, err)

	return checker.New(data.FS, bracket.NewValidator(pairing), opts...)
}

func paths(r *checker.Report) []string {
	ret := make([]string, 0, len(r.Files))

	for _, f := range r.Files {
		ret = append(ret, f.Path)
	}

	return ret
}

func TestChecker_Do(t *testing.T) {
	c := newChecker(t, checker.WithWorkers(data.Config.Workers), checker.WithExtensions(data.Config.Extensions...))

	report, err := c.Do(context.Background(), []string{"root/project"})
	require.NoError(t, err)

	require.Equal(t, []string{
		"root/project/broken.go",
		"root/project/docs/empty.txt",
		"root/project/docs/notes.txt",
		"root/project/main.go",
	}, paths(report))

	require.False(t, report.Valid())

	invalid := report.Invalid()
	require.Len(t, invalid, 2)

	require.Equal(t, "root/project/broken.go", invalid[0].Path)
	require.Equal(t, bracket.Failure{
		Reason:   bracket.Mismatch,
		Offset:   39,
		Line:     4,
		Column:   10,
		Found:    ']',
		Expected: ')',
	}, *invalid[0].Failure)

	require.Equal(t, "root/project/docs/notes.txt", invalid[1].Path)
	require.Equal(t, bracket.Unclosed, invalid[1].Failure.Reason)
	require.Equal(t, 1, invalid[1].Failure.Line)
	require.Equal(t, 11, invalid[1].Failure.Column)
}

func TestChecker_AllExtensions(t *testing.T) {
	c := newChecker(t)

	report, err := c.Do(context.Background(), []string{"root"})
	require.NoError(t, err)

	require.Contains(t, paths(report), "root/project/lib/util.rs")
	require.NotContains(t, paths(report), "root/project/.cache/stale.txt")
	require.Len(t, report.Files, 5)
}

func TestChecker_ExtensionWithoutDot(t *testing.T) {
	c := newChecker(t, checker.WithExtensions("rs", ""))

	report, err := c.Do(context.Background(), []string{"root/project"})
	require.NoError(t, err)

	require.Equal(t, []string{"root/project/lib/util.rs"}, paths(report))
	require.True(t, report.Valid())
}

func TestChecker_ExplicitFiles(t *testing.T) {
	c := newChecker(t, checker.WithExtensions(".go"))

	report, err := c.Do(context.Background(), []string{
		"root/project/.cache/stale.txt",
		"root/project",
		"./root/project/main.go",
	})
	require.NoError(t, err)

	require.Equal(t, []string{
		"root/project/.cache/stale.txt",
		"root/project/broken.go",
		"root/project/main.go",
	}, paths(report))

	require.Equal(t, bracket.UnmatchedClose, report.Files[0].Failure.Reason)
}

func TestChecker_NotFound(t *testing.T) {
	c := newChecker(t)

	_, err := c.Do(context.Background(), []string{"root/missing"})
	require.ErrorIs(t, err, pkg.ErrTargetNotFound)
}

func TestChecker_Canceled(t *testing.T) {
	c := newChecker(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Do(ctx, []string{"root"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestChecker_ManyFiles(t *testing.T) {
	fsys := fstest.MapFS{}

	for i := range 64 {
		content := "({[]})"
		if i%8 == 0 {
			content = "({[})"
		}

		fsys[string(rune('a'+i/26))+string(rune('a'+i%26))+".txt"] = &fstest.MapFile{Data: []byte(content)}
	}

	c := checker.New(fsys, nil, checker.WithWorkers(4))

	report, err := c.Do(context.Background(), []string{"."})
	require.NoError(t, err)

	require.Len(t, report.Files, 64)
	require.Len(t, report.Invalid(), 8)
}

func TestReport_WriteText(t *testing.T) {
	c := newChecker(t, checker.WithExtensions(data.Config.Extensions...))

	report, err := c.Do(context.Background(), []string{"root/project"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf))

	require.Equal(t, ""+
		"root/project/broken.go:4:10: mismatched bracket (found ']', expected ')')\n"+
		"root/project/docs/notes.txt:1:11: unclosed bracket (found '(', expected ')')\n"+
		"4 files checked, 2 unbalanced\n",
		buf.String(),
	)
}

func TestReport_WriteJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"a.txt": &fstest.MapFile{Data: []byte("(ok)")},
		"b.txt": &fstest.MapFile{Data: []byte("x)")},
	}

	report, err := checker.New(fsys, nil).Do(context.Background(), []string{"."})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf))

	require.JSONEq(t, `{
		"files": [
			{"path": "a.txt", "valid": true},
			{"path": "b.txt", "valid": false, "failure": {
				"reason": "unmatched closing bracket",
				"offset": 1,
				"line": 1,
				"column": 2,
				"found": ")"
			}}
		]
	}`, buf.String())
}
