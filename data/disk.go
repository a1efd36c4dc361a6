package data

import (
	"embed"
	"io"
	"io/fs"
	"strings"
	"testing/fstest"
	"time"
)

// Go sources are stored with a .test suffix so the toolchain does not pick
// them up as packages.
//
//go:embed all:root
var testFS embed.FS

var FS = make(fstest.MapFS)

func init() {
	err := fs.WalkDir(testFS, "root", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		f, err := testFS.Open(path)
		if err != nil {
			return err
		}

		defer f.Close()

		bytes, err := io.ReadAll(f)
		if err != nil {
			return err
		}

		newPath := strings.TrimSuffix(path, ".test")

		FS[newPath] = &fstest.MapFile{
			Data:    bytes,
			Mode:    0o644,
			ModTime: time.Now(),
			Sys:     nil,
		}

		return nil
	})
	if err != nil {
		panic(err)
	}
}
