// verify.go — end-state check of a generated assets tree.
package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
)

// Report is the outcome of Verify. Paths are slash-separated and relative
// to the root that was verified.
type Report struct {
	Checked    int      // expected files inspected
	Missing    []string // expected files that do not exist
	Mismatched []string // expected files whose content is not the payload
	Extra      []string // other entries in the output directories
}

// OK reports whether every expected file exists with the payload content.
// Extra entries do not count against it.
func (r Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Mismatched) == 0
}

// ExpectedFiles lists every output file, relative to the root, in write order.
func ExpectedFiles() []string {
	files := make([]string, 0, FrameCount+len(FallbackNames))
	for n := 1; n <= FrameCount; n++ {
		files = append(files, path.Join(SequenceDir, FrameName(n)))
	}
	for _, name := range FallbackNames {
		files = append(files, path.Join(PlaceholderDir, name))
	}
	return files
}

// Verify inspects the assets tree under root. Only unexpected I/O failures
// are returned as errors; missing or wrong files end up in the Report.
func Verify(root string) (Report, error) {
	var rep Report

	if err := CheckPayload(); err != nil {
		return rep, err
	}
	payload := Payload()

	expected := make(map[string]bool)
	for _, rel := range ExpectedFiles() {
		expected[rel] = true
		rep.Checked++

		b, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			rep.Missing = append(rep.Missing, rel)
		case err != nil:
			return rep, fmt.Errorf("read %s: %w", rel, err)
		case !bytes.Equal(b, payload):
			rep.Mismatched = append(rep.Mismatched, rel)
		}
	}

	for _, dir := range []string{SequenceDir, PlaceholderDir} {
		entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(dir)))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return rep, fmt.Errorf("list %s: %w", dir, err)
		}
		for _, e := range entries {
			rel := path.Join(dir, e.Name())
			if !expected[rel] {
				rep.Extra = append(rep.Extra, rel)
			}
		}
	}
	sort.Strings(rep.Extra)

	return rep, nil
}
