// Package generator writes the placeholder images used by the scroll
// animation front-end.
//
// Every output file carries the same embedded single-pixel JPEG. A run
// ensures both output directories exist, writes the frame sequence, then
// writes the two fallback images. Writes are direct and unconditionally
// overwrite; a failed run may leave a partial sequence behind and is
// fixed by running again.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	FrameCount     = 151                      // frames in the scroll sequence
	SequenceDir    = "assets/scroll-sequence" // frame_0001.jpg … frame_0151.jpg
	PlaceholderDir = "assets/placeholders"    // loading.jpg, missing.jpg

	// progressEvery is the frame interval between progress notifications.
	progressEvery = 25
)

// FallbackNames lists the fallback images in the order they are written.
var FallbackNames = []string{"loading.jpg", "missing.jpg"}

// Config holds parameters for a generator run.
type Config struct {
	Root     string   // Base directory for the assets tree (default: ".")
	Observer Observer // Progress sink; nil discards notifications
}

// Generator materializes the placeholder payload into the fixed layout.
type Generator struct {
	root string
	obs  Observer
}

// New creates a generator for cfg.
func New(cfg Config) *Generator {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	obs := cfg.Observer
	if obs == nil {
		obs = nopObserver{}
	}
	return &Generator{root: root, obs: obs}
}

// SequencePath is the frame directory under the generator's root.
func (g *Generator) SequencePath() string {
	return filepath.Join(g.root, SequenceDir)
}

// PlaceholderPath is the fallback directory under the generator's root.
func (g *Generator) PlaceholderPath() string {
	return filepath.Join(g.root, PlaceholderDir)
}

// Run executes the full sequence. Any failure is returned as a *StageError
// naming the step that failed; nothing is retried or rolled back.
func (g *Generator) Run() error {
	seqDir, phDir := g.SequencePath(), g.PlaceholderPath()

	for _, dir := range []string{seqDir, phDir} {
		created, err := EnsureDirectory(dir)
		if err != nil {
			return &StageError{Stage: StageDirectories, Err: err}
		}
		if created {
			g.obs.DirectoryCreated(dir)
		}
	}

	payload := Payload()

	if err := g.WriteFrameSequence(seqDir, payload); err != nil {
		return &StageError{Stage: StageFrames, Err: err}
	}
	if err := g.WriteFallbackImages(phDir, payload); err != nil {
		return &StageError{Stage: StageFallbacks, Err: err}
	}
	return nil
}

// WriteFrameSequence writes payload to frame_0001.jpg … frame_0151.jpg in
// dir. The first write error aborts the loop; frames already written stay.
func (g *Generator) WriteFrameSequence(dir string, payload []byte) error {
	for n := 1; n <= FrameCount; n++ {
		name := FrameName(n)
		if err := writeFile(filepath.Join(dir, name), payload); err != nil {
			return err
		}
		if reportFrame(n) {
			g.obs.FrameWritten(n, name)
		}
	}
	g.obs.FramesDone(FrameCount, dir)
	return nil
}

// WriteFallbackImages writes payload to loading.jpg and missing.jpg in dir.
func (g *Generator) WriteFallbackImages(dir string, payload []byte) error {
	for _, name := range FallbackNames {
		if err := writeFile(filepath.Join(dir, name), payload); err != nil {
			return err
		}
		g.obs.FallbackWritten(name)
	}
	g.obs.FallbacksDone(dir)
	return nil
}

// FrameName returns the file name for frame n, zero-padded to 4 digits.
func FrameName(n int) string {
	return fmt.Sprintf("frame_%04d.jpg", n)
}

func reportFrame(n int) bool {
	return n == 1 || n%progressEvery == 0 || n == FrameCount
}

// writeFile is a plain create-or-truncate write. No temp file: a crash
// mid-write can leave a truncated frame, which the next run replaces.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
