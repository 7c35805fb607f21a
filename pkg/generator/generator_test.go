package generator

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordObserver struct {
	dirs      []string
	frames    []int
	fallbacks []string
	framesEnd int
	fbDone    int
}

func (o *recordObserver) DirectoryCreated(path string)    { o.dirs = append(o.dirs, path) }
func (o *recordObserver) FrameWritten(n int, name string) { o.frames = append(o.frames, n) }
func (o *recordObserver) FramesDone(count int, dir string) {
	o.framesEnd = count
}
func (o *recordObserver) FallbackWritten(name string) { o.fallbacks = append(o.fallbacks, name) }
func (o *recordObserver) FallbacksDone(dir string)    { o.fbDone++ }

func listNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRun_EmptyRoot(t *testing.T) {
	root := t.TempDir()
	obs := &recordObserver{}

	require.NoError(t, New(Config{Root: root, Observer: obs}).Run())

	seq := listNames(t, filepath.Join(root, SequenceDir))
	assert.Len(t, seq, FrameCount)
	assert.Equal(t, "frame_0001.jpg", seq[0])
	assert.Equal(t, "frame_0151.jpg", seq[len(seq)-1])

	assert.ElementsMatch(t, []string{"loading.jpg", "missing.jpg"},
		listNames(t, filepath.Join(root, PlaceholderDir)))

	payload := Payload()
	for n := 1; n <= FrameCount; n++ {
		b, err := os.ReadFile(filepath.Join(root, SequenceDir, FrameName(n)))
		require.NoError(t, err)
		require.Equal(t, payload, b, "frame %d", n)
	}
	for _, name := range FallbackNames {
		b, err := os.ReadFile(filepath.Join(root, PlaceholderDir, name))
		require.NoError(t, err)
		assert.Equal(t, payload, b, name)
	}

	assert.Equal(t, []string{
		filepath.Join(root, SequenceDir),
		filepath.Join(root, PlaceholderDir),
	}, obs.dirs)
	assert.Equal(t, []int{1, 25, 50, 75, 100, 125, 150, 151}, obs.frames)
	assert.Equal(t, FrameCount, obs.framesEnd)
	assert.Equal(t, FallbackNames, obs.fallbacks)
	assert.Equal(t, 1, obs.fbDone)
}

func TestRun_TwiceIsIdempotent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, New(Config{Root: root}).Run())

	obs := &recordObserver{}
	require.NoError(t, New(Config{Root: root, Observer: obs}).Run())

	assert.Empty(t, obs.dirs, "existing directories must not be reported as created")
	assert.Len(t, listNames(t, filepath.Join(root, SequenceDir)), FrameCount)
	assert.Len(t, listNames(t, filepath.Join(root, PlaceholderDir)), len(FallbackNames))

	rep, err := Verify(root)
	require.NoError(t, err)
	assert.True(t, rep.OK())
	assert.Empty(t, rep.Extra)
}

func TestRun_OverwritesExistingFrames(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, SequenceDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	stale := filepath.Join(dir, "frame_0042.jpg")
	require.NoError(t, os.WriteFile(stale, []byte("stale artwork that is much longer than the payload"), 0o644))

	require.NoError(t, New(Config{Root: root}).Run())

	b, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.Equal(t, Payload(), b)
}

func TestRun_KeepsUnrelatedFiles(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{SequenceDir, PlaceholderDir} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, dir, "README.txt"), []byte("keep"), 0o644))
	}

	require.NoError(t, New(Config{Root: root}).Run())

	for _, dir := range []string{SequenceDir, PlaceholderDir} {
		b, err := os.ReadFile(filepath.Join(root, dir, "README.txt"))
		require.NoError(t, err)
		assert.Equal(t, "keep", string(b))
	}
}

func TestRun_SequencePathIsFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, SequenceDir), []byte("x"), 0o644))

	err := New(Config{Root: root}).Run()
	require.Error(t, err)

	stage, ok := FailedStage(err)
	require.True(t, ok)
	assert.Equal(t, StageDirectories, stage)
	assert.True(t, IsPathTypeConflict(err))
}

func TestRun_UnwritableSequenceDir(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	root := t.TempDir()
	dir := filepath.Join(root, SequenceDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	obs := &recordObserver{}
	err := New(Config{Root: root, Observer: obs}).Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)

	stage, ok := FailedStage(err)
	require.True(t, ok)
	assert.Equal(t, StageFrames, stage)
	assert.Empty(t, obs.frames)
	assert.Zero(t, obs.framesEnd)
}

func TestWriteFrameSequence_StopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory squatting on frame 30 makes that write fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, FrameName(30)), 0o755))

	obs := &recordObserver{}
	err := New(Config{Observer: obs}).WriteFrameSequence(dir, Payload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), FrameName(30))

	// Frames before the failure stay; nothing after it is written.
	_, err = os.Stat(filepath.Join(dir, FrameName(29)))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, FrameName(31)))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, []int{1, 25}, obs.frames)
}

func TestFrameName(t *testing.T) {
	cases := map[int]string{
		1:   "frame_0001.jpg",
		25:  "frame_0025.jpg",
		151: "frame_0151.jpg",
	}
	for n, want := range cases {
		assert.Equal(t, want, FrameName(n))
	}
}

func TestNew_Defaults(t *testing.T) {
	g := New(Config{})
	assert.Equal(t, filepath.Join(".", SequenceDir), g.SequencePath())
	assert.Equal(t, filepath.Join(".", PlaceholderDir), g.PlaceholderPath())
}
