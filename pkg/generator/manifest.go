// manifest.go — the image list the scroll front-end derives from the layout.
package generator

import "path"

// Segment maps a slice of scroll progress onto a frame range. Ranges share
// their boundary frames; the first matching segment wins.
type Segment struct {
	Name        string  `json:"name"`
	ScrollStart float64 `json:"scroll_start"`
	ScrollEnd   float64 `json:"scroll_end"`
	FirstFrame  int     `json:"first_frame"`
	LastFrame   int     `json:"last_frame"`
	Color       string  `json:"color"`
}

// Segments are the scroll triggers of the animation, in scroll order.
var Segments = []Segment{
	{Name: "opening", ScrollStart: 0, ScrollEnd: 0.2, FirstFrame: 1, LastFrame: 30, Color: "#4e79a7"},
	{Name: "main", ScrollStart: 0.2, ScrollEnd: 0.5, FirstFrame: 30, LastFrame: 75, Color: "#59a14f"},
	{Name: "climax", ScrollStart: 0.5, ScrollEnd: 0.8, FirstFrame: 75, LastFrame: 120, Color: "#e15759"},
	{Name: "ending", ScrollStart: 0.8, ScrollEnd: 1.0, FirstFrame: 120, LastFrame: FrameCount, Color: "#f28e2b"},
}

// SegmentFor returns the first segment whose range contains frame n,
// falling back to the first segment.
func SegmentFor(n int) Segment {
	for _, s := range Segments {
		if n >= s.FirstFrame && n <= s.LastFrame {
			return s
		}
	}
	return Segments[0]
}

// FrameEntry describes one frame of the sequence.
type FrameEntry struct {
	Index    int    `json:"index"` // 0-based
	Frame    int    `json:"frame"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Segment  string `json:"segment"`
}

// Manifest is the full naming contract shared with the front-end.
type Manifest struct {
	BasePath    string       `json:"base_path"`
	TotalFrames int          `json:"total_frames"`
	Frames      []FrameEntry `json:"frames"`
	Segments    []Segment    `json:"segments"`
	Loading     string       `json:"loading"`
	Missing     string       `json:"missing"`
}

// BuildManifest lists every frame with its scroll segment.
func BuildManifest() Manifest {
	m := Manifest{
		BasePath:    SequenceDir + "/",
		TotalFrames: FrameCount,
		Frames:      make([]FrameEntry, 0, FrameCount),
		Segments:    Segments,
		Loading:     path.Join(PlaceholderDir, FallbackNames[0]),
		Missing:     path.Join(PlaceholderDir, FallbackNames[1]),
	}
	for n := 1; n <= FrameCount; n++ {
		name := FrameName(n)
		m.Frames = append(m.Frames, FrameEntry{
			Index:    n - 1,
			Frame:    n,
			Filename: name,
			Path:     path.Join(SequenceDir, name),
			Segment:  SegmentFor(n).Name,
		})
	}
	return m
}
