package input

// Raw is one frame's hardware snapshot: pressed keys plus accumulated
// pointer-wheel deltas. The input source rebuilds it every frame; nothing
// in the pipeline retains it across frames.
type Raw struct {
	Keys   map[string]bool
	WheelX float64
	WheelY float64
}

// Pressed reports whether key is down in this snapshot. Keys are lowercase
// names ("w", "space", "shift").
func (r Raw) Pressed(key string) bool {
	return r.Keys[key]
}

// Source supplies the per-frame raw snapshot. Implementations live outside
// the pipeline (terminal, test fixtures); the frame loop polls once per
// frame and relay transformers read through this interface.
type Source interface {
	Snapshot() Raw
}

// Static is a fixed-snapshot Source for tests and scripted playback.
type Static struct {
	Raw Raw
}

func (s *Static) Snapshot() Raw {
	return s.Raw
}
