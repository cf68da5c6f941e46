package capability

// StateKind names a piece of observable device state a handler changed.
type StateKind string

const (
	FlashState  StateKind = "flash"
	VolumeState StateKind = "volume"
)

// StateEvent is returned by handlers that mutate observable device state, so
// the host can update its presentation without the engine holding callbacks.
type StateEvent struct {
	Kind  StateKind `json:"kind"`
	On    bool      `json:"on,omitempty"`
	Level int       `json:"level,omitempty"`
}
