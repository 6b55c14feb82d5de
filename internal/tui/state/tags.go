package state

// TagKind enumerates the status chips shown in the status bar.
type TagKind int

const (
	// Stable ordering for display: Edited, Pending, Blocked, Depth
	EDITED TagKind = iota
	PENDING
	BLOCKED
	DEPTH
)

// Tag represents a single status chip. Value is used for numeric counters
// (pending fields, sub-editor depth). Non-numeric tags use Value = 0.
type Tag struct {
	Kind  TagKind
	Value int
}
