package util

import "propedit/internal/tui/state"

// ComputeTags calculates the status chips for the active window.
//
// The returned slice preserves a stable order:
//
//	Edited, Pending, Blocked, Depth
//
// Rules:
//   - Edited reflects a target that differs from its loaded snapshot.
//   - Pending counts fields whose text does not parse yet.
//   - Blocked is present while a dependency gate fails in the last pass.
//   - Depth counts open sub-editor windows and is omitted at the root.
func ComputeTags(edited bool, pending int, blocked bool, depth int) []state.Tag {
	tags := make([]state.Tag, 0, 4)
	if edited {
		tags = append(tags, state.Tag{Kind: state.EDITED})
	}
	if pending > 0 {
		tags = append(tags, state.Tag{Kind: state.PENDING, Value: pending})
	}
	if blocked {
		tags = append(tags, state.Tag{Kind: state.BLOCKED})
	}
	if depth > 0 {
		tags = append(tags, state.Tag{Kind: state.DEPTH, Value: depth})
	}
	return tags
}
