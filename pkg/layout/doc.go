// Package layout implements a two-pass (measure, then arrange) layout engine
// for a retained element tree that may be hosted inside a native view system.
//
// Nodes live in a [Tree] arena and are addressed by [NodeID] handles. Each node
// carries a [Style] (explicit size, stretch policy, alignment, margin) and an
// optional intrinsic [Content] whose bounding box is mapped into the available
// space by [Fit]. Invalidation is explicit: [Tree.InvalidateMeasure] walks up
// while an ancestor's size depends on its children, [Tree.InvalidateArrange]
// marks a subtree for repositioning, and [Tree.UpdateLayout] resolves all queued
// work in one pass, measures before arranges.
package layout
