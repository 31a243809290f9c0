// Package ressplit partitions a lazy sequence of weighted resources into
// context-window-shaped groups.
//
// The pipeline has two stages, each exposed in its own subpackage for
// independent use: segment.Allocate cuts a resource stream into
// incision-aware segments bounded by a maximum weight, and group.Items
// packs that segment stream into overlapping (head, body, tail) windows.
// Split composes both stages plus the head/tail truncation step into the
// single call most callers want.
//
// None of the three stages perform I/O, retain goroutines, or inspect the
// opaque payload carried on each Resource; see core for the shared data
// model.
package ressplit
