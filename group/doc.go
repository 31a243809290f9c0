// Package group implements the sliding-window grouper: it packs a lazy
// sequence of core.Item values into core.Group records, each with a body
// bounded by a count budget plus head/tail overlaps shared with the
// neighboring groups, and provides the head/tail truncation step that
// trims those overlaps back down to their recorded budgets.
package group
