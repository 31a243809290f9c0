// Package tokencount adapts a tiktoken-go encoder into a Weight source for
// ressplit resources, so a Config's MaxSegmentCount can mean "tokens" rather
// than an arbitrary caller-supplied unit.
package tokencount
