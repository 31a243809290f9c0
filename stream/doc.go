// Package stream wraps a lazy input sequence with a one-step, unbounded
// LIFO push-back buffer, the single cursor abstraction shared by the
// segmenter and the grouper. Neither stage re-reads the underlying
// sequence directly; both pull and push back through a Stream.
package stream
