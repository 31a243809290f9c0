// Package core defines the shared data model for the resegment pipeline:
// Incision affinities, Resource and Segment records, the Item tagged union
// that flows between stages, and Group, the final windowed output.
//
// None of the types here perform I/O, allocate goroutines, or retain a
// reference to anything outside the stream being processed. Payload data
// (the P type parameter) is carried opaquely end to end and never
// inspected by this package or any other package in this module.
package core
