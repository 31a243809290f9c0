// Package cmd wires ressplit's library API into a cobra command tree.
package cmd
