// Command ressplit reads a JSON array of text resources from stdin and
// writes the grouped, overlap-windowed result to stdout.
package main

import "github.com/katalvlaran/ressplit/cmd/ressplit/cmd"

func main() {
	cmd.Execute()
}
