package stream_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/ressplit/stream"
)

// ExampleStream_Recover shows peeking one item ahead and pushing it back
// so a later Get replays it in order.
func ExampleStream_Recover() {
	s := stream.New(slices.Values([]int{1, 2, 3}))
	defer s.Close()

	peeked, _ := s.Get()
	s.Recover(peeked)

	for {
		v, ok := s.Get()
		if !ok {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// 3
}
