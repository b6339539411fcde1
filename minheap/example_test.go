package minheap_test

import (
	"fmt"

	"github.com/openfrontio/tilepath/minheap"
)

// ExampleMinHeap demonstrates pushing a handful of (payload, priority)
// pairs and draining them back out in priority order.
func ExampleMinHeap() {
	h := minheap.New[string](4)
	h.Push("far", 9.0)
	h.Push("near", 1.0)
	h.Push("mid", 5.0)

	for !h.IsEmpty() {
		fmt.Println(h.Pop())
	}
	// Output:
	// near
	// mid
	// far
}
