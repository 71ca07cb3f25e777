// SPDX-License-Identifier: MIT

package queue_test

import (
	"fmt"

	"github.com/katalvlaran/lvstruct/queue"
)

func ExampleQueue() {
	q := queue.New[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	front, _ := q.Dequeue()
	back, _ := q.Last()
	fmt.Println(front, back, q)
	// Output: 1 3 [2, 3]
}
