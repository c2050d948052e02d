package ilist_test

import (
	"errors"
	"fmt"

	"github.com/webbmaffian/go-ilist/ilist"
)

type job struct {
	ID       int32
	Priority int32
}

func Example() {
	var (
		queue ilist.List
		links [3]ilist.Link
		jobs  = [3]job{{1, 5}, {2, 1}, {3, 9}}
	)

	for i := range links {
		if err := ilist.InitValue(&links[i], &jobs[i]); err != nil {
			panic(err)
		}

		if err := queue.InsertLast(&links[i]); err != nil {
			panic(err)
		}
	}

	link, err := queue.Head()

	for err == nil {
		j, _ := ilist.Value[job](link)
		fmt.Println(j.ID, j.Priority)

		link, err = link.Next()
	}

	fmt.Println(errors.Is(err, ilist.ErrAtTail))

	// Output:
	// 1 5
	// 2 1
	// 3 9
	// true
}

func ExampleList_SetCapacity() {
	var (
		ls    ilist.List
		links [2]ilist.Link
	)

	_ = ls.SetCapacity(1)
	_ = ls.InsertFirst(&links[0])

	fmt.Println(ls.InsertFirst(&links[1]))

	// Output:
	// list is full
}
