package ilist

// List tracks the boundary links and the length of a chain of Links. It never
// allocates: every link it holds is owned by the caller.
//
// The zero value is an empty list with unlimited capacity. A List must not be
// copied while it holds links, since every attached link points back at it.
type List struct {
	head     *Link
	tail     *Link
	length   int
	capacity int
	bounded  bool // Whether capacity applies.
}

// Resets the list to empty with unlimited capacity. Links still in the list
// are detached first, which makes this O(n) for a non-empty list.
func (ls *List) Init() error {
	if ls == nil {
		return ErrInvalidReference
	}

	for link := ls.head; link != nil; {
		next := link.next
		link.reset()
		link = next
	}

	*ls = List{}
	return nil
}

// Sets the maximum number of links, or Unlimited. A capacity below the current
// length is rejected: existing links are never dropped.
func (ls *List) SetCapacity(max int) error {
	if ls == nil {
		return ErrInvalidReference
	}

	if max < Unlimited {
		return ErrInvalidInput
	}

	if max == Unlimited {
		ls.bounded, ls.capacity = false, 0
		return nil
	}

	if max < ls.length {
		return ErrInvalidSize
	}

	ls.bounded, ls.capacity = true, max
	return nil
}

func (ls *List) Capacity() (int, error) {
	if ls == nil {
		return 0, ErrInvalidReference
	}

	if !ls.bounded {
		return Unlimited, nil
	}

	return ls.capacity, nil
}

func (ls *List) Len() (int, error) {
	if ls == nil {
		return 0, ErrInvalidReference
	}

	return ls.length, nil
}

func (ls *List) Head() (*Link, error) {
	if ls == nil {
		return nil, ErrInvalidReference
	}

	if ls.length == 0 {
		return nil, ErrEmpty
	}

	return ls.head, nil
}

func (ls *List) Tail() (*Link, error) {
	if ls == nil {
		return nil, ErrInvalidReference
	}

	if ls.length == 0 {
		return nil, ErrEmpty
	}

	return ls.tail, nil
}

func (ls *List) full() bool {
	return ls.bounded && ls.length+1 > ls.capacity
}
