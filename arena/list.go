package arena

import (
	"github.com/webbmaffian/go-ilist/ilist"
)

// Resets the list to empty with unlimited capacity. Links still in the list
// are detached first, which makes this O(n) for a non-empty list.
func (a *Arena[V]) InitList(l Handle) error {
	rec, err := a.list(l)

	if err != nil {
		return err
	}

	for h := rec.head; !h.IsNil(); {
		link := a.at(h)
		h = link.next
		link.prev, link.next, link.list = Nil, Nil, Nil
	}

	*rec = ListRecord{
		gen:  rec.gen,
		used: true,
	}

	return nil
}

// Sets the maximum number of links, or ilist.Unlimited. Never drops links.
func (a *Arena[V]) SetCapacity(l Handle, max int) error {
	rec, err := a.list(l)

	if err != nil {
		return err
	}

	if max < ilist.Unlimited {
		return ilist.ErrInvalidInput
	}

	if max == ilist.Unlimited {
		rec.bounded, rec.capacity = false, 0
		return nil
	}

	if max < int(rec.length) {
		return ilist.ErrInvalidSize
	}

	rec.bounded, rec.capacity = true, int64(max)
	return nil
}

func (a *Arena[V]) Capacity(l Handle) (int, error) {
	rec, err := a.list(l)

	if err != nil {
		return 0, err
	}

	if !rec.bounded {
		return ilist.Unlimited, nil
	}

	return int(rec.capacity), nil
}

func (a *Arena[V]) Len(l Handle) (int, error) {
	rec, err := a.list(l)

	if err != nil {
		return 0, err
	}

	return int(rec.length), nil
}

func (a *Arena[V]) Head(l Handle) (Handle, error) {
	rec, err := a.list(l)

	if err != nil {
		return Nil, err
	}

	if rec.length == 0 {
		return Nil, ilist.ErrEmpty
	}

	return rec.head, nil
}

func (a *Arena[V]) Tail(l Handle) (Handle, error) {
	rec, err := a.list(l)

	if err != nil {
		return Nil, err
	}

	if rec.length == 0 {
		return Nil, ilist.ErrEmpty
	}

	return rec.tail, nil
}

func (rec *ListRecord) full() bool {
	return rec.bounded && int64(rec.length)+1 > rec.capacity
}
