package arena

import (
	"github.com/webbmaffian/go-ilist/ilist"
)

// Unlinks h from the list and resets it to the state InitLink leaves it in.
func (a *Arena[V]) Remove(l Handle, h Handle) error {
	list, link, err := a.resolve(l, h)

	if err != nil {
		return err
	}

	if list.length == 0 {
		return ilist.ErrEmpty
	}

	if link.list != l {
		return ilist.ErrWrongList
	}

	if list.length == 1 {
		list.head, list.tail = Nil, Nil
		list.length = 0
		link.prev, link.next, link.list = Nil, Nil, Nil
		return nil
	}

	if !link.prev.IsNil() {
		a.at(link.prev).next = link.next
	} else {
		list.head = link.next
		a.at(list.head).prev = Nil
	}

	if !link.next.IsNil() {
		a.at(link.next).prev = link.prev
	} else {
		list.tail = link.prev
		a.at(list.tail).next = Nil
	}

	link.prev, link.next, link.list = Nil, Nil, Nil
	list.length--
	return nil
}
