package arena

import (
	"github.com/webbmaffian/go-ilist/ilist"
)

func (a *Arena[V]) InsertFirst(l Handle, h Handle) error {
	list, link, err := a.resolve(l, h)

	if err != nil {
		return err
	}

	if err = admit(list, link); err != nil {
		return err
	}

	if list.length == 0 {
		attachSole(list, l, link, h)
		return nil
	}

	link.prev = Nil
	link.next = list.head
	a.at(list.head).prev = h
	list.head = h
	attach(list, l, link)
	return nil
}

func (a *Arena[V]) InsertLast(l Handle, h Handle) error {
	list, link, err := a.resolve(l, h)

	if err != nil {
		return err
	}

	if err = admit(list, link); err != nil {
		return err
	}

	if list.length == 0 {
		attachSole(list, l, link, h)
		return nil
	}

	link.next = Nil
	link.prev = list.tail
	a.at(list.tail).next = h
	list.tail = h
	attach(list, l, link)
	return nil
}

// Adds h right after ref, which must already be in the list.
func (a *Arena[V]) InsertAfter(l Handle, ref Handle, h Handle) error {
	list, refLink, link, err := a.resolveRef(l, ref, h)

	if err != nil {
		return err
	}

	if err = admit(list, link); err != nil {
		return err
	}

	link.prev = ref
	link.next = refLink.next

	if !refLink.next.IsNil() {
		a.at(refLink.next).prev = h
	} else {
		list.tail = h
	}

	refLink.next = h
	attach(list, l, link)
	return nil
}

// Adds h right before ref, which must already be in the list.
func (a *Arena[V]) InsertBefore(l Handle, ref Handle, h Handle) error {
	list, refLink, link, err := a.resolveRef(l, ref, h)

	if err != nil {
		return err
	}

	if err = admit(list, link); err != nil {
		return err
	}

	link.next = ref
	link.prev = refLink.prev

	if !refLink.prev.IsNil() {
		a.at(refLink.prev).next = h
	} else {
		list.head = h
	}

	refLink.prev = h
	attach(list, l, link)
	return nil
}

func (a *Arena[V]) resolve(l Handle, h Handle) (list *ListRecord, link *LinkRecord[V], err error) {
	if list, err = a.list(l); err != nil {
		return
	}

	link, err = a.link(h)
	return
}

func (a *Arena[V]) resolveRef(l Handle, ref Handle, h Handle) (list *ListRecord, refLink *LinkRecord[V], link *LinkRecord[V], err error) {
	if list, link, err = a.resolve(l, h); err != nil {
		return
	}

	if refLink, err = a.link(ref); err != nil {
		return
	}

	if list.length == 0 {
		err = ilist.ErrEmpty
	} else if refLink.list != l {
		err = ilist.ErrWrongList
	}

	return
}

func admit[V any](list *ListRecord, link *LinkRecord[V]) error {
	if !link.list.IsNil() {
		return ilist.ErrAttached
	}

	if list.full() {
		return ilist.ErrFull
	}

	return nil
}

func attachSole[V any](list *ListRecord, l Handle, link *LinkRecord[V], h Handle) {
	link.prev, link.next = Nil, Nil
	list.head, list.tail = h, h
	attach(list, l, link)
}

func attach[V any](list *ListRecord, l Handle, link *LinkRecord[V]) {
	link.list = l
	list.length++
}
