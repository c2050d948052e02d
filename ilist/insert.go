package ilist

// Adds the link at the start of the list.
func (ls *List) InsertFirst(link *Link) (err error) {
	if ls == nil || link == nil {
		return ErrInvalidReference
	}

	if err = ls.admit(link); err != nil {
		return
	}

	if ls.length == 0 {
		ls.attachSole(link)
		return
	}

	link.prev = nil
	link.next = ls.head
	ls.head.prev = link
	ls.head = link
	ls.attach(link)
	return
}

// Adds the link at the end of the list.
func (ls *List) InsertLast(link *Link) (err error) {
	if ls == nil || link == nil {
		return ErrInvalidReference
	}

	if err = ls.admit(link); err != nil {
		return
	}

	if ls.length == 0 {
		ls.attachSole(link)
		return
	}

	link.next = nil
	link.prev = ls.tail
	ls.tail.next = link
	ls.tail = link
	ls.attach(link)
	return
}

// Adds link right after ref, which must already be in the list.
func (ls *List) InsertAfter(ref *Link, link *Link) (err error) {
	if ls == nil || ref == nil || link == nil {
		return ErrInvalidReference
	}

	if err = ls.checkRef(ref); err != nil {
		return
	}

	if err = ls.admit(link); err != nil {
		return
	}

	link.prev = ref
	link.next = ref.next

	// Without a successor the new link becomes the tail.
	if ref.next != nil {
		ref.next.prev = link
	} else {
		ls.tail = link
	}

	ref.next = link
	ls.attach(link)
	return
}

// Adds link right before ref, which must already be in the list.
func (ls *List) InsertBefore(ref *Link, link *Link) (err error) {
	if ls == nil || ref == nil || link == nil {
		return ErrInvalidReference
	}

	if err = ls.checkRef(ref); err != nil {
		return
	}

	if err = ls.admit(link); err != nil {
		return
	}

	link.next = ref
	link.prev = ref.prev

	// Without a predecessor the new link becomes the head.
	if ref.prev != nil {
		ref.prev.next = link
	} else {
		ls.head = link
	}

	ref.prev = link
	ls.attach(link)
	return
}

func (ls *List) checkRef(ref *Link) error {
	if ls.length == 0 {
		return ErrEmpty
	}

	if ref.list != ls {
		return ErrWrongList
	}

	return nil
}

// Checks run before any mutation, so a rejected insert changes nothing.
func (ls *List) admit(link *Link) error {
	if link.list != nil {
		return ErrAttached
	}

	if ls.full() {
		return ErrFull
	}

	return nil
}

func (ls *List) attachSole(link *Link) {
	link.prev, link.next = nil, nil
	ls.head, ls.tail = link, link
	ls.attach(link)
}

func (ls *List) attach(link *Link) {
	link.list = ls
	ls.length++
}
