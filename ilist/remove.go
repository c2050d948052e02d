package ilist

// Unlinks the link from the list and resets it to the state Link.Init leaves
// it in, so it can be inserted again right away.
func (ls *List) Remove(link *Link) error {
	if ls == nil || link == nil {
		return ErrInvalidReference
	}

	if ls.length == 0 {
		return ErrEmpty
	}

	if link.list != ls {
		return ErrWrongList
	}

	if ls.length == 1 {
		ls.head, ls.tail = nil, nil
		ls.length = 0
		link.reset()
		return nil
	}

	if link.prev != nil {
		link.prev.next = link.next
	} else {
		ls.head = link.next
		ls.head.prev = nil
	}

	if link.next != nil {
		link.next.prev = link.prev
	} else {
		ls.tail = link.prev
		ls.tail.next = nil
	}

	link.reset()
	ls.length--
	return nil
}
