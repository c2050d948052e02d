package ilist

// Iterator walks a list in one direction. The current link may be removed
// from the list between calls to Next.
type Iterator struct {
	link     *Link
	upcoming *Link
	reverse  bool
}

// Iterates from head to tail.
func (ls *List) Iterate() Iterator {
	if ls == nil {
		return Iterator{}
	}

	return Iterator{upcoming: ls.head}
}

// Iterates from tail to head.
func (ls *List) IterateReverse() Iterator {
	if ls == nil {
		return Iterator{}
	}

	return Iterator{upcoming: ls.tail, reverse: true}
}

func (iter *Iterator) Next() bool {
	if iter.upcoming == nil {
		iter.link = nil
		return false
	}

	iter.link = iter.upcoming

	if iter.reverse {
		iter.upcoming = iter.link.prev
	} else {
		iter.upcoming = iter.link.next
	}

	return true
}

func (iter *Iterator) Link() *Link {
	return iter.link
}
