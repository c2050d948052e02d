package arena

// Iterator walks a list in one direction. The current link may be removed
// between calls to Next.
type Iterator[V any] struct {
	arena    *Arena[V]
	handle   Handle
	upcoming Handle
	reverse  bool
}

// Iterates from head to tail. An invalid list handle yields nothing.
func (a *Arena[V]) Iterate(l Handle) Iterator[V] {
	rec, err := a.list(l)

	if err != nil {
		return Iterator[V]{arena: a}
	}

	return Iterator[V]{arena: a, upcoming: rec.head}
}

// Iterates from tail to head.
func (a *Arena[V]) IterateReverse(l Handle) Iterator[V] {
	rec, err := a.list(l)

	if err != nil {
		return Iterator[V]{arena: a}
	}

	return Iterator[V]{arena: a, upcoming: rec.tail, reverse: true}
}

func (iter *Iterator[V]) Next() bool {
	if iter.upcoming.IsNil() {
		iter.handle = Nil
		return false
	}

	iter.handle = iter.upcoming
	rec := iter.arena.at(iter.handle)

	if iter.reverse {
		iter.upcoming = rec.prev
	} else {
		iter.upcoming = rec.next
	}

	return true
}

func (iter *Iterator[V]) Handle() Handle {
	return iter.handle
}

func (iter *Iterator[V]) Val() *V {
	return &iter.arena.at(iter.handle).val
}
