package ilist

import (
	"github.com/pkg/errors"
)

// Walks the whole list and returns an error wrapping ErrCorrupt for the first
// broken structural invariant found. Runs in O(n).
func (ls *List) Verify() error {
	if ls == nil {
		return ErrInvalidReference
	}

	if (ls.head == nil) != (ls.tail == nil) || (ls.head == nil) != (ls.length == 0) {
		return errors.Wrapf(ErrCorrupt, "head %p, tail %p, length %d", ls.head, ls.tail, ls.length)
	}

	if ls.bounded && ls.length > ls.capacity {
		return errors.Wrapf(ErrCorrupt, "length %d exceeds capacity %d", ls.length, ls.capacity)
	}

	if ls.head != nil && ls.head.prev != nil {
		return errors.Wrap(ErrCorrupt, "head has a predecessor")
	}

	var (
		prev  *Link
		count int
	)

	for link := ls.head; link != nil; link = link.next {
		if count++; count > ls.length {
			return errors.Wrapf(ErrCorrupt, "more than %d links reachable from head", ls.length)
		}

		if link.list != ls {
			return errors.Wrapf(ErrCorrupt, "link %d is owned by another list", count-1)
		}

		if link.prev != prev {
			return errors.Wrapf(ErrCorrupt, "link %d does not point back at its predecessor", count-1)
		}

		if link.dataSize > link.payloadCap {
			return errors.Wrapf(ErrCorrupt, "link %d holds %d bytes in a %d byte payload", count-1, link.dataSize, link.payloadCap)
		}

		prev = link
	}

	if count != ls.length {
		return errors.Wrapf(ErrCorrupt, "%d links reachable from head, length is %d", count, ls.length)
	}

	if prev != ls.tail {
		return errors.Wrap(ErrCorrupt, "last reachable link is not the tail")
	}

	return nil
}
