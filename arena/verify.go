package arena

import (
	"github.com/pkg/errors"
	"github.com/webbmaffian/go-ilist/ilist"
)

// Walks the list and returns an error wrapping ilist.ErrCorrupt for the first
// broken invariant: dangling or stale handles included.
func (a *Arena[V]) Verify(l Handle) error {
	list, err := a.list(l)

	if err != nil {
		return err
	}

	if list.head.IsNil() != list.tail.IsNil() || list.head.IsNil() != (list.length == 0) {
		return errors.Wrapf(ilist.ErrCorrupt, "head %s, tail %s, length %d", list.head, list.tail, list.length)
	}

	if list.bounded && int64(list.length) > list.capacity {
		return errors.Wrapf(ilist.ErrCorrupt, "length %d exceeds capacity %d", list.length, list.capacity)
	}

	var (
		prev  Handle
		count uint32
	)

	for h := list.head; !h.IsNil(); {
		link, err := a.link(h)

		if err != nil {
			return errors.Wrapf(ilist.ErrCorrupt, "link %d (%s) is not live", count, h)
		}

		if count++; count > list.length {
			return errors.Wrapf(ilist.ErrCorrupt, "more than %d links reachable from head", list.length)
		}

		if link.list != l {
			return errors.Wrapf(ilist.ErrCorrupt, "link %s is owned by list %s", h, link.list)
		}

		if link.prev != prev {
			return errors.Wrapf(ilist.ErrCorrupt, "link %s points back at %s instead of %s", h, link.prev, prev)
		}

		if link.dataSize > link.payloadCap {
			return errors.Wrapf(ilist.ErrCorrupt, "link %s holds %d bytes in a %d byte payload", h, link.dataSize, link.payloadCap)
		}

		prev, h = h, link.next
	}

	if count != list.length {
		return errors.Wrapf(ilist.ErrCorrupt, "%d links reachable from head, length is %d", count, list.length)
	}

	if prev != list.tail {
		return errors.Wrapf(ilist.ErrCorrupt, "last reachable link %s is not the tail %s", prev, list.tail)
	}

	return nil
}
