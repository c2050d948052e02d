package arena

import (
	"github.com/webbmaffian/go-ilist/ilist"
	"github.com/webbmaffian/go-ilist/internal/utils"
)

// Stores val as the link payload and resets the link to unattached. The
// payload capacity is the size of V.
func (a *Arena[V]) InitLink(h Handle, val V, dataSize uint32) error {
	rec, err := a.link(h)

	if err != nil {
		return err
	}

	payloadCap := uint32(utils.SizeOf[V]())

	if dataSize > payloadCap {
		return ilist.ErrInvalidSize
	}

	if !rec.list.IsNil() {
		return ilist.ErrAttached
	}

	rec.prev, rec.next, rec.list = Nil, Nil, Nil
	rec.val, rec.payloadCap, rec.dataSize = val, payloadCap, dataSize
	return nil
}

// Returns a pointer to the payload stored in the link record.
func (a *Arena[V]) Payload(h Handle) (*V, error) {
	rec, err := a.link(h)

	if err != nil {
		return nil, err
	}

	return &rec.val, nil
}

func (a *Arena[V]) PayloadCap(h Handle) (uint32, error) {
	rec, err := a.link(h)

	if err != nil {
		return 0, err
	}

	return rec.payloadCap, nil
}

func (a *Arena[V]) DataSize(h Handle) (uint32, error) {
	rec, err := a.link(h)

	if err != nil {
		return 0, err
	}

	return rec.dataSize, nil
}

func (a *Arena[V]) OwningList(h Handle) (Handle, error) {
	rec, err := a.link(h)

	if err != nil {
		return Nil, err
	}

	if rec.list.IsNil() {
		return Nil, ilist.ErrUnattached
	}

	return rec.list, nil
}

func (a *Arena[V]) Next(h Handle) (Handle, error) {
	rec, err := a.link(h)

	if err != nil {
		return Nil, err
	}

	if rec.next.IsNil() {
		return Nil, ilist.ErrAtTail
	}

	return rec.next, nil
}

func (a *Arena[V]) Prev(h Handle) (Handle, error) {
	rec, err := a.link(h)

	if err != nil {
		return Nil, err
	}

	if rec.prev.IsNil() {
		return Nil, ilist.ErrAtHead
	}

	return rec.prev, nil
}

// Debugging aid: the first 4 payload bytes as an int32 in host byte order.
func (a *Arena[V]) DebugInt32(h Handle) (int32, error) {
	rec, err := a.link(h)

	if err != nil {
		return 0, err
	}

	size := utils.SizeOf[V]()

	if size < 4 {
		return 0, ilist.ErrInvalidSize
	}

	return *utils.BytesToPointer[int32](utils.PointerToBytes(&rec.val, size)), nil
}
