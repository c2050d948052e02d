package ilist

import (
	"github.com/webbmaffian/go-ilist/internal/utils"
)

// A Link is meant to live in caller-owned storage: a local, a global, an array
// element or a field of the caller's own record. The zero value is an
// unattached link without payload.
type Link struct {
	prev       *Link
	next       *Link
	list       *List
	payload    []byte
	payloadCap uint32
	dataSize   uint32
}

// Binds the link to a payload buffer and resets it to the unattached state.
// The payload is borrowed: it is never copied, resized nor released.
func (l *Link) Init(payload []byte, payloadCap uint32, dataSize uint32) error {
	if l == nil {
		return ErrInvalidReference
	}

	if dataSize > payloadCap {
		return ErrInvalidSize
	}

	if l.list != nil {
		return ErrAttached
	}

	l.prev, l.next, l.list = nil, nil, nil
	l.payload, l.payloadCap, l.dataSize = payload, payloadCap, dataSize
	return nil
}

// Binds the memory of val as the link payload, with both capacity and data
// size equal to the size of T.
func InitValue[T any](l *Link, val *T) error {
	if val == nil {
		return ErrInvalidReference
	}

	size := utils.SizeOf[T]()
	return l.Init(utils.PointerToBytes(val, size), uint32(size), uint32(size))
}

// Returns a typed view of the payload.
func Value[T any](l *Link) (*T, error) {
	if l == nil {
		return nil, ErrInvalidReference
	}

	if size := utils.SizeOf[T](); size > int(l.payloadCap) || size > len(l.payload) {
		return nil, ErrInvalidSize
	}

	return utils.BytesToPointer[T](l.payload), nil
}

func (l *Link) Payload() ([]byte, error) {
	if l == nil {
		return nil, ErrInvalidReference
	}

	return l.payload, nil
}

func (l *Link) PayloadCap() (uint32, error) {
	if l == nil {
		return 0, ErrInvalidReference
	}

	return l.payloadCap, nil
}

func (l *Link) DataSize() (uint32, error) {
	if l == nil {
		return 0, ErrInvalidReference
	}

	return l.dataSize, nil
}

// Returns the list currently holding the link.
func (l *Link) List() (*List, error) {
	if l == nil {
		return nil, ErrInvalidReference
	}

	if l.list == nil {
		return nil, ErrUnattached
	}

	return l.list, nil
}

// Returns the following link, or ErrAtTail at the end of the list.
func (l *Link) Next() (*Link, error) {
	if l == nil {
		return nil, ErrInvalidReference
	}

	if l.next == nil {
		return nil, ErrAtTail
	}

	return l.next, nil
}

// Returns the preceding link, or ErrAtHead at the start of the list.
func (l *Link) Prev() (*Link, error) {
	if l == nil {
		return nil, ErrInvalidReference
	}

	if l.prev == nil {
		return nil, ErrAtHead
	}

	return l.prev, nil
}

// Reads the first 4 payload bytes as an int32 in host byte order.
// Debugging aid only, the list itself never looks at payloads.
func (l *Link) DebugInt32() (int32, error) {
	v, err := Value[int32](l)

	if err != nil {
		return 0, err
	}

	return *v, nil
}

func (l *Link) reset() {
	l.prev, l.next, l.list = nil, nil, nil
}
