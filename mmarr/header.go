package mmarr

import (
	"unsafe"

	"github.com/pkg/errors"
)

const magic = 0x6d6d6172 // "mmar"

func newHeader[T any, H any](lenCap ...int) *header[H] {
	var item T

	h := &header[H]{
		magic: magic,
	}
	h.headSize = int(unsafe.Sizeof(*h))
	h.itemSize = int(unsafe.Sizeof(item))

	if lenCap != nil {
		h.length = lenCap[0]

		if len(lenCap) > 1 {
			h.capacity = lenCap[1]
		} else {
			h.capacity = h.length
		}

		if h.capacity <= 0 {
			h.capacity = 1
		}

		if h.capacity < h.length {
			h.capacity = h.length
		}
	}

	return h
}

// Stored at the very start of the file, followed by `capacity` items.
type header[H any] struct {
	magic    uint32
	headSize int
	itemSize int
	length   int
	capacity int
	custom   H
}

func (h *header[H]) fileSize() int {
	return h.headSize + h.itemSize*h.capacity
}

// Checks a header read from disk against the one expected for the array's
// types. Length and capacity come from the file.
func (h *header[H]) validate(expected *header[H], fileSize int64) error {
	if h.magic != magic {
		return errors.New("not a memory-mapped array")
	}

	if h.headSize != expected.headSize {
		return errors.Errorf("invalid header size %d, expected %d", h.headSize, expected.headSize)
	}

	if h.itemSize != expected.itemSize {
		return errors.Errorf("invalid item size %d, expected %d", h.itemSize, expected.itemSize)
	}

	// A capacity can never be less than the length
	if h.length < 0 || h.capacity < h.length {
		return errors.New("invalid capacity")
	}

	if fileSize != int64(h.fileSize()) {
		return errors.New("invalid file size")
	}

	return nil
}
