package mmarr

import (
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
	"github.com/webbmaffian/go-ilist/internal/utils"
)

// Initialize a new memory-mapped array with a filepath, length and capacity.
// If file doesn't exist, capacity is mandatory. If left out, capacity will
// equal to the length. If capacity and/or length is provided, and the file
// already exists, they must match the values from the file.
// The provided type (`T`) MUST NOT contain any pointer nor slice.
func New[T any](filepath string, lenCap ...int) (arr *Array[T, struct{}], err error) {
	return NewWithHeader[T, struct{}](filepath, lenCap...)
}

// Same as New, with room for a custom header (`H`) stored before the items and
// reachable through Head. `H` has the same restrictions as `T`.
func NewWithHeader[T any, H any](filepath string, lenCap ...int) (arr *Array[T, H], err error) {
	arr = &Array[T, H]{
		head: newHeader[T, H](lenCap...),
	}

	if arr.head.itemSize <= 0 {
		return nil, errors.New("item must be at least 1 byte")
	}

	defer func() {
		if err != nil {
			arr.release()
			arr = nil
		}
	}()

	var created bool
	info, err := os.Stat(filepath)

	if err == nil {
		if arr.file, err = os.OpenFile(filepath, os.O_RDWR, 0); err != nil {
			return arr, errors.Wrapf(err, "failed to open %s", filepath)
		}

		var head *header[H]

		if head, err = arr.readHead(info.Size()); err != nil {
			return
		}

		if lenCap != nil && (head.length != arr.head.length || head.capacity != arr.head.capacity) {
			return arr, errors.Errorf("length and/or capacity mismatch: file has %d/%d", head.length, head.capacity)
		}
	} else if os.IsNotExist(err) {
		if arr.head.capacity == 0 {
			return arr, errors.New("capacity is mandatory")
		}

		if arr.file, err = os.Create(filepath); err != nil {
			return arr, errors.Wrapf(err, "failed to create %s", filepath)
		}

		if err = arr.file.Truncate(int64(arr.head.fileSize())); err != nil {
			return arr, errors.Wrapf(err, "failed to size %s", filepath)
		}

		created = true
	} else {
		return arr, errors.Wrapf(err, "failed to stat %s", filepath)
	}

	if arr.data, err = mmap.Map(arr.file, mmap.RDWR, 0); err != nil {
		return arr, errors.Wrapf(err, "failed to map %s", filepath)
	}

	if created {
		if copy(arr.data[:arr.head.headSize], utils.PointerToBytes(arr.head, arr.head.headSize)) != arr.head.headSize {
			return arr, errors.New("failed to write header")
		}

		if err = arr.Flush(); err != nil {
			return
		}
	}

	arr.head = utils.BytesToPointer[header[H]](arr.data[:arr.head.headSize])
	return
}

func OpenRO[T any](filepath string) (arr *Array[T, struct{}], err error) {
	return OpenROWithHeader[T, struct{}](filepath)
}

func OpenROWithHeader[T any, H any](filepath string) (arr *Array[T, H], err error) {
	arr = &Array[T, H]{
		head:     newHeader[T, H](),
		readonly: true,
	}

	if arr.head.itemSize <= 0 {
		return nil, errors.New("item must be at least 1 byte")
	}

	defer func() {
		if err != nil {
			arr.release()
			arr = nil
		}
	}()

	info, err := os.Stat(filepath)

	if err != nil {
		return arr, errors.Wrapf(err, "failed to stat %s", filepath)
	}

	if arr.file, err = os.OpenFile(filepath, os.O_RDONLY, 0); err != nil {
		return arr, errors.Wrapf(err, "failed to open %s", filepath)
	}

	if _, err = arr.readHead(info.Size()); err != nil {
		return
	}

	if arr.data, err = mmap.Map(arr.file, mmap.RDONLY, 0); err != nil {
		return arr, errors.Wrapf(err, "failed to map %s", filepath)
	}

	arr.head = utils.BytesToPointer[header[H]](arr.data[:arr.head.headSize])
	return
}

// Memory-mapped array
type Array[T any, H any] struct {
	data     mmap.MMap
	file     *os.File
	head     *header[H]
	readonly bool
}

func (arr *Array[T, H]) readHead(fileSize int64) (head *header[H], err error) {
	if fileSize < int64(arr.head.headSize) {
		return nil, errors.New("file too small")
	}

	if _, err = arr.file.Seek(0, io.SeekStart); err != nil {
		return
	}

	b := make([]byte, arr.head.headSize)

	if _, err = io.ReadFull(arr.file, b); err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}

	head = utils.BytesToPointer[header[H]](b)

	if err = head.validate(arr.head, fileSize); err != nil {
		return nil, err
	}

	return
}

func (arr *Array[T, H]) release() {
	if arr.data != nil {
		_ = arr.data.Unmap()
		arr.data = nil
	}

	if arr.file != nil {
		_ = arr.file.Close()
		arr.file = nil
	}
}

func (arr *Array[T, H]) Flush() error {
	if arr.readonly {
		return nil
	}

	return arr.data.Flush()
}

// Flushes, unmaps and closes the file. Pointers returned by Get, Head and
// Items are invalid afterwards.
func (arr *Array[T, H]) Close() (err error) {
	if err = arr.Flush(); err != nil {
		return
	}

	if err = arr.data.Unmap(); err != nil {
		return
	}

	arr.data = nil
	return arr.file.Close()
}

// Appends a copy of val, or returns -1 when the array is at capacity.
func (arr *Array[T, H]) Append(val *T) (pos int) {
	if arr.head.length >= arr.head.capacity {
		return -1
	}

	pos = arr.head.length
	arr.head.length++
	arr.Set(pos, val)
	return
}

func (arr *Array[T, H]) Set(pos int, val *T) {
	idx := arr.posToIdx(pos)
	copy(arr.data[idx:idx+arr.head.itemSize], utils.PointerToBytes(val, arr.head.itemSize))
}

// Returns a pointer into the mapped memory. Negative positions count from the end.
func (arr *Array[T, H]) Get(pos int) *T {
	idx := arr.posToIdx(pos)
	return utils.BytesToPointer[T](arr.data[idx : idx+arr.head.itemSize])
}

func (arr *Array[T, H]) Cap() int {
	return arr.head.capacity
}

func (arr *Array[T, H]) Len() int {
	return arr.head.length
}

func (arr *Array[T, H]) ItemSize() int {
	return arr.head.itemSize
}

func (arr *Array[T, H]) Items() []T {
	start := arr.head.headSize
	return utils.BytesToSlice[T](arr.data[start:start+arr.head.itemSize*arr.head.length], arr.head.length)
}

func (arr *Array[T, H]) Head() *H {
	return &arr.head.custom
}

func (arr *Array[T, H]) posToIdx(pos int) int {
	return arr.head.headSize + (((pos + arr.head.length) % arr.head.length) * arr.head.itemSize)
}
