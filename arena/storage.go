package arena

// Storage holds a fixed number of records plus a custom header. It is
// implemented by *mmarr.Array for file-backed arenas and by *Memory.
type Storage[T any, H any] interface {
	Get(pos int) *T
	Len() int
	Head() *H
	Flush() error
	Close() error
}

// In-memory storage over a caller-owned slice.
type Memory[T any, H any] struct {
	items []T
	head  H
}

func NewMemoryStorage[T any, H any](items []T) *Memory[T, H] {
	return &Memory[T, H]{
		items: items,
	}
}

func (m *Memory[T, H]) Get(pos int) *T {
	return &m.items[pos]
}

func (m *Memory[T, H]) Len() int {
	return len(m.items)
}

func (m *Memory[T, H]) Head() *H {
	return &m.head
}

func (m *Memory[T, H]) Flush() error {
	return nil
}

func (m *Memory[T, H]) Close() error {
	return nil
}
