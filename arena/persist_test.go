package arena

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/webbmaffian/go-ilist/ilist"
)

type entry struct {
	Key   uint64
	Value [16]byte
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	a, err := Open[entry](dir, 8, 2)
	require.NoError(t, err)

	l, err := a.NewList()
	require.NoError(t, err)
	require.NoError(t, a.SetCapacity(l, 5))

	var links []Handle

	for i := uint64(1); i <= 3; i++ {
		h, err := a.NewLink()
		require.NoError(t, err)
		require.NoError(t, a.InitLink(h, entry{Key: i}, 8))
		require.NoError(t, a.InsertFirst(l, h))
		links = append(links, h)
	}

	require.NoError(t, a.Close())

	t.Run("stats can be read without the payload type", func(t *testing.T) {
		s, err := OpenStats(dir)
		require.NoError(t, err)

		require.Equal(t, 8, s.LinkCap())
		require.Equal(t, 3, s.Links())
		require.Equal(t, 1, s.Lists())

		var lists []ListStats
		s.EachList(func(ls ListStats) bool {
			lists = append(lists, ls)
			return true
		})

		require.Equal(t, []ListStats{{Handle: l, Len: 3, Capacity: 5}}, lists)
		require.NoError(t, s.Close())
	})

	t.Run("reopened arena keeps its lists", func(t *testing.T) {
		a, err := Open[entry](dir, 0, 0)
		require.NoError(t, err)

		defer a.Close()

		require.NoError(t, a.Verify(l))

		var keys []uint64
		iter := a.Iterate(l)

		for iter.Next() {
			keys = append(keys, iter.Val().Key)
		}

		require.Equal(t, []uint64{3, 2, 1}, keys)

		require.NoError(t, a.Remove(l, links[1]))
		require.NoError(t, a.FreeLink(links[1]))

		_, err = a.Payload(links[1])
		require.ErrorIs(t, err, ilist.ErrInvalidReference)

		head, err := a.Head(l)
		require.NoError(t, err)
		require.Equal(t, links[2], head)
	})

	t.Run("counts must match an existing arena", func(t *testing.T) {
		_, err := Open[entry](dir, 16, 2)
		require.Error(t, err)
	})

	t.Run("payload type must match", func(t *testing.T) {
		_, err := Open[uint32](dir, 0, 0)
		require.Error(t, err)
	})
}

func BenchmarkInsertRemove(b *testing.B) {
	const dir = "bench.arena"
	a, err := Open[uint64](dir, 1024, 1)

	if err != nil {
		b.Fatal(err)
	}

	b.Cleanup(func() {
		a.Close()
		os.RemoveAll(dir)
	})

	l, err := a.NewList()

	if err != nil {
		b.Fatal(err)
	}

	links := make([]Handle, 1024)

	for i := range links {
		if links[i], err = a.NewLink(); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h := links[i%len(links)]

		if err = a.InsertLast(l, h); err != nil {
			b.Fatal(err)
		}

		if err = a.Remove(l, h); err != nil {
			b.Fatal(err)
		}
	}
}
