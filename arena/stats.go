package arena

import (
	"path/filepath"

	"github.com/webbmaffian/go-ilist/ilist"
	"github.com/webbmaffian/go-ilist/mmarr"
)

// Read-only view of an arena's bookkeeping. It does not depend on the payload
// type, so it can watch an arena owned by another process.
type Stats struct {
	lists Storage[ListRecord, Header]
	owned bool
}

type ListStats struct {
	Handle   Handle
	Len      int
	Capacity int
}

func (a *Arena[V]) Stats() *Stats {
	return &Stats{lists: a.lists}
}

// Opens the list file of a persisted arena read-only.
func OpenStats(dir string) (s *Stats, err error) {
	arr, err := mmarr.OpenROWithHeader[ListRecord, Header](filepath.Join(dir, listsFile))

	if err != nil {
		return
	}

	return &Stats{lists: arr, owned: true}, nil
}

// Releases the file opened by OpenStats. Stats taken from a live Arena are
// left alone: the arena owns that storage.
func (s *Stats) Close() error {
	if !s.owned {
		return nil
	}

	return s.lists.Close()
}

func (s *Stats) LinkCap() int {
	return int(s.lists.Head().linkCap)
}

// Link records currently handed out.
func (s *Stats) Links() int {
	return int(s.lists.Head().links)
}

func (s *Stats) ListCap() int {
	return s.lists.Len()
}

// List records currently handed out.
func (s *Stats) Lists() int {
	return int(s.lists.Head().lists)
}

// Calls cb for every live list, in slot order, until cb returns false.
func (s *Stats) EachList(cb func(ListStats) bool) {
	high := int(s.lists.Head().listHigh)

	for i := 0; i < high && i < s.lists.Len(); i++ {
		rec := s.lists.Get(i)

		if !rec.used {
			continue
		}

		ls := ListStats{
			Handle:   Handle{Idx: uint32(i), Gen: rec.gen},
			Len:      int(rec.length),
			Capacity: ilist.Unlimited,
		}

		if rec.bounded {
			ls.Capacity = int(rec.capacity)
		}

		if !cb(ls) {
			return
		}
	}
}
