package arena

import (
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/webbmaffian/go-ilist/ilist"
	"github.com/webbmaffian/go-ilist/internal/utils"
	"github.com/webbmaffian/go-ilist/mmarr"
)

const (
	linksFile = "links.mmarr"
	listsFile = "lists.mmarr"
)

// Arena is the handle-based flavour of ilist: link and list records live in
// storage handed over at construction, and every operation addresses them by
// Handle. No operation allocates.
//
// An Arena is not safe for concurrent use.
type Arena[V any] struct {
	links Storage[LinkRecord[V], struct{}]
	lists Storage[ListRecord, Header]
	head  *Header
}

func New[V any](links Storage[LinkRecord[V], struct{}], lists Storage[ListRecord, Header]) (a *Arena[V], err error) {
	if links == nil || lists == nil {
		return nil, ilist.ErrInvalidReference
	}

	if links.Len() == 0 || lists.Len() == 0 {
		return nil, errors.New("storage must hold at least one link and one list")
	}

	if uint64(links.Len()) >= math.MaxUint32 || uint64(lists.Len()) >= math.MaxUint32 {
		return nil, errors.New("storage too large")
	}

	a = &Arena[V]{
		links: links,
		lists: lists,
		head:  lists.Head(),
	}

	if a.head.linkCap == 0 && a.head.linkHigh == 0 {
		a.head.linkCap = uint32(links.Len())
	}

	// Left behind by a previous run on the same storage
	if a.head.linkCap != uint32(links.Len()) || a.head.linkHigh > a.head.linkCap || a.head.listHigh > uint32(lists.Len()) {
		return nil, errors.Errorf("arena header (%d links, %d lists used) does not match storage (%d links, %d lists)",
			a.head.linkHigh, a.head.listHigh, links.Len(), lists.Len())
	}

	return
}

// Allocates storage for the given number of link and list records once, up front.
func NewMemory[V any](links int, lists int) (*Arena[V], error) {
	return New[V](
		NewMemoryStorage[LinkRecord[V], struct{}](make([]LinkRecord[V], links)),
		NewMemoryStorage[ListRecord, Header](make([]ListRecord, lists)),
	)
}

// Opens a file-backed arena in dir, creating it when missing. Zero counts open
// an existing arena with whatever it was created with. `V` MUST NOT contain
// any pointer nor slice.
func Open[V any](dir string, links int, lists int) (a *Arena[V], err error) {
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", dir)
	}

	var (
		linkArr *mmarr.Array[LinkRecord[V], struct{}]
		listArr *mmarr.Array[ListRecord, Header]
	)

	if linkArr, err = mmarr.New[LinkRecord[V]](filepath.Join(dir, linksFile), counts(links)...); err != nil {
		return nil, errors.Wrap(err, "links")
	}

	if listArr, err = mmarr.NewWithHeader[ListRecord, Header](filepath.Join(dir, listsFile), counts(lists)...); err != nil {
		linkArr.Close()
		return nil, errors.Wrap(err, "lists")
	}

	if a, err = New[V](linkArr, listArr); err != nil {
		linkArr.Close()
		listArr.Close()
		return nil, err
	}

	return
}

func counts(n int) []int {
	if n <= 0 {
		return nil
	}

	return []int{n}
}

func (a *Arena[V]) Flush() (err error) {
	if err = a.links.Flush(); err != nil {
		return
	}

	return a.lists.Flush()
}

func (a *Arena[V]) Close() error {
	err := a.links.Close()

	if listErr := a.lists.Close(); err == nil {
		err = listErr
	}

	return err
}

// Takes an unused link record. The link starts unattached with a zero payload.
func (a *Arena[V]) NewLink() (h Handle, err error) {
	var idx uint32

	if a.head.freeLinks != 0 {
		idx = a.head.freeLinks - 1
		a.head.freeLinks = a.at(Handle{Idx: idx}).next.Idx
	} else if a.head.linkHigh < a.head.linkCap {
		idx = a.head.linkHigh
		a.head.linkHigh++
	} else {
		return Nil, ErrExhausted
	}

	rec := a.at(Handle{Idx: idx})
	gen := nextGen(rec.gen)
	*rec = LinkRecord[V]{
		gen:        gen,
		payloadCap: uint32(utils.SizeOf[V]()),
		used:       true,
	}

	a.head.links++
	return Handle{Idx: idx, Gen: gen}, nil
}

// Returns a link record to the arena. Its handle, and every copy of it, turns
// stale.
func (a *Arena[V]) FreeLink(h Handle) error {
	rec, err := a.link(h)

	if err != nil {
		return err
	}

	if !rec.list.IsNil() {
		return ilist.ErrAttached
	}

	*rec = LinkRecord[V]{
		gen:  rec.gen,
		next: Handle{Idx: a.head.freeLinks},
	}

	a.head.freeLinks = h.Idx + 1
	a.head.links--
	return nil
}

// Takes an unused list record, empty and with unlimited capacity.
func (a *Arena[V]) NewList() (h Handle, err error) {
	var idx uint32

	if a.head.freeLists != 0 {
		idx = a.head.freeLists - 1
		a.head.freeLists = a.lists.Get(int(idx)).nextFree
	} else if int(a.head.listHigh) < a.lists.Len() {
		idx = a.head.listHigh
		a.head.listHigh++
	} else {
		return Nil, ErrExhausted
	}

	rec := a.lists.Get(int(idx))
	gen := nextGen(rec.gen)
	*rec = ListRecord{
		gen:  gen,
		used: true,
	}

	a.head.lists++
	return Handle{Idx: idx, Gen: gen}, nil
}

// Returns an empty list record to the arena.
func (a *Arena[V]) FreeList(h Handle) error {
	rec, err := a.list(h)

	if err != nil {
		return err
	}

	if rec.length != 0 {
		return ErrNotEmpty
	}

	*rec = ListRecord{
		gen:      rec.gen,
		nextFree: a.head.freeLists,
	}

	a.head.freeLists = h.Idx + 1
	a.head.lists--
	return nil
}

// Resolves a link handle, rejecting stale and out of range ones.
func (a *Arena[V]) link(h Handle) (*LinkRecord[V], error) {
	if h.IsNil() || h.Idx >= a.head.linkHigh {
		return nil, ilist.ErrInvalidReference
	}

	rec := a.at(h)

	if !rec.used || rec.gen != h.Gen {
		return nil, ilist.ErrInvalidReference
	}

	return rec, nil
}

func (a *Arena[V]) list(h Handle) (*ListRecord, error) {
	if h.IsNil() || h.Idx >= a.head.listHigh {
		return nil, ilist.ErrInvalidReference
	}

	rec := a.lists.Get(int(h.Idx))

	if !rec.used || rec.gen != h.Gen {
		return nil, ilist.ErrInvalidReference
	}

	return rec, nil
}

// Link record behind a handle that is known to be live.
func (a *Arena[V]) at(h Handle) *LinkRecord[V] {
	return a.links.Get(int(h.Idx))
}
