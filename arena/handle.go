package arena

import "strconv"

// Handle addresses a link or list record in an arena. It stays valid until the
// record is freed: the generation is bumped on every allocation, so handles to
// a previous occupant of the same slot are rejected.
type Handle struct {
	Idx uint32
	Gen uint32
}

// The zero Handle never refers to a live record.
var Nil Handle

func (h Handle) IsNil() bool {
	return h.Gen == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "nil"
	}

	return strconv.FormatUint(uint64(h.Idx), 10) + "@" + strconv.FormatUint(uint64(h.Gen), 10)
}

func nextGen(gen uint32) uint32 {
	if gen++; gen == 0 {
		gen = 1
	}

	return gen
}
