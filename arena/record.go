package arena

// Link record. Unexported fields keep the layout stable on disk while only the
// arena can touch them.
type LinkRecord[V any] struct {
	prev       Handle
	next       Handle // Next free slot (+1) in Idx while unused.
	list       Handle
	gen        uint32
	payloadCap uint32
	dataSize   uint32
	used       bool
	val        V
}

type ListRecord struct {
	head     Handle
	tail     Handle
	capacity int64
	length   uint32
	gen      uint32
	nextFree uint32 // Next free slot + 1, while unused.
	bounded  bool
	used     bool
}

// Arena bookkeeping, kept in the custom header of the list storage so that it
// can be read without knowing the payload type.
type Header struct {
	linkCap   uint32 // Link records available.
	linkHigh  uint32 // Link records ever handed out.
	freeLinks uint32 // First free link slot + 1.
	links     uint32 // Live link records.
	listHigh  uint32
	freeLists uint32
	lists     uint32
}
