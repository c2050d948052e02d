package ilist

type ilistError string

var _ error = ilistError("")

func (err ilistError) Error() string {
	return string(err)
}

const (
	ErrInvalidReference = ilistError("invalid link or list reference")
	ErrInvalidSize      = ilistError("invalid size")
	ErrInvalidInput     = ilistError("invalid input")
	ErrFull             = ilistError("list is full")
	ErrEmpty            = ilistError("list is empty")
	ErrWrongList        = ilistError("link belongs to another list")
	ErrAtHead           = ilistError("no previous link")
	ErrAtTail           = ilistError("no next link")
	ErrUnattached       = ilistError("link is not in a list")
	ErrAttached         = ilistError("link is already in a list")
	ErrCorrupt          = ilistError("list is corrupt")
)

// Capacity value that lets a list grow without bound.
const Unlimited = -1
