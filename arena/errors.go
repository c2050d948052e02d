package arena

type arenaError string

var _ error = arenaError("")

func (err arenaError) Error() string {
	return string(err)
}

const (
	ErrExhausted = arenaError("arena has no free records")
	ErrNotEmpty  = arenaError("list still holds links")
)
