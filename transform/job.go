package transform

import "github.com/lepinkainen/squish/codec"

// Direction selects which way a job moves data through the codec.
type Direction int

const (
	Compress Direction = iota
	Decompress
)

func (d Direction) String() string {
	switch d {
	case Compress:
		return "compress"
	case Decompress:
		return "decompress"
	default:
		return "unknown"
	}
}

// Job describes a single file transformation.
type Job struct {
	InputPath  string
	OutputPath string
	Direction  Direction
	Level      codec.Level
}
