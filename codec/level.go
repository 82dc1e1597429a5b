package codec

import (
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Level selects the speed/size trade-off for compression.
// Levels are ordered: Fast < Normal < Best.
type Level int

const (
	Fast Level = iota
	Normal
	Best
)

// Increase moves one step toward Best, saturating at Best.
func (l Level) Increase() Level {
	if l >= Best {
		return Best
	}
	return l + 1
}

// Decrease moves one step toward Fast, saturating at Fast.
func (l Level) Decrease() Level {
	if l <= Fast {
		return Fast
	}
	return l - 1
}

// String returns the flag-style name of the level.
func (l Level) String() string {
	switch l {
	case Fast:
		return "fast"
	case Best:
		return "best"
	default:
		return "normal"
	}
}

// Label returns the display name used by the level selector.
func (l Level) Label() string {
	switch l {
	case Fast:
		return "Fast"
	case Best:
		return "Best"
	default:
		return "Normal"
	}
}

// ParseLevel maps a level name from the command line to a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fast":
		return Fast, nil
	case "normal", "":
		return Normal, nil
	case "best":
		return Best, nil
	}
	return Normal, errors.Errorf("unknown compression level %q", name)
}

// encoderLevel maps a Level onto the zstd encoder presets.
func (l Level) encoderLevel() zstd.EncoderLevel {
	switch l {
	case Fast:
		return zstd.SpeedFastest
	case Best:
		return zstd.SpeedBestCompression
	default:
		return zstd.SpeedDefault
	}
}
