package codec

import (
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Extension is the filename suffix for compressed output.
const Extension = ".zst"

// NewWriter wraps w in a zstd encoder at the given level. The returned
// writer must be closed to flush the frame trailer; until then the bytes
// written to w do not form a complete frame and w's size undercounts.
// Zero-length input still produces a complete frame on Close, so the
// output is always a valid zstd file.
func NewWriter(w io.Writer, level Level) (io.WriteCloser, error) {
	encoder, err := zstd.NewWriter(w,
		zstd.WithEncoderLevel(level.encoderLevel()),
		zstd.WithZeroFrames(true))
	if err != nil {
		return nil, errors.Wrap(err, "creating zstd encoder")
	}
	return encoder, nil
}

// NewReader wraps r in a zstd decoder. Input that does not start with a
// zstd frame is rejected on the first read, before any decoded bytes are
// returned.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "creating zstd decoder")
	}
	return decoder.IOReadCloser(), nil
}
