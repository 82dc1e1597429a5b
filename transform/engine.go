package transform

import (
	"io"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/lepinkainen/squish/codec"
)

// chunkSize is the unit of work between progress reports.
const chunkSize = 64 * 1024

// Run streams src through the codec into dst, calling emit after every
// chunk with the cumulative number of source bytes consumed so far.
// Progress tracks the input side in both directions, so total should be
// the size of src.
func Run(direction Direction, src io.Reader, dst io.Writer, level codec.Level, total int64, emit func(Progress)) error {
	consumed := &countingReader{r: src}

	switch direction {
	case Compress:
		encoder, err := codec.NewWriter(dst, level)
		if err != nil {
			return err
		}
		if err := copyChunks(encoder, consumed, consumed, total, emit); err != nil {
			_ = encoder.Close()
			return err
		}
		// Close writes the frame trailer, the output is incomplete before it.
		return errors.Wrap(encoder.Close(), "finalizing encoder")

	case Decompress:
		decoder, err := codec.NewReader(consumed)
		if err != nil {
			return err
		}
		defer decoder.Close()
		return copyChunks(dst, decoder, consumed, total, emit)

	default:
		return errors.Errorf("unknown direction %d", direction)
	}
}

// copyChunks moves data from src to dst in chunkSize pieces, reporting the
// consumed reader's position after each write.
func copyChunks(dst io.Writer, src io.Reader, consumed *countingReader, total int64, emit func(Progress)) error {
	buf := make([]byte, chunkSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return errors.Wrap(werr, "writing output")
			}
			emit(Progress{BytesProcessed: consumed.Count(), TotalBytes: total})
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading input")
		}
	}
}

// countingReader counts bytes handed out by the wrapped reader. The zstd
// decoder may pull from it on its own goroutine, so the count is atomic.
type countingReader struct {
	r io.Reader
	n atomic.Int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.n.Add(int64(n))
	}
	return n, err
}

func (c *countingReader) Count() int64 {
	return c.n.Load()
}
