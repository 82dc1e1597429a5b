package transform

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// messageBuffer sizes the job channel. Progress messages are dropped when
// the buffer fills up, terminal messages never are.
const messageBuffer = 64

// Start launches job on its own goroutine and returns the channel it
// reports on. Start itself never blocks and performs no I/O.
//
// The channel carries zero or more Progress messages followed by exactly
// one terminal message (Compressed, Decompressed or Failed), then closes.
// Progress counts are cumulative, so dropped ones are harmless. A job runs
// to completion once started; abandoning the channel does not block it.
func Start(job Job) <-chan Message {
	ch := make(chan Message, messageBuffer)

	go func() {
		defer close(ch)

		log.Debugf("starting %s job: %s -> %s", job.Direction, job.InputPath, job.OutputPath)

		emit := func(p Progress) {
			// Keep one slot in reserve for the terminal message. Only
			// this goroutine sends, so the check cannot race.
			if len(ch) < cap(ch)-1 {
				ch <- p
			}
		}

		msg := execute(job, emit)
		if failed, ok := msg.(Failed); ok {
			log.Debugf("%s job failed: %v", job.Direction, failed.Err)
		} else {
			log.Debugf("%s job finished: %s", job.Direction, job.OutputPath)
		}
		ch <- msg
	}()

	return ch
}

// execute runs the job synchronously and returns its terminal message.
func execute(job Job, emit func(Progress)) Message {
	if filepath.Clean(job.OutputPath) == filepath.Clean(job.InputPath) {
		// An in-place job would truncate the file it is reading.
		return Failed{Err: errors.Errorf("input and output are the same file: %s", job.InputPath)}
	}

	in, err := os.Open(job.InputPath)
	if err != nil {
		return Failed{Err: errors.Wrap(err, "opening input file")}
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return Failed{Err: errors.Wrap(err, "reading input file size")}
	}
	if info.IsDir() {
		return Failed{Err: errors.Errorf("%s is a directory", job.InputPath)}
	}
	totalBytes := info.Size()
	if job.Direction == Decompress && totalBytes == 0 {
		return Failed{Err: errors.Errorf("%s is empty, not a zstd file", job.InputPath)}
	}

	out, err := os.Create(job.OutputPath)
	if err != nil {
		return Failed{Err: errors.Wrap(err, "creating output file")}
	}

	runErr := Run(job.Direction, in, out, job.Level, totalBytes, emit)
	closeErr := out.Close()
	if runErr != nil {
		// Partial output stays on disk, it is not valid until the job
		// reports success.
		return Failed{Err: runErr}
	}
	if closeErr != nil {
		return Failed{Err: errors.Wrap(closeErr, "closing output file")}
	}

	outInfo, err := os.Stat(job.OutputPath)
	if err != nil {
		return Failed{Err: errors.Wrap(err, "reading output file size")}
	}

	if job.Direction == Decompress {
		return Decompressed{
			CompressedSize:   totalBytes,
			DecompressedSize: outInfo.Size(),
			OutputPath:       job.OutputPath,
		}
	}
	return Compressed{
		OriginalSize:   totalBytes,
		CompressedSize: outInfo.Size(),
		OutputPath:     job.OutputPath,
	}
}
