package transform

// Message is the stream element a running job reports back on its channel.
// A job emits zero or more Progress values followed by exactly one terminal
// message: Compressed, Decompressed or Failed.
type Message interface {
	isMessage()
}

// Progress reports how far a job has read through its input. Counts are
// cumulative, so a later value supersedes any earlier one.
type Progress struct {
	BytesProcessed int64
	TotalBytes     int64
}

// Compressed is the terminal message of a successful compression job.
type Compressed struct {
	OriginalSize   int64
	CompressedSize int64
	OutputPath     string
}

// Decompressed is the terminal message of a successful decompression job.
type Decompressed struct {
	CompressedSize   int64
	DecompressedSize int64
	OutputPath       string
}

// Failed is the terminal message of a job that did not complete.
type Failed struct {
	Err error
}

func (Progress) isMessage()     {}
func (Compressed) isMessage()   {}
func (Decompressed) isMessage() {}
func (Failed) isMessage()       {}
