package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/lepinkainen/squish/transform"
)

// runJob drives a job to completion on the terminal, rendering progress
// to stderr unless quiet is set. It returns the job's terminal message.
func runJob(job transform.Job, quiet bool) (transform.Message, error) {
	var bar *progressbar.ProgressBar

	for msg := range transform.Start(job) {
		switch msg := msg.(type) {
		case transform.Progress:
			if quiet || msg.TotalBytes <= 0 {
				continue
			}
			if bar == nil {
				bar = progressbar.DefaultBytes(msg.TotalBytes,
					fmt.Sprintf("%sing %s", job.Direction, filepath.Base(job.InputPath)))
			}
			_ = bar.Set64(msg.BytesProcessed)

		case transform.Failed:
			if bar != nil {
				_ = bar.Exit()
			}
			return nil, msg.Err

		default:
			if bar != nil {
				_ = bar.Finish()
			}
			return msg, nil
		}
	}

	return nil, fmt.Errorf("job ended without a result")
}
