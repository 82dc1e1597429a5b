package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/lepinkainen/squish/codec"
	"github.com/lepinkainen/squish/transform"
	"github.com/lepinkainen/squish/ui"
	"github.com/lepinkainen/squish/utils"
)

type CompressCmd struct {
	File   string `arg:"" name:"file" help:"File to compress" type:"existingfile"`
	Output string `short:"o" help:"Output path (defaults to the input with .zst appended)" type:"path"`
	Level  string `short:"l" help:"Compression level" default:"normal" enum:"fast,normal,best"`
	Quiet  bool   `short:"q" help:"Suppress the progress bar"`
}

func (cmd *CompressCmd) Run() error {
	level, err := codec.ParseLevel(cmd.Level)
	if err != nil {
		return err
	}

	output := cmd.Output
	if output == "" {
		output = codec.CompressedName(cmd.File)
	}

	if warning := utils.NetworkDriveWarning(cmd.File, output); warning != "" {
		fmt.Printf("⚠️  %s\n", warning)
	}

	msg, err := runJob(transform.Job{
		InputPath:  cmd.File,
		OutputPath: output,
		Direction:  transform.Compress,
		Level:      level,
	}, cmd.Quiet)
	if err != nil {
		return fmt.Errorf("compression failed: %w", err)
	}

	result, ok := msg.(transform.Compressed)
	if !ok {
		return fmt.Errorf("unexpected job result %T", msg)
	}

	ratio := 0.0
	if result.OriginalSize > 0 {
		ratio = float64(result.CompressedSize) / float64(result.OriginalSize) * 100
	}

	fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("✅ %s", result.OutputPath)))
	fmt.Printf("   📊 %s → %s (%.2f%% of original)\n",
		humanize.Bytes(uint64(result.OriginalSize)),
		humanize.Bytes(uint64(result.CompressedSize)),
		ratio)

	return nil
}
