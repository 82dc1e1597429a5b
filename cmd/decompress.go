package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/lepinkainen/squish/codec"
	"github.com/lepinkainen/squish/transform"
	"github.com/lepinkainen/squish/ui"
	"github.com/lepinkainen/squish/utils"
)

type DecompressCmd struct {
	File   string `arg:"" name:"file" help:"File to decompress" type:"existingfile"`
	Output string `short:"o" help:"Output path (defaults to the input without .zst)" type:"path"`
	Quiet  bool   `short:"q" help:"Suppress the progress bar"`
}

func (cmd *DecompressCmd) Run() error {
	output := cmd.Output
	if output == "" {
		output = codec.DecompressedName(cmd.File)
	}

	if warning := utils.NetworkDriveWarning(cmd.File, output); warning != "" {
		fmt.Printf("⚠️  %s\n", warning)
	}

	msg, err := runJob(transform.Job{
		InputPath:  cmd.File,
		OutputPath: output,
		Direction:  transform.Decompress,
	}, cmd.Quiet)
	if err != nil {
		return fmt.Errorf("decompression failed: %w", err)
	}

	result, ok := msg.(transform.Decompressed)
	if !ok {
		return fmt.Errorf("unexpected job result %T", msg)
	}

	fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("✅ %s", result.OutputPath)))
	fmt.Printf("   📦 %s → 📊 %s\n",
		humanize.Bytes(uint64(result.CompressedSize)),
		humanize.Bytes(uint64(result.DecompressedSize)))

	return nil
}
