package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/woztools/pkg/mozmon"
	"os"
	"strconv"
)

const DefaultPath = "a.o65"

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mozmon [FILE]",
		Short: "Dump a binary as lines to type into the Woz monitor",
		Long: `Prints FILE (default a.o65) as rows of eight bytes, each prefixed with the
address the row loads at.

Intel HEX images (--format ihex) are dumped segment by segment at their own
load addresses and ignore --start.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCmd,
	}

	cmd.Flags().String("start", fmt.Sprintf("0x%04X", mozmon.DefaultStart), "address of the first byte")
	cmd.Flags().StringP("format", "f", string(mozmon.Binary), `input format, "bin" or "ihex"`)

	return cmd
}

func runCmd(cmd *cobra.Command, args []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	path := DefaultPath
	if len(args) == 1 {
		path = args[0]
	}

	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	format, err := mozmon.ParseInputFormat(formatFlag)
	if err != nil {
		return err
	}

	startFlag, err := cmd.Flags().GetString("start")
	if err != nil {
		return err
	}
	// Base 0 accepts 0x280, 0o1200 and 640 alike.
	start, err := strconv.ParseUint(startFlag, 0, 32)
	if err != nil {
		return fmt.Errorf("parsing --start: %w", err)
	}

	var out string
	switch format {
	case mozmon.Binary:
		out, err = mozmon.DumpFile(path, uint32(start))
	case mozmon.IntelHex:
		out, err = dumpIntelHexFile(path)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func dumpIntelHexFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return mozmon.DumpIntelHex(f)
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
