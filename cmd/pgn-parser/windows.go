package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/MitchellWeg/PGN-Parser/internal/chunk"
)

func windowsCmd(f *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "windows <input.pgn>",
		Short: "Print how the input would be split into windows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}

			h, err := chunk.Open(args[0], chunk.Options{
				Threads:    cfg.Threads,
				LossySeams: cfg.LossySeams,
			})
			if err != nil {
				return err
			}
			defer h.Close()

			out := cmd.OutOrStdout()
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Window", "Min", "Max", "Size"})
			table.SetBorder(true)
			for _, w := range h.Windows() {
				size := w.Size()
				if !w.Bounded() {
					size = h.TotalSize() - w.Min
				}
				table.Append([]string{
					strconv.Itoa(w.Index),
					strconv.FormatInt(w.Min, 10),
					strconv.FormatInt(w.Min+size, 10),
					humanize.Bytes(uint64(size)),
				})
			}

			fmt.Fprintf(out, "%s: %s in %d windows\n", args[0], humanize.Bytes(uint64(h.TotalSize())), len(h.Windows()))
			table.Render()
			return nil
		},
	}
}
