package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/MitchellWeg/PGN-Parser/internal/parser"
)

// printSummary writes the per-window table and the totals of a run.
func printSummary(w io.Writer, s *runSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Window", "Range", "Records", "Partial", "Malformed", "Unknown tags", "Bytes", "Elapsed"})
	table.SetBorder(true)

	for _, res := range s.Windows {
		status := res.Window.String()
		if res.Err != nil {
			status += " (" + res.Err.Error() + ")"
		}
		table.Append([]string{
			strconv.Itoa(res.Index),
			status,
			humanize.Comma(res.Stats.Records),
			humanize.Comma(res.Stats.Partial),
			humanize.Comma(res.Stats.Malformed),
			humanize.Comma(res.Stats.UnknownTags),
			humanize.Bytes(uint64(res.Stats.Bytes)),
			res.Elapsed.Round(time.Millisecond).String(),
		})
	}
	table.SetFooter(totalsRow(s.Stats, len(s.Windows)))

	fmt.Fprintf(w, "\n%s -> %s (%s)\n", s.Input, s.Output, humanize.Bytes(uint64(s.Size)))
	table.Render()
	fmt.Fprintf(w, "written %s, duplicates %s, in %s\n",
		humanize.Comma(s.Written),
		humanize.Comma(s.Duplicates),
		s.Elapsed.Round(time.Millisecond),
	)
	for _, f := range s.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
}

func totalsRow(st parser.Stats, windows int) []string {
	return []string{
		"Total",
		strconv.Itoa(windows) + " windows",
		humanize.Comma(st.Records),
		humanize.Comma(st.Partial),
		humanize.Comma(st.Malformed),
		humanize.Comma(st.UnknownTags),
		humanize.Bytes(uint64(st.Bytes)),
		"",
	}
}
