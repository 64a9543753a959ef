package report

import (
	"io"
	"strconv"

	"github.com/leakscan/leakscan/internal/types"
	"github.com/olekukonko/tablewriter"
)

// WriteTable renders the findings as a bordered table followed by a summary
// footer.
func WriteTable(w io.Writer, findings []types.Finding, opts Options) error {
	if len(findings) > 0 {
		tbl := tablewriter.NewWriter(w)
		tbl.Header([]string{"File", "Pattern", "Line #", "Line"})
		for _, f := range findings {
			if err := tbl.Append([]string{f.Path, f.Rule, strconv.Itoa(f.LineNumber), f.Line}); err != nil {
				return err
			}
		}
		if err := tbl.Render(); err != nil {
			return err
		}
	}
	Summary(w, findings, opts)
	return nil
}
