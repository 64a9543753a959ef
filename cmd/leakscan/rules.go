package leakscan

import (
	"os"

	"github.com/leakscan/leakscan/internal/rules"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the built-in secret rules",
		RunE: func(_ *cobra.Command, _ []string) error {
			tbl := tablewriter.NewWriter(os.Stdout)
			tbl.Header([]string{"Name", "Pattern"})
			for _, r := range rules.Builtins() {
				if err := tbl.Append([]string{r.Name, r.Pattern}); err != nil {
					return err
				}
			}
			return tbl.Render()
		},
	}
	rootCmd.AddCommand(cmd)
}
