package leakscan

import (
	"fmt"

	"github.com/leakscan/leakscan/internal/update"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the leakscan version",
		RunE: func(_ *cobra.Command, _ []string) error {
			if flagSelfUpdate {
				return selfUpdate()
			}
			fmt.Println("leakscan", version)
			if latest, newer, _ := update.Check(version, flagNoUpdateCheck); newer {
				fmt.Printf("a newer release is available: %s (run with --self-update to install)\n", latest)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
