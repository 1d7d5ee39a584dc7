package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/catalog"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Printf("current stage: %s\n\n", a.StageState.Current)
		stats := a.Stats()
		for _, t := range catalog.AllItemTypes() {
			ts := stats[t]
			fmt.Printf("%-8s unlearned=%-4d learning=%-4d known=%-4d\n",
				t, ts.Unlearned, ts.Learning, ts.Known)
			if len(ts.Eligible) > 0 {
				fmt.Printf("         graduation candidates: %s\n", strings.Join(ts.Eligible, ", "))
			}
		}

		fmt.Println()
		for _, d := range a.Gate.Definitions() {
			r := a.Gate.Progress(d.ID, a.Progress)
			fmt.Printf("stage %-6s %5.1f%% (%d/%d)\n", d.ID, r.Percent, r.Current, r.Target)
		}
		return nil
	},
}
