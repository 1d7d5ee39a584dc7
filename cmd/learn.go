package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn <type> <id>",
	Short: "Draw an item into study",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := parseKey(args)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Learn(key); err != nil {
			return err
		}

		// Surface advisory prerequisites even in soft mode.
		if missing := a.Resolver.MissingPrerequisites(key, a.Progress); len(missing) > 0 {
			fmt.Printf("note: %d prerequisite(s) not yet studied:\n", len(missing))
			for _, m := range missing {
				fmt.Printf("  %s\n", m)
			}
		}
		fmt.Printf("%s is now in the learning stack\n", key)
		return nil
	},
}
