package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var graduateCmd = &cobra.Command{
	Use:   "graduate <type> <id>",
	Short: "Promote a graduation-eligible item to known",
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

		ok, err := a.Graduate(key)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s has not reached its graduation threshold", key)
		}
		fmt.Printf("%s graduated to known\n", key)
		return nil
	},
}
