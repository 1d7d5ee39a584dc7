package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var answerCmd = &cobra.Command{
	Use:   "answer <type> <id> <correct|wrong>",
	Short: "Record an answer for an item",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := parseKey(args)
		if err != nil {
			return err
		}
		var correct bool
		switch args[2] {
		case "correct":
			correct = true
		case "wrong":
		default:
			return fmt.Errorf("expected %q or %q, got %q", "correct", "wrong", args[2])
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.Answer(key, correct, nowUTC())
		if err != nil {
			return err
		}

		fmt.Printf("%s: interval=%dd ease=%.2f successes=%d fails=%d\n",
			key, p.Interval, p.EaseFactor, p.SuccessCount, p.FailCount)
		if p.NextReview != nil {
			fmt.Printf("next review: %s\n", p.NextReview.Format("2006-01-02"))
		}
		if p.GraduationEligible() {
			fmt.Println("graduation candidate — run `kotoba graduate` to promote")
		}
		return nil
	},
}
