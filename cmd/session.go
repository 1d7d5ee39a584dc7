package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Build and print today's study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		seed, _ := cmd.Flags().GetInt64("seed")
		if seed == 0 {
			seed = nowUTC().UnixNano()
		}

		s := a.BuildSession(nowUTC(), seed)
		printSession(s)
		return nil
	},
}

func init() {
	sessionCmd.Flags().Int64("seed", 0, "Seed for review shuffling (0 = time-based)")
}

func printSession(s session.Session) {
	fmt.Printf("session %s  stage=%s\n", s.ID, s.StageID)
	if s.Milestone != nil {
		fmt.Printf("milestone: %d/%d (%.1f%%)\n", s.Milestone.Current, s.Milestone.Target, s.Milestone.Percent)
	}
	if len(s.Entries) == 0 {
		fmt.Println("nothing to study right now")
		return
	}
	for i, e := range s.Entries {
		fmt.Printf("%3d. %-14s %s\n", i+1, e.Kind, e.Key)
	}
}
