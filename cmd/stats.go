package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuchen/hanzideck/internal/answer"
	"github.com/yuchen/hanzideck/internal/vocab"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime answer statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sums, err := st.AnswerLog().Summaries(cmd.Context())
		if err != nil {
			return fmt.Errorf("load summaries: %w", err)
		}
		if len(sums) == 0 {
			fmt.Println("No answers recorded yet.")
			return nil
		}

		fmt.Printf("%-14s %-9s %9s %6s\n", "LEVEL", "MODE", "CORRECT", "PCT")
		for _, s := range sums {
			pct := 0
			if s.Total > 0 {
				pct = 100 * s.Correct / s.Total
			}
			fmt.Printf("%-14s %-9s %4d/%-4d %5d%%\n",
				vocab.Level(s.Level).DisplayName(),
				answer.Mode(s.Mode).DisplayName(),
				s.Correct, s.Total, pct)
		}
		return nil
	},
}
