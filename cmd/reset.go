package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset study progress",
	Long:  "Clears deck positions, scores and the review set. Custom cards are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force && !confirm("Reset all study progress?") {
			fmt.Println("Aborted.")
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo, ledger, err := loadLedger(cmd.Context(), st)
		if err != nil {
			return err
		}

		ledger.Reset()
		if err := repo.Save(cmd.Context(), ledger); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}

		fmt.Println("Progress reset. Custom cards were kept.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "skip the confirmation prompt")
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
