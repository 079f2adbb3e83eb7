package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yuchen/hanzideck/internal/vocab"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Manage custom cards from the command line",
}

var cardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		_, ledger, err := loadLedger(cmd.Context(), st)
		if err != nil {
			return err
		}
		if len(ledger.CustomCards) == 0 {
			fmt.Println("No custom cards yet. Add one with: hanzideck cards add <汉字> <pinyin> <english>")
			return nil
		}

		for i, c := range ledger.CustomCards {
			flag := ""
			if ledger.InReview(c.Key()) {
				flag = "  ★"
			}
			fmt.Printf("%3d. %s  %s — %s%s\n", i+1, c.Chinese, c.Pinyin, c.English, flag)
		}
		return nil
	},
}

var cardsAddCmd = &cobra.Command{
	Use:   "add <characters> <pinyin> <english>",
	Short: "Add a custom card",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo, ledger, err := loadLedger(cmd.Context(), st)
		if err != nil {
			return err
		}

		card, err := vocab.NewCustomCard(args[0], args[1], args[2], ledger.CustomCards)
		if err != nil {
			return err
		}
		ledger.AddCustomCard(card)
		if err := repo.Save(cmd.Context(), ledger); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}

		fmt.Printf("Added %s (%s — %s)\n", card.Chinese, card.Pinyin, card.English)
		return nil
	},
}

var cardsRemoveCmd = &cobra.Command{
	Use:   "remove <number>",
	Short: "Remove a custom card by its list number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid card number %q", args[0])
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

		card, ok := ledger.RemoveCustomCard(n - 1)
		if !ok {
			return fmt.Errorf("no card with number %d (run: hanzideck cards list)", n)
		}
		if err := repo.Save(cmd.Context(), ledger); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}

		fmt.Printf("Removed %s (%s — %s)\n", card.Chinese, card.Pinyin, card.English)
		return nil
	},
}

func init() {
	cardsCmd.AddCommand(cardsListCmd)
	cardsCmd.AddCommand(cardsAddCmd)
	cardsCmd.AddCommand(cardsRemoveCmd)
}
