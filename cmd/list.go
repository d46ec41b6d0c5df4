package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rybkr/entropy-sudoku/internal/store"
)

var listStore string

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved puzzles",
		RunE:  runList,
	}

	listCmd.Flags().StringVar(&listStore, "store", "./puzzles", "Directory of saved puzzles")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	metas, err := store.NewFS(listStore).List()
	if err != nil {
		return fmt.Errorf("failed to list puzzles: %w", err)
	}
	if len(metas) == 0 {
		fmt.Println("no saved puzzles")
		return nil
	}

	for _, m := range metas {
		created := time.Unix(m.CreatedAt, 0).Format(time.DateTime)
		fmt.Printf("%s  hints=%-2d  created=%s\n", m.ID, m.Hints, created)
	}
	return nil
}
