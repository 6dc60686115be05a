package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("init event log: %w", err)
		}

		stats, err := repo.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("read stats: %w", err)
		}

		var accuracy float64
		if stats.QuestionsAnswered > 0 {
			accuracy = float64(stats.CorrectAnswers) / float64(stats.QuestionsAnswered) * 100
		}

		fmt.Printf("Sessions played:     %d\n", stats.SessionsPlayed)
		fmt.Printf("Sessions completed:  %d\n", stats.SessionsCompleted)
		fmt.Printf("Questions answered:  %d\n", stats.QuestionsAnswered)
		fmt.Printf("Correct answers:     %d\n", stats.CorrectAnswers)
		fmt.Printf("Lifetime accuracy:   %.0f%%\n", accuracy)
		if stats.RatingsGiven > 0 {
			fmt.Printf("Average rating:      %.1f (%d given)\n", stats.AverageRating, stats.RatingsGiven)
		}

		if bank, err := loadBank(); err == nil {
			fmt.Println()
			for _, topic := range bank.Topics() {
				acc, err := repo.TopicAccuracy(cmd.Context(), topic)
				if err != nil {
					continue
				}
				fmt.Printf("  %-12s %.0f%%\n", topic, acc*100)
			}
		}
		return nil
	},
}
