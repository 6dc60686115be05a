package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/feedback"
	"github.com/abhisek/quizdeck/internal/questionbank"
	"github.com/abhisek/quizdeck/internal/store"
)

const defaultQuestionTarget = 10

const feedbackTimeout = 10 * time.Second

// runApp wires the store, question bank, picker, and feedback
// submitter, then starts the UI.
func runApp(cmd *cobra.Command) error {
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

	bank, err := loadBank()
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	target, _ := cmd.Flags().GetInt("questions")
	if target <= 0 {
		target = defaultQuestionTarget
	}

	return app.Run(app.Options{
		Repo:           repo,
		Bank:           bank,
		Picker:         questionbank.NewPicker(bank),
		Submitter:      newSubmitter(),
		QuestionTarget: target,
	})
}

// loadBank loads questions from QUIZDECK_QUESTIONS when set, falling
// back to the embedded bank.
func loadBank() (*questionbank.Bank, error) {
	if path := os.Getenv("QUIZDECK_QUESTIONS"); path != "" {
		return questionbank.LoadFile(path)
	}
	return questionbank.Load()
}

// newSubmitter returns an HTTP submitter when a feedback endpoint is
// configured, a no-op otherwise.
func newSubmitter() feedback.Submitter {
	if url := os.Getenv("QUIZDECK_FEEDBACK_URL"); url != "" {
		return feedback.NewHTTPSubmitter(url, feedbackTimeout)
	}
	return feedback.NopSubmitter{}
}
