package session

import (
	"github.com/abhisek/quizdeck/internal/questionbank"
)

// sessionStartedMsg is sent once the start event has been persisted.
type sessionStartedMsg struct {
	Err error
}

// questionReadyMsg is sent when the next question has been picked.
type questionReadyMsg struct {
	Question *questionbank.Question
	Err      error
}
