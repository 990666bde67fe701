package models

import "time"

type TurnKind string

const (
	TurnQuestion TurnKind = "question"
	TurnAnswer   TurnKind = "answer"
)

// ChatTurn is one visible transcript line.
type ChatTurn struct {
	Kind      TurnKind  `json:"type"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
