package domain

import "time"

// SymptomLog records a single free-text symptom submission and the summary
// generated for it. Logs are immutable once created.
type SymptomLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Input     string    `json:"input"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// MonthlyCount is one analytics bucket: a three-letter month label and the
// number of logs the user created in that month of the current year.
type MonthlyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
