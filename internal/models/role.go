package models

import "time"

type Role struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Department   *string   `json:"department"`
	Location     *string   `json:"location"`
	Level        *string   `json:"level"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	CreatedAt    time.Time `json:"created_at"`
}
