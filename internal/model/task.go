package model

import "time"

// Task - единственная сущность API. В БД статус лежит как 0/1,
// наружу всегда отдается как boolean.
type Task struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    bool      `json:"status"`
	Deadline  string    `json:"deadline"` // yyyy-mm-dd
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
