package test

import "time"

type Test struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Passed    bool      `json:"passed"`
	UpdatedAt time.Time `json:"updatedAt"`
}
