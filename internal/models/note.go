package models

import (
	"time"
)

type Note struct {
	ID            string
	OwnerUsername string
	Body          string
	CreatedAt     time.Time
}
