package models

import (
	"time"
)

type User struct {
	Username       string
	HashedPassword string
	CreatedAt      time.Time
}
