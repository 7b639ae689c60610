package models

import (
	"time"
)

// IssuedToken is a signed bearer token together with its expiry.
// Tokens are stateless: nothing about them is persisted.
type IssuedToken struct {
	Value     string
	ExpiresAt time.Time
}
