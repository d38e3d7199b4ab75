package utils

import (
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
)

// GenKSUID returns a time-sortable id, used for page sessions.
func GenKSUID() string {
	return ksuid.New().String()
}

func GenUUID() string {
	return uuid.NewString()
}
