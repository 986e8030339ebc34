package domain

import "errors"

var (
	ErrRewindNotFound = errors.New("rewind not found")
	ErrRewindExists   = errors.New("rewind already exists for this player, queue and year")
)
