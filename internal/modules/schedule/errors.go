package schedule

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrRoomNotFound = errors.New("room not found")
	ErrSlotNotFound = errors.New("slot not found")
	ErrSlotConflict = errors.New("slot collides with an existing slot")
)
