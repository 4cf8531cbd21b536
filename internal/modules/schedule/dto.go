package schedule

type CreateSlotRequest struct {
	RoomID     int64          `json:"room_id" binding:"required"`
	Date       string         `json:"date" binding:"required"`
	StartTime  string         `json:"start_time" binding:"required"`
	EndTime    string         `json:"end_time"`
	Duration   int            `json:"duration"`
	Attributes map[string]any `json:"attributes"`
}

// RescheduleSlotRequest carries the temporal fields to change; nil fields are
// left untouched.
type RescheduleSlotRequest struct {
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Duration  *int    `json:"duration"`
}

type SlotDetails struct {
	ID         int64          `json:"id"`
	RoomID     int64          `json:"room_id"`
	RoomName   string         `json:"room_name"`
	Date       string         `json:"date"`
	DayOfWeek  string         `json:"day_of_week"`
	StartTime  string         `json:"start_time"`
	EndTime    string         `json:"end_time"`
	Duration   int            `json:"duration"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

type CollisionResult struct {
	SlotID      int64 `json:"slot_id"`
	OtherSlotID int64 `json:"other_slot_id"`
	Colliding   bool  `json:"colliding"`
}

const (
	EventSlotCreated     = "slot_created"
	EventSlotRescheduled = "slot_rescheduled"
	EventSlotDeleted     = "slot_deleted"
)

// SlotEvent is broadcast over the websocket feed on every mutation.
type SlotEvent struct {
	Type   string       `json:"type"`
	SlotID int64        `json:"slot_id"`
	Slot   *SlotDetails `json:"slot,omitempty"`
}
