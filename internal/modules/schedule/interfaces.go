package schedule

import (
	"context"

	"roomsched/internal/domain"
	"roomsched/internal/repository"
)

type SlotRepository interface {
	Create(ctx context.Context, rec *repository.SlotRecord) error
	GetByID(ctx context.Context, id int64) (*repository.SlotRecord, error)
	ListByRoomAndDate(ctx context.Context, roomID int64, date string) ([]repository.SlotRecord, error)
	Update(ctx context.Context, rec *repository.SlotRecord) error
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// EventSink receives slot change events. The websocket feed hub satisfies it.
type EventSink interface {
	Broadcast(message interface{})
}
