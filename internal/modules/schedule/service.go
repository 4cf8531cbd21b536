package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"roomsched/internal/domain"
	"roomsched/internal/pkg/timeutil"
	"roomsched/internal/repository"
)

type Service struct {
	slots  SlotRepository
	rooms  RoomRepository
	events EventSink
	times  *timeutil.Converter
}

// NewService wires the schedule service. events may be nil when no feed is
// attached; times may be nil to default to UTC.
func NewService(slots SlotRepository, rooms RoomRepository, events EventSink, times *timeutil.Converter) *Service {
	if times == nil {
		times = timeutil.UTC
	}
	return &Service{
		slots:  slots,
		rooms:  rooms,
		events: events,
		times:  times,
	}
}

// CreateSlot validates the requested interval, rejects collisions with the
// room's existing slots and persists the result.
func (s *Service) CreateSlot(ctx context.Context, req CreateSlotRequest) (*SlotDetails, error) {
	day, err := s.times.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	slot, err := domain.NewSlot(domain.SlotConfig{
		Date:       day,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Duration:   req.Duration,
		Location:   room,
		Attributes: req.Attributes,
		Times:      s.times,
	})
	if err != nil {
		return nil, err
	}

	if err := s.checkCollisions(ctx, slot, req.RoomID, 0); err != nil {
		return nil, err
	}

	rec := s.recordFromSlot(slot, req.RoomID, 0)
	if err := s.slots.Create(ctx, rec); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_slot_overlap" {
				return nil, ErrSlotConflict
			}
		}
		return nil, err
	}

	details := s.detailsFromSlot(slot, rec.ID, req.RoomID, room.Name)
	s.publish(SlotEvent{Type: EventSlotCreated, SlotID: rec.ID, Slot: details})

	return details, nil
}

func (s *Service) GetSlot(ctx context.Context, id int64) (*SlotDetails, error) {
	rec, room, slot, err := s.loadSlot(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detailsFromSlot(slot, rec.ID, rec.RoomID, room.Name), nil
}

// ListSlots returns the room's slots on one day, ordered by start time.
func (s *Service) ListSlots(ctx context.Context, roomID int64, date string) ([]SlotDetails, error) {
	if _, err := s.times.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	recs, err := s.slots.ListByRoomAndDate(ctx, roomID, date)
	if err != nil {
		return nil, err
	}

	out := make([]SlotDetails, 0, len(recs))
	for i := range recs {
		slot, err := s.slotFromRecord(&recs[i], room)
		if err != nil {
			return nil, err
		}
		out = append(out, *s.detailsFromSlot(slot, recs[i].ID, roomID, room.Name))
	}
	return out, nil
}

// RescheduleSlot applies the requested temporal changes through the domain
// mutators and re-checks collisions before persisting.
func (s *Service) RescheduleSlot(ctx context.Context, id int64, req RescheduleSlotRequest) (*SlotDetails, error) {
	rec, room, slot, err := s.loadSlot(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		day, err := s.times.ParseDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		slot.SetDate(day)
	}

	changed := 0
	if req.StartTime != nil {
		changed++
	}
	if req.EndTime != nil {
		changed++
	}
	if req.Duration != nil {
		changed++
	}

	switch {
	case changed == 0:
		// date-only change, times stay as they are

	case changed == 1 && req.StartTime != nil:
		if err := slot.SetStartTime(*req.StartTime); err != nil {
			return nil, err
		}

	case changed == 1 && req.EndTime != nil:
		if err := slot.SetEndTime(*req.EndTime); err != nil {
			return nil, err
		}

	case changed == 1 && req.Duration != nil:
		if err := slot.SetDuration(*req.Duration); err != nil {
			return nil, err
		}

	default:
		// several time fields change at once, rebuild through the one-shot
		// validation so interim states cannot reject a valid combination
		cfg := domain.SlotConfig{
			Date:       slot.Date(),
			StartTime:  slot.StartTime(),
			EndTime:    "",
			Duration:   0,
			Location:   room,
			Attributes: slot.Attributes(),
			Times:      s.times,
		}
		if req.StartTime != nil {
			cfg.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			cfg.EndTime = *req.EndTime
		} else if req.Duration == nil {
			cfg.EndTime = slot.EndTime()
		}
		if req.Duration != nil {
			cfg.Duration = *req.Duration
		}
		slot, err = domain.NewSlot(cfg)
		if err != nil {
			return nil, err
		}
	}

	if err := s.checkCollisions(ctx, slot, rec.RoomID, rec.ID); err != nil {
		return nil, err
	}

	updated := s.recordFromSlot(slot, rec.RoomID, rec.ID)
	if err := s.slots.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	details := s.detailsFromSlot(slot, rec.ID, rec.RoomID, room.Name)
	s.publish(SlotEvent{Type: EventSlotRescheduled, SlotID: rec.ID, Slot: details})

	return details, nil
}

func (s *Service) DeleteSlot(ctx context.Context, id int64) error {
	if err := s.slots.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSlotNotFound
		}
		return err
	}

	s.publish(SlotEvent{Type: EventSlotDeleted, SlotID: id})
	return nil
}

// CheckCollision answers whether two stored slots occupy overlapping
// intervals. The relation is symmetric.
func (s *Service) CheckCollision(ctx context.Context, id, otherID int64) (*CollisionResult, error) {
	_, _, slot, err := s.loadSlot(ctx, id)
	if err != nil {
		return nil, err
	}
	_, _, other, err := s.loadSlot(ctx, otherID)
	if err != nil {
		return nil, err
	}

	return &CollisionResult{
		SlotID:      id,
		OtherSlotID: otherID,
		Colliding:   slot.IsCollidingWith(other),
	}, nil
}

func (s *Service) checkCollisions(ctx context.Context, slot *domain.ScheduleSlot, roomID, excludeID int64) error {
	existing, err := s.slots.ListByRoomAndDate(ctx, roomID, s.times.FormatDate(slot.Date()))
	if err != nil {
		return err
	}

	for i := range existing {
		if existing[i].ID == excludeID {
			continue
		}
		other, err := s.slotFromRecord(&existing[i], nil)
		if err != nil {
			return err
		}
		if slot.IsCollidingWith(other) {
			return fmt.Errorf("%w: slot %d occupies %s-%s", ErrSlotConflict,
				existing[i].ID, existing[i].StartTime, existing[i].EndTime)
		}
	}
	return nil
}

func (s *Service) loadSlot(ctx context.Context, id int64) (*repository.SlotRecord, *domain.Room, *domain.ScheduleSlot, error) {
	rec, err := s.slots.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, nil, ErrSlotNotFound
		}
		return nil, nil, nil, err
	}

	room, err := s.rooms.GetByID(ctx, rec.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, nil, ErrRoomNotFound
		}
		return nil, nil, nil, err
	}

	slot, err := s.slotFromRecord(rec, room)
	if err != nil {
		return nil, nil, nil, err
	}
	return rec, room, slot, nil
}

func (s *Service) slotFromRecord(rec *repository.SlotRecord, room *domain.Room) (*domain.ScheduleSlot, error) {
	day, err := s.times.ParseDate(rec.Date)
	if err != nil {
		return nil, err
	}
	// rebuild from (date, start, duration) and let the end string be
	// re-derived: a stored end like "00:30" past midnight would otherwise
	// disagree with the duration when recombined on the same date
	return domain.NewSlot(domain.SlotConfig{
		Date:       day,
		StartTime:  rec.StartTime,
		Duration:   rec.Duration,
		Location:   room,
		Attributes: rec.Attributes,
		Times:      s.times,
	})
}

func (s *Service) recordFromSlot(slot *domain.ScheduleSlot, roomID, id int64) *repository.SlotRecord {
	return &repository.SlotRecord{
		ID:         id,
		RoomID:     roomID,
		Date:       s.times.FormatDate(slot.Date()),
		StartTime:  slot.StartTime(),
		EndTime:    slot.EndTime(),
		Duration:   slot.Duration(),
		Attributes: slot.Attributes(),
	}
}

func (s *Service) detailsFromSlot(slot *domain.ScheduleSlot, id, roomID int64, roomName string) *SlotDetails {
	return &SlotDetails{
		ID:         id,
		RoomID:     roomID,
		RoomName:   roomName,
		Date:       s.times.FormatDate(slot.Date()),
		DayOfWeek:  slot.DayOfWeek().String(),
		StartTime:  slot.StartTime(),
		EndTime:    slot.EndTime(),
		Duration:   slot.Duration(),
		Attributes: slot.Attributes(),
	}
}

func (s *Service) publish(event SlotEvent) {
	if s.events != nil {
		s.events.Broadcast(event)
	}
}
