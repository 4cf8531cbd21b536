package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// SlotRecord is the persisted form of a schedule slot. The temporal triple is
// stored exactly as the domain value holds it; the attribute bag is stored as
// JSON.
type SlotRecord struct {
	ID         int64
	RoomID     int64
	Date       string // "YYYY-MM-DD"
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM"
	Duration   int    // minutes
	Attributes map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SlotRepository struct {
	db *gorm.DB
}

func NewSlotRepository(db *gorm.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

type slotModel struct {
	ID         int64          `gorm:"column:id;primaryKey"`
	RoomID     int64          `gorm:"column:room_id;index:idx_slots_room_date"`
	Date       string         `gorm:"column:date;index:idx_slots_room_date"`
	StartTime  string         `gorm:"column:start_time"`
	EndTime    string         `gorm:"column:end_time"`
	Duration   int            `gorm:"column:duration"`
	Attributes []byte         `gorm:"column:attributes"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (slotModel) TableName() string { return "schedule_slots" }

func toDomainRecord(m slotModel) (*SlotRecord, error) {
	attributes := map[string]any{}
	if len(m.Attributes) > 0 {
		if err := json.Unmarshal(m.Attributes, &attributes); err != nil {
			return nil, err
		}
	}

	return &SlotRecord{
		ID:         m.ID,
		RoomID:     m.RoomID,
		Date:       m.Date,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		Duration:   m.Duration,
		Attributes: attributes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}

func toSlotModel(rec *SlotRecord) (slotModel, error) {
	attributes, err := json.Marshal(rec.Attributes)
	if err != nil {
		return slotModel{}, err
	}

	return slotModel{
		ID:         rec.ID,
		RoomID:     rec.RoomID,
		Date:       rec.Date,
		StartTime:  rec.StartTime,
		EndTime:    rec.EndTime,
		Duration:   rec.Duration,
		Attributes: attributes,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}, nil
}

func (r *SlotRepository) Create(ctx context.Context, rec *SlotRecord) error {
	m, err := toSlotModel(rec)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	got, err := toDomainRecord(m)
	if err != nil {
		return err
	}
	*rec = *got
	return nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id int64) (*SlotRecord, error) {
	var m slotModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainRecord(m)
}

// ListByRoomAndDate returns every slot booked for the room on the given day,
// ordered by start time. The collision check in the service layer runs over
// this set.
func (r *SlotRepository) ListByRoomAndDate(ctx context.Context, roomID int64, date string) ([]SlotRecord, error) {
	var ms []slotModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ? AND date = ?", roomID, date).
		Order("start_time").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]SlotRecord, 0, len(ms))
	for _, m := range ms {
		rec, err := toDomainRecord(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (r *SlotRepository) Update(ctx context.Context, rec *SlotRecord) error {
	m, err := toSlotModel(rec)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).
		Model(&slotModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"date":       m.Date,
			"start_time": m.StartTime,
			"end_time":   m.EndTime,
			"duration":   m.Duration,
			"attributes": m.Attributes,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&slotModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AutoMigrate creates or updates the schema for every table this package owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&roomModel{}, &slotModel{})
}
