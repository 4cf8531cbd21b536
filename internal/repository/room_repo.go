package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"roomsched/internal/domain"
)

var ErrNotFound = errors.New("record not found")

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name;uniqueIndex"`
	Description  *string   `gorm:"column:description"`
	Capacity     int       `gorm:"column:capacity"`
	HasProjector bool      `gorm:"column:has_projector"`
	HasComputers int       `gorm:"column:has_computers"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	return &domain.Room{
		ID:           m.ID,
		Name:         m.Name,
		Description:  description,
		Capacity:     m.Capacity,
		HasProjector: m.HasProjector,
		HasComputers: m.HasComputers,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	var description *string
	if r.Description != "" {
		v := r.Description
		description = &v
	}

	return roomModel{
		ID:           r.ID,
		Name:         r.Name,
		Description:  description,
		Capacity:     r.Capacity,
		HasProjector: r.HasProjector,
		HasComputers: r.HasComputers,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var ms []roomModel
	tx := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}
