package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"roomsched/internal/database"
	"roomsched/internal/domain"
	"roomsched/internal/modules/schedule"
	"roomsched/internal/pkg/timeutil"
	"roomsched/internal/repository"
)

func main() {
	db, err := database.Connect("roomsched.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM schedule_slots")
	db.Exec("DELETE FROM rooms")

	ctx := context.Background()
	roomRepo := repository.NewRoomRepository(db)
	slotRepo := repository.NewSlotRepository(db)

	log.Println("Creating rooms...")
	rooms := []domain.Room{
		{Name: "Raf 1", Description: "Lecture hall", Capacity: 120, HasProjector: true, IsActive: true},
		{Name: "Raf 10", Description: "Computer lab", Capacity: 30, HasProjector: true, HasComputers: 30, IsActive: true},
		{Name: "Raf 4", Description: "Seminar room", Capacity: 24, IsActive: true},
	}
	for i := range rooms {
		if err := roomRepo.Create(ctx, &rooms[i]); err != nil {
			log.Fatal("room seed failed:", err)
		}
	}

	log.Println("Creating slots...")
	service := schedule.NewService(slotRepo, roomRepo, nil, timeutil.UTC)
	seedSlots := []schedule.CreateSlotRequest{
		{RoomID: rooms[0].ID, Date: "2024-01-08", StartTime: "09:00", Duration: 90,
			Attributes: map[string]any{"course": "algorithms", "group": "301"}},
		{RoomID: rooms[0].ID, Date: "2024-01-08", StartTime: "10:30", EndTime: "12:00",
			Attributes: map[string]any{"course": "databases"}},
		{RoomID: rooms[1].ID, Date: "2024-01-08", StartTime: "13:00", EndTime: "15:00", Duration: 120,
			Attributes: map[string]any{"course": "operating systems", "lab": true}},
	}
	for _, req := range seedSlots {
		if _, err := service.CreateSlot(ctx, req); err != nil {
			log.Fatal("slot seed failed:", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("scheduler123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Seed complete.")
	log.Println("Default operator password: scheduler123")
	log.Println("OPERATOR_PASSWORD_HASH=" + string(hash))
}
