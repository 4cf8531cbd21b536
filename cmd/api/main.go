package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"roomsched/internal/config"
	"roomsched/internal/database"
	"roomsched/internal/middleware"
	"roomsched/internal/modules/auth"
	"roomsched/internal/modules/catalog"
	"roomsched/internal/modules/feed"
	"roomsched/internal/modules/schedule"
	jwtsvc "roomsched/internal/pkg/jwt"
	"roomsched/internal/pkg/timeutil"
	"roomsched/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	roomRepo := repository.NewRoomRepository(db)
	slotRepo := repository.NewSlotRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	times := timeutil.NewConverter(cfg.Timezone)

	hub := feed.NewHub()
	defer hub.Close()

	authService := auth.NewService(cfg.OperatorPasswordHash, cfg.OperatorRole, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	scheduleService := schedule.NewService(slotRepo, roomRepo, hub, times)
	scheduleHandler := schedule.NewHandler(scheduleService)

	wsHandler := feed.NewWSHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		wsHandler.RegisterRoutes(v1)

		// mutating endpoints require an operator token
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))

		catalogHandler.RegisterRoutes(v1, protected)
		scheduleHandler.RegisterRoutes(v1, protected)
	}

	log.Printf("listening addr=%s timezone=%s", cfg.HTTPAddr, cfg.Timezone)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
