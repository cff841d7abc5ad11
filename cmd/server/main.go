package main

import (
	"log"
	"net/http"

	"infohub/internal/config"
	"infohub/internal/database"
	"infohub/internal/handlers"
	"infohub/internal/kafka"
	"infohub/internal/middleware"
	"infohub/internal/rediscache"
	"infohub/internal/repositories"
	"infohub/internal/router"
	"infohub/internal/services"
	"infohub/internal/storage"
	"infohub/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	logger.Init()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	reconciler, err := storage.NewReconciler(cfg.UploadFolder, repositories.NewFileRepository(db))
	if err != nil {
		log.Fatal("Upload folder unusable: ", err)
	}

	producer := kafka.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	// Nil cache (redis down) disables caching without disabling the app.
	cache := rediscache.New(cfg.RedisAddr, cfg.RedisPassword, 0)
	if cache != nil {
		defer cache.Close()
	}

	userService := services.NewUserService(db)
	noteService := services.NewNoteService(db, producer, cache)
	fileService := services.NewFileService(db, reconciler, producer, cache)
	bookmarkService := services.NewBookmarkService(db, producer)
	groupService := services.NewGroupService(db, producer)
	indexService := services.NewIndexService(noteService, fileService)

	r := gin.Default()

	middleware.SetupPrometheus(r)
	r.Use(middleware.LoggerMiddleware())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.SetupRouter(r, userService, router.Handlers{
		Auth:     handlers.NewAuthHandler(userService),
		Index:    handlers.NewIndexHandler(indexService),
		Note:     handlers.NewNoteHandler(noteService),
		File:     handlers.NewFileHandler(fileService),
		Bookmark: handlers.NewBookmarkHandler(bookmarkService),
		Group:    handlers.NewGroupHandler(groupService),
	})

	logger.Log.Info().Str("port", cfg.Port).Msg("Server starting")
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
