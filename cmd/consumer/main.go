package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"infohub/internal/kafka"
	"infohub/internal/rediscache"
	"infohub/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger.Init()

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	cache := rediscache.New(redisAddr, os.Getenv("REDIS_PASSWORD"), 0)
	if cache == nil {
		log.Fatal("Failed to connect to Redis")
	}

	kafkaBrokers := os.Getenv("KAFKA_BROKERS")
	if kafkaBrokers == "" {
		kafkaBrokers = "localhost:9092"
	}
	brokers := strings.Split(kafkaBrokers, ",")
	consumer := kafka.NewConsumer(brokers, "cache-updater", cache)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.StartResourceEventConsumer(ctx)
	go consumer.StartFileActivityConsumer(ctx)

	log.Println("Kafka consumer started. Press Ctrl+C to exit.")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down consumer...")
	cancel()

	consumer.Close()
	cache.Close()

	log.Println("Consumer exited")
}
