package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"asks_web/internal/api"
	"asks_web/internal/breaker"
	"asks_web/internal/client"
	"asks_web/internal/config"
	"asks_web/internal/messaging"
	"asks_web/internal/models"
	"asks_web/internal/repository"
	"asks_web/internal/service"
	"asks_web/internal/storage"
)

func main() {
	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化資料庫連接
	db, err := storage.NewPostgresDB(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// 自動遷移資料庫結構
	if err := db.AutoMigrate(&models.Ask{}); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	// 初始化 repositories
	repos := repository.NewRepositories(db)

	// 初始化上游服務客戶端。
	// Rooms 服務共用一個斷路器，所有請求的熔斷狀態一致。
	roomBreaker := breaker.New("rooms-service", breaker.Settings{
		FailureThreshold: cfg.Breaker.FailureThreshold,
		Window:           cfg.Breaker.Window(),
		Cooldown:         cfg.Breaker.Cooldown(),
		HalfOpenMaxCalls: cfg.Breaker.HalfOpenMaxCalls,
	})
	roomClient := client.NewRoomClient(cfg.Clients.RoomsURL, cfg.Clients.Timeout(), roomBreaker)
	userClient := client.NewUserClient(cfg.Clients.UsersURL, cfg.Clients.Timeout())

	// 初始化事件發布
	producer := messaging.NewKafkaProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	// 初始化 services
	services := service.NewServices(repos, roomClient, userClient, producer, cfg.Kafka.AskCreatedTopic)

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupRoutes(r, services)

	// 啟動伺服器
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
