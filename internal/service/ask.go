package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"asks_web/internal/apperrors"
	"asks_web/internal/client"
	"asks_web/internal/messaging"
	"asks_web/internal/models"
	"asks_web/internal/repository"
)

// AskService 負責 Ask 的生命週期和授權檢查。
//
// 所有修改操作都會即時向 Rooms 服務查詢房間的當前擁有者，
// 不快取創建時的擁有者——房間可能易主，以當下的擁有者為準。
type AskService struct {
	askRepo    repository.AskRepository
	roomClient client.RoomClient
	userClient client.UserClient
	publisher  messaging.Publisher
	feed       *FeedManager
	topic      string
	now        func() time.Time
}

func NewAskService(
	askRepo repository.AskRepository,
	roomClient client.RoomClient,
	userClient client.UserClient,
	publisher messaging.Publisher,
	feed *FeedManager,
	topic string,
) *AskService {
	return &AskService{
		askRepo:    askRepo,
		roomClient: roomClient,
		userClient: userClient,
		publisher:  publisher,
		feed:       feed,
		topic:      topic,
		now:        time.Now,
	}
}

// Create 在指定房間創建一個新的 Ask。
// 任何登入的用戶都可以在存在的房間提問，不需要是房間擁有者。
// 持久化成功後發布創建事件；事件發布失敗只記錄日誌，不回滾已寫入的 Ask。
func (s *AskService) Create(ctx context.Context, question, roomID, callerID string) (*models.Ask, error) {
	// 確認房間存在（房間不存在或 Rooms 服務故障都會在這裡失敗）
	room, err := s.roomClient.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	// 查詢房間擁有者和提問者的資訊，用於豐富創建事件
	owner, err := s.userClient.FindByID(ctx, room.OwnerID)
	if err != nil {
		return nil, err
	}
	room.Owner = owner

	user, err := s.userClient.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	ask := &models.Ask{
		Question: question,
		RoomID:   roomID,
		UserID:   callerID,
	}
	if err := s.askRepo.Save(ask); err != nil {
		return nil, err
	}

	s.publishCreated(ctx, ask, room, user)

	return ask, nil
}

// publishCreated 發布創建事件並廣播到房間的即時訂閱者。
// 這裡的失敗不影響已持久化的 Ask。
func (s *AskService) publishCreated(ctx context.Context, ask *models.Ask, room *models.Room, user *models.User) {
	event := models.NewAskCreatedEvent(ask, room, user)

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to encode ask created event: %v", err)
		return
	}

	if err := s.publisher.Publish(ctx, s.topic, payload); err != nil {
		log.Printf("failed to publish ask created event: %v", err)
	}

	if s.feed != nil {
		s.feed.Broadcast(ask.RoomID, payload)
	}
}

// FindAll 查詢 Ask 列表。
// page 從 1 開始（預設 1），limit 預設 20，轉換成存儲層從 0 開始的分頁窗口。
// limit 為 0 時回傳空頁。
func (s *AskService) FindAll(ctx context.Context, filter models.AskFilter, page, limit int) ([]models.Ask, error) {
	if page < 1 {
		page = 1
	}
	if limit < 0 {
		limit = 20
	}

	return s.askRepo.FindAll(filter, page-1, limit)
}

// FindByID 查詢單個 Ask
func (s *AskService) FindByID(ctx context.Context, id string) (*models.Ask, error) {
	ask, err := s.askRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if ask == nil {
		return nil, &apperrors.NotFoundError{Message: "Not found ask with id: " + id}
	}
	return ask, nil
}

// Answer 回答指定的 Ask，只有 Ask 所屬房間的當前擁有者可以操作
func (s *AskService) Answer(ctx context.Context, id, answer, callerID string) (*models.Ask, error) {
	ask, err := s.loadOwnedAsk(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	respondedAt := s.now()
	ask.Answer = answer
	ask.RespondedAt = &respondedAt

	if err := s.askRepo.Save(ask); err != nil {
		return nil, err
	}
	return ask, nil
}

// Delete 永久刪除指定的 Ask，只有房間擁有者可以操作
func (s *AskService) Delete(ctx context.Context, id, callerID string) error {
	ask, err := s.loadOwnedAsk(ctx, id, callerID)
	if err != nil {
		return err
	}

	return s.askRepo.Delete(ask)
}

// DeleteAnswer 撤回已有的回答，Answer 和 RespondedAt 一起清除
func (s *AskService) DeleteAnswer(ctx context.Context, id, callerID string) (*models.Ask, error) {
	ask, err := s.loadOwnedAsk(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	ask.Answer = ""
	ask.RespondedAt = nil

	if err := s.askRepo.Save(ask); err != nil {
		return nil, err
	}
	return ask, nil
}

// loadOwnedAsk 載入 Ask 並確認操作者是其所屬房間的當前擁有者。
// Answer、Delete、DeleteAnswer 共用這段授權邏輯。
func (s *AskService) loadOwnedAsk(ctx context.Context, id, callerID string) (*models.Ask, error) {
	ask, err := s.askRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if ask == nil {
		return nil, &apperrors.NotFoundError{Message: "Not found ask with id: " + id}
	}

	room, err := s.roomClient.FindByID(ctx, ask.RoomID)
	if err != nil {
		return nil, err
	}

	if room.OwnerID != callerID {
		return nil, &apperrors.ForbiddenError{
			Message: "Not have permission to answer ask or room that belong to another user",
		}
	}

	return ask, nil
}
