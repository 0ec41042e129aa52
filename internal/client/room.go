// Package client 提供 Rooms 和 Users 上游服務的讀取介面。
//
// RoomClient 包著斷路器，上游故障時走 fallback 錯誤轉換；
// UserClient 是單純的透傳呼叫，失敗直接回報服務不可用。
package client

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"asks_web/internal/breaker"
	"asks_web/internal/models"
)

// RoomClient 定義 Rooms 服務的讀取介面
type RoomClient interface {
	FindByID(ctx context.Context, id string) (*models.Room, error)
}

type roomClient struct {
	http *resty.Client
	cb   *breaker.CircuitBreaker
}

// NewRoomClient 創建 Rooms 服務的客戶端。
// 所有請求都經過同一個斷路器，超時視為傳輸層失敗。
func NewRoomClient(baseURL string, timeout time.Duration, cb *breaker.CircuitBreaker) RoomClient {
	return &roomClient{
		http: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
		cb:   cb,
	}
}

func (c *roomClient) FindByID(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room

	err := c.cb.Do(func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetResult(&room).
			Get("/api/rooms/" + id)
		if err != nil {
			return err
		}
		if resp.IsError() {
			return &rejection{status: resp.StatusCode(), body: resp.Body()}
		}
		return nil
	})
	if err != nil {
		return nil, translateFailure("Rooms", err)
	}

	return &room, nil
}
