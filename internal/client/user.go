package client

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"asks_web/internal/apperrors"
	"asks_web/internal/models"
)

// UserClient 定義 Users 服務的讀取介面
type UserClient interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type userClient struct {
	http *resty.Client
}

func NewUserClient(baseURL string, timeout time.Duration) UserClient {
	return &userClient{
		http: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
	}
}

// FindByID 查詢用戶資訊，任何失敗都視為服務不可用
func (c *userClient) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&user).
		Get("/api/users/" + id)
	if err != nil || resp.IsError() {
		return nil, &apperrors.UnavailableError{
			Message: "Users service not available. Try later",
		}
	}

	return &user, nil
}
