package repository

import (
	"errors"

	"gorm.io/gorm"

	"asks_web/internal/models"
	"asks_web/internal/storage"
)

// AskRepository 定義 Ask 的持久化操作
type AskRepository interface {
	Save(ask *models.Ask) error
	FindByID(id string) (*models.Ask, error) // 找不到時回傳 (nil, nil)
	Delete(ask *models.Ask) error
	FindAll(filter models.AskFilter, page, limit int) ([]models.Ask, error) // page 從 0 開始
}

type askRepository struct {
	db *storage.PostgresDB
}

func NewAskRepository(db *storage.PostgresDB) AskRepository {
	return &askRepository{db: db}
}

func (r *askRepository) Save(ask *models.Ask) error {
	return r.db.Save(ask).Error
}

func (r *askRepository) FindByID(id string) (*models.Ask, error) {
	var ask models.Ask
	err := r.db.Where("id = ?", id).First(&ask).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ask, nil
}

func (r *askRepository) Delete(ask *models.Ask) error {
	return r.db.Delete(ask).Error
}

// FindAll 查詢 Ask 列表。
// 過濾條件只在對應欄位非空時生效，多個條件以 AND 組合。
// 排序固定為創建時間升冪（同時間以 id 排序），保證分頁結果穩定。
func (r *askRepository) FindAll(filter models.AskFilter, page, limit int) ([]models.Ask, error) {
	query := r.db.Model(&models.Ask{})
	if filter.RoomID != "" {
		query = query.Where("room_id = ?", filter.RoomID)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}

	var asks []models.Ask
	err := query.
		Order("created_at ASC, id ASC").
		Offset(page * limit).
		Limit(limit).
		Find(&asks).Error
	return asks, err
}
