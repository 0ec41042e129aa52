package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ask 表示在房間中提出的一個問題，可以被房間擁有者回答
type Ask struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time  `json:"createdAt"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"` // 有回答時才有值，與 Answer 同時設置和清除
	Question    string     `gorm:"type:varchar(255);not null" json:"question"`
	Answer      string     `gorm:"type:varchar(255)" json:"answer,omitempty"`
	RoomID      string     `gorm:"type:uuid;not null;index" json:"roomId"`
	UserID      string     `gorm:"type:uuid;not null;index" json:"userId"`
}

func (Ask) TableName() string {
	return "asks"
}

// BeforeCreate 在首次寫入時分配 UUID
func (a *Ask) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Answered 回報這個 Ask 是否已被回答
func (a *Ask) Answered() bool {
	return a.Answer != ""
}

// AskFilter 定義查詢 Ask 列表的過濾條件，空字串表示不過濾該欄位
type AskFilter struct {
	RoomID string
	UserID string
}
