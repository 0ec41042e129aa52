package models

// AskCreatedEvent 是 Ask 創建後發布到事件總線的完整快照，
// 附帶房間和提問者的資訊，讓消費者不需要再查詢其他服務
type AskCreatedEvent struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"createdAt"`
	RespondedAt string `json:"respondedAt,omitempty"`
	Question    string `json:"question"`
	Answer      string `json:"answer,omitempty"`
	Room        *Room  `json:"room"`
	User        *User  `json:"user"`
}

// NewAskCreatedEvent 組裝創建事件
func NewAskCreatedEvent(ask *Ask, room *Room, user *User) *AskCreatedEvent {
	event := &AskCreatedEvent{
		ID:        ask.ID,
		CreatedAt: ask.CreatedAt.Format("2006-01-02T15:04:05"),
		Question:  ask.Question,
		Answer:    ask.Answer,
		Room:      room,
		User:      user,
	}
	if ask.RespondedAt != nil {
		event.RespondedAt = ask.RespondedAt.Format("2006-01-02T15:04:05")
	}
	return event
}
