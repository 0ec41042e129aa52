package models

// Room 是 Rooms 服務回傳的房間資訊（唯讀視圖）。
// OwnerID 是授權判斷的唯一依據。
type Room struct {
	ID          string `json:"id"`
	Num         int    `json:"num,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	OwnerID     string `json:"ownerId"`
	Owner       *User  `json:"owner,omitempty"`
}

// User 是 Users 服務回傳的用戶資訊（唯讀視圖），只用於豐富創建事件
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
