package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"asks_web/internal/service"
)

// 定義 WebSocket 升級器
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 注意：在生產環境中，應該檢查 origin
	},
}

// FeedHandler 處理房間即時動態的訂閱連接
type FeedHandler struct {
	feed *service.FeedManager
}

// NewFeedHandler 創建一個新的 FeedHandler 實例
func NewFeedHandler(feed *service.FeedManager) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// HandleFeed 處理訂閱房間動態的 WebSocket 連接請求
func (h *FeedHandler) HandleFeed(c *gin.Context) {
	roomID := c.Query("roomId")
	if _, err := uuid.Parse(roomID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": "無效的房間 ID"})
		return
	}

	userID := c.GetString("userID")

	// 升級 HTTP 連接為 WebSocket 連接
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": http.StatusInternalServerError, "message": "升級WebSocket失敗"})
		return
	}

	h.feed.HandleConnection(conn, roomID, userID)
}
