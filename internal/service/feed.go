package service

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// FeedClient 代表一個訂閱房間即時動態的 WebSocket 連接
type FeedClient struct {
	Conn   *websocket.Conn
	UserID string
	RoomID string
	send   chan []byte // 事件發送通道，用於異步傳送
}

// FeedManager 管理各房間的即時訂閱者，新創建的 Ask 會廣播給對應房間的所有連接。
// 這是單向的推送通道，不處理客戶端發來的業務消息。
type FeedManager struct {
	clients    map[string]map[*FeedClient]bool // 兩層 map: roomID -> client -> bool
	clientsMux sync.RWMutex                    // 用於保護 clients map 的讀寫鎖
}

// NewFeedManager 創建並初始化新的訂閱管理器
func NewFeedManager() *FeedManager {
	return &FeedManager{
		clients: make(map[string]map[*FeedClient]bool),
	}
}

// HandleConnection 處理新的訂閱連接，阻塞直到連接關閉
func (m *FeedManager) HandleConnection(conn *websocket.Conn, roomID, userID string) {
	client := &FeedClient{
		Conn:   conn,
		UserID: userID,
		RoomID: roomID,
		send:   make(chan []byte, 64),
	}

	m.addClient(client)

	// 確保連接關閉時清理資源
	defer func() {
		m.removeClient(client)
		conn.Close()
		close(client.send)
	}()

	go m.writePump(client)
	m.readPump(client)
}

// readPump 維持連接存活並偵測客戶端斷線，收到的消息一律丟棄
func (m *FeedManager) readPump(client *FeedClient) {
	client.Conn.SetReadLimit(512)
	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("feed websocket unexpected close error: %v", err)
			}
			break
		}
	}
}

// writePump 處理向客戶端發送事件的邏輯
func (m *FeedManager) writePump(client *FeedClient) {
	// 設置心跳檢查計時器
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case payload, ok := <-client.send:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			// 發送心跳包
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Broadcast 向房間內的所有訂閱者廣播事件
func (m *FeedManager) Broadcast(roomID string, payload []byte) {
	m.clientsMux.RLock()
	clients := m.clients[roomID]
	m.clientsMux.RUnlock()

	for client := range clients {
		select {
		case client.send <- payload:
			// 成功加入發送隊列
		default:
			// 客戶端隊列已滿，關閉連接
			m.removeClient(client)
			client.Conn.Close()
		}
	}
}

// addClient 安全地添加新的訂閱者
func (m *FeedManager) addClient(client *FeedClient) {
	m.clientsMux.Lock()
	defer m.clientsMux.Unlock()

	if m.clients[client.RoomID] == nil {
		m.clients[client.RoomID] = make(map[*FeedClient]bool)
	}
	m.clients[client.RoomID][client] = true
}

// removeClient 安全地移除訂閱者
func (m *FeedManager) removeClient(client *FeedClient) {
	m.clientsMux.Lock()
	defer m.clientsMux.Unlock()

	if clients, ok := m.clients[client.RoomID]; ok {
		delete(clients, client)
		// 如果房間沒有訂閱者了，刪除房間
		if len(clients) == 0 {
			delete(m.clients, client.RoomID)
		}
	}
}

// RoomClients 獲取指定房間的在線訂閱者數量
func (m *FeedManager) RoomClients(roomID string) int {
	m.clientsMux.RLock()
	defer m.clientsMux.RUnlock()

	return len(m.clients[roomID])
}
