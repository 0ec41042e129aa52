package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"asks_web/internal/apperrors"
	"asks_web/internal/models"
	"asks_web/internal/service"
)

// AskHandler 處理與 Ask 相關的請求
type AskHandler struct {
	askService *service.AskService
}

// NewAskHandler 創建一個新的 AskHandler 實例
func NewAskHandler(askService *service.AskService) *AskHandler {
	return &AskHandler{askService: askService}
}

// CreateAskInput 定義創建 Ask 請求的結構
type CreateAskInput struct {
	Question string `json:"question" binding:"required,min=10,max=255"`
	RoomID   string `json:"roomId" binding:"required,uuid"`
}

// AnswerAskInput 定義回答 Ask 請求的結構
type AnswerAskInput struct {
	Answer string `json:"answer" binding:"required,min=1,max=255"`
}

// FilterAskInput 定義列表查詢的過濾條件
type FilterAskInput struct {
	RoomID string `form:"roomId" binding:"omitempty,uuid"`
	UserID string `form:"userId" binding:"omitempty,uuid"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=0"`
}

// Create 處理創建 Ask 的請求
func (h *AskHandler) Create(c *gin.Context) {
	var input CreateAskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}

	callerID := c.GetString("userID")

	ask, err := h.askService.Create(c.Request.Context(), input.Question, input.RoomID, callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ask)
}

// FindAll 處理查詢 Ask 列表的請求
func (h *AskHandler) FindAll(c *gin.Context) {
	var input FilterAskInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}

	filter := models.AskFilter{RoomID: input.RoomID, UserID: input.UserID}

	asks, err := h.askService.FindAll(c.Request.Context(), filter, input.Page, input.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, asks)
}

// FindByID 處理查詢單個 Ask 的請求
func (h *AskHandler) FindByID(c *gin.Context) {
	id, ok := askID(c)
	if !ok {
		return
	}

	ask, err := h.askService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ask)
}

// Answer 處理回答 Ask 的請求
func (h *AskHandler) Answer(c *gin.Context) {
	id, ok := askID(c)
	if !ok {
		return
	}

	var input AnswerAskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}

	callerID := c.GetString("userID")

	ask, err := h.askService.Answer(c.Request.Context(), id, input.Answer, callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ask)
}

// Delete 處理刪除 Ask 的請求
func (h *AskHandler) Delete(c *gin.Context) {
	id, ok := askID(c)
	if !ok {
		return
	}

	callerID := c.GetString("userID")

	if err := h.askService.Delete(c.Request.Context(), id, callerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteAnswer 處理撤回回答的請求
func (h *AskHandler) DeleteAnswer(c *gin.Context) {
	id, ok := askID(c)
	if !ok {
		return
	}

	callerID := c.GetString("userID")

	ask, err := h.askService.DeleteAnswer(c.Request.Context(), id, callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ask)
}

// askID 解析並驗證路徑中的 Ask ID，格式錯誤時直接回應 400
func askID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": "無效的 Ask ID"})
		return "", false
	}
	return id, true
}

// respondError 把服務層的錯誤轉換成狀態碼和訊息。
// 上游的結構化錯誤會保留原始狀態碼和訊息原樣轉傳。
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		c.JSON(status, gin.H{"status": status, "message": "internal server error"})
		return
	}

	c.JSON(status, gin.H{"status": status, "message": err.Error()})
}
