// Package api 處理 HTTP 請求路由和處理。
//
// 這個包包含了所有的 HTTP 處理器（handlers）。
// 它負責將請求解析和驗證後轉換為 AskService 的調用，
// 並把服務層的錯誤分類轉換回對應的 HTTP 狀態碼。
package api
