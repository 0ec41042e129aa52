// Package apperrors 定義服務的錯誤分類。
//
// 每種錯誤對應一個 HTTP 狀態碼，handler 層用 errors.As 轉換成回應。
package apperrors

import (
	"errors"
	"net/http"
)

// NotFoundError 表示找不到指定的 Ask
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ForbiddenError 表示操作者不是房間的擁有者
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// UnavailableError 表示上游服務暫時無法連線（超時、斷路器開啟等）
type UnavailableError struct {
	Message string
}

func (e *UnavailableError) Error() string {
	return e.Message
}

// UpstreamError 表示上游服務回應了結構化的錯誤，
// 保留原始的狀態碼和訊息，讓呼叫端看到上游的語意（例如房間不存在的 404）
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// HTTPStatus 將錯誤轉換為對應的 HTTP 狀態碼
func HTTPStatus(err error) int {
	var notFound *NotFoundError
	var forbidden *ForbiddenError
	var unavailable *UnavailableError
	var upstream *UpstreamError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &upstream):
		return upstream.Status
	default:
		return http.StatusInternalServerError
	}
}
