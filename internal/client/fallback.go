package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"asks_web/internal/apperrors"
)

// rejection 表示上游有回應，但狀態碼是錯誤（4xx/5xx），body 是上游的錯誤內容
type rejection struct {
	status int
	body   []byte
}

func (e *rejection) Error() string {
	return fmt.Sprintf("upstream rejected with status %d", e.status)
}

// translateFailure 把底層失敗轉換成呼叫端看到的錯誤。
//
// 上游回應了帶 message 欄位的結構化錯誤時，保留原始狀態碼和訊息轉傳
// （例如房間不存在的 404 會原樣到達呼叫端）；
// 其他情況（連不上、超時、斷路器開啟、body 無法解析）一律回報服務暫時不可用。
func translateFailure(service string, err error) error {
	var rej *rejection
	if errors.As(err, &rej) {
		var body struct {
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(rej.body, &body); jsonErr == nil && body.Message != "" {
			return &apperrors.UpstreamError{
				Status:  rej.status,
				Message: body.Message,
			}
		}
	}

	return &apperrors.UnavailableError{
		Message: service + " service not available. Try later",
	}
}
