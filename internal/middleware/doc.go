// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 這個包負責在請求到達 handler 之前解析操作者的身份，
// 支持閘道注入的標頭和獨立部署時的 JWT 兩種模式。
package middleware
