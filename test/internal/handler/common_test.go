package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
)

var (
	InvalidJSON = `{"invalid": json}`
)

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// 模擬認證層塞進來的身份 header
func withPrincipal(req *http.Request, userID string, role string) *http.Request {
	req.Header.Set("X-User-ID", userID)
	req.Header.Set("X-User-Role", role)
	return req
}
