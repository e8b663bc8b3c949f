package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
)

func createJSONHTTPRequest(method, url string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}
