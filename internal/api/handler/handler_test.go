package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planning-board/backend/internal/service"
	"planning-board/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── 测试辅助 ──
//
// 参数校验失败在进入服务层之前就被拦截，
// 这里的处理器挂空依赖的服务即可覆盖校验路径。

func setupValidationRouter() *gin.Engine {
	boardH := NewBoardHandler(service.NewBoardService(nil, nil, zap.NewNop()))
	recordH := NewRecordHandler(service.NewRecordService(nil, zap.NewNop()))
	importH := NewImportHandler(service.NewImportService(nil, nil, nil, zap.NewNop()))

	r := gin.New()
	r.POST("/api/v1/boards", boardH.CreateBoard)
	r.PUT("/api/v1/boards/:id", boardH.UpdateBoard)
	r.POST("/api/v1/shift-lines", recordH.CreateShiftLine)
	r.DELETE("/api/v1/misc-items/:id", recordH.DeleteMiscItem)
	r.POST("/api/v1/imports", importH.ImportWorkbook)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("编码请求体失败: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应体失败: %v (body=%s)", err, w.Body.String())
	}
	return resp
}

// ── 参数校验 ──

func TestCreateBoard_BadMeetingTime(t *testing.T) {
	r := setupValidationRouter()

	// meeting_time 固定 5 字符（"HH:MM"）
	w := doJSON(t, r, http.MethodPost, "/api/v1/boards", gin.H{
		"reference_date": "2026-03-10",
		"meeting_time":   "9:30",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际 %d", w.Code)
	}
	if resp := decodeEnvelope(t, w); resp.Code != 10001 {
		t.Errorf("期望错误码 10001，实际 %d", resp.Code)
	}
}

func TestCreateBoard_BadDateFormat(t *testing.T) {
	r := setupValidationRouter()

	// datetime tag 只收 2006-01-02
	w := doJSON(t, r, http.MethodPost, "/api/v1/boards", gin.H{"reference_date": "10/03/2026"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际 %d", w.Code)
	}
}

func TestCreateShiftLine_MissingBoardID(t *testing.T) {
	r := setupValidationRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/shift-lines", gin.H{"line_label": "FMD/FFD"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际 %d", w.Code)
	}
	if resp := decodeEnvelope(t, w); resp.Code != 10001 {
		t.Errorf("期望错误码 10001，实际 %d", resp.Code)
	}
}

func TestImportWorkbook_NoFileField(t *testing.T) {
	r := setupValidationRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际 %d", w.Code)
	}
	if resp := decodeEnvelope(t, w); resp.Code != 13001 {
		t.Errorf("期望错误码 13001，实际 %d", resp.Code)
	}
}

func TestResponseEnvelope_Shape(t *testing.T) {
	r := setupValidationRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/shift-lines", gin.H{})
	resp := decodeEnvelope(t, w)
	if resp.Message == "" {
		t.Error("错误响应应带 message")
	}
	if resp.Data != nil {
		t.Error("错误响应不应带 data")
	}
}
