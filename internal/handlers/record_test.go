package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"watchlog/internal/handlers"
	"watchlog/internal/service"
	"watchlog/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRecordHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockHistoryService(ctrl)
	mockHistory.EXPECT().
		Record(gomock.Any(), service.RecordInput{
			MediaTitle: "Show X",
			StartDate:  "2026-01-01",
			EndDate:    "2026-01-10",
		}).
		Return(service.RecordResult{Success: true, Message: "「Show X」の視聴履歴を記録しました。"}, nil)

	handler := handlers.NewRecordHandler(mockHistory)

	body := `{"mediaTitle":"Show X","startDate":"2026-01-01","endDate":"2026-01-10"}`
	req := httptest.NewRequest(http.MethodPost, "/api/history", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp handlers.RecordResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("response success = false, want true")
	}
	if !strings.Contains(resp.Message, "Show X") {
		t.Errorf("response message = %q, want the title named", resp.Message)
	}
}

func TestRecordHandler_ValidationFailureIsNotAnHTTPError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockHistoryService(ctrl)
	mockHistory.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(service.RecordResult{Success: false, Message: "作品名・視聴開始日・視聴終了日は必須です。"}, nil)

	handler := handlers.NewRecordHandler(mockHistory)

	req := httptest.NewRequest(http.MethodPost, "/api/history", strings.NewReader(`{"startDate":"2026-01-01"}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for a validation failure", rec.Code)
	}

	var resp handlers.RecordResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Success {
		t.Error("response success = true, want false")
	}
}

func TestRecordHandler_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockHistoryService(ctrl)
	mockHistory.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(service.RecordResult{}, fmt.Errorf("%w: disk full", service.ErrStorage))

	handler := handlers.NewRecordHandler(mockHistory)

	body := `{"mediaTitle":"Show X","startDate":"2026-01-01","endDate":"2026-01-10"}`
	req := httptest.NewRequest(http.MethodPost, "/api/history", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestRecordHandler_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockHistoryService(ctrl)
	handler := handlers.NewRecordHandler(mockHistory)

	req := httptest.NewRequest(http.MethodPost, "/api/history", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRecordHandler_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockHistoryService(ctrl)
	handler := handlers.NewRecordHandler(mockHistory)

	req := httptest.NewRequest(http.MethodDelete, "/api/history", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestRecordHandler_UnexpectedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockHistoryService(ctrl)
	mockHistory.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(service.RecordResult{}, errors.New("boom"))

	handler := handlers.NewRecordHandler(mockHistory)

	body := `{"mediaTitle":"Show X","startDate":"2026-01-01","endDate":"2026-01-10"}`
	req := httptest.NewRequest(http.MethodPost, "/api/history", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
