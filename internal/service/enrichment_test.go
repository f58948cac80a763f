package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"watchlog/internal/service"
	"watchlog/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

func TestNewEnrichmentService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLLMClient := mocks.NewMockLLMClient(ctrl)
	svc := service.NewEnrichmentService(mockLLMClient)

	if svc == nil {
		t.Fatal("NewEnrichmentService() returned nil")
	}
}

func TestEnrichmentService_Lookup_EmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Chat call may happen for an empty title
	mockLLMClient := mocks.NewMockLLMClient(ctrl)
	svc := service.NewEnrichmentService(mockLLMClient)

	for _, title := range []string{"", "   "} {
		got := svc.Lookup(context.Background(), title)
		if got != "作品タイトルを入力してください。" {
			t.Errorf("Lookup(%q) = %q, want the prompt-for-input message", title, got)
		}
	}
}

func TestEnrichmentService_Lookup_PromptContainsTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLLMClient := mocks.NewMockLLMClient(ctrl)
	mockLLMClient.EXPECT().
		Chat(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, message string) (string, error) {
			if !strings.Contains(message, "「Show X」") {
				t.Errorf("prompt does not embed the title: %q", message)
			}
			if !strings.Contains(message, "streaming_sites") {
				t.Errorf("prompt does not name the expected JSON keys: %q", message)
			}
			if !strings.Contains(message, "情報が見つかりませんでした") {
				t.Errorf("prompt does not carry the not-found sentinel: %q", message)
			}
			return `{"summary":"S","genre":[],"streaming_sites":[]}`, nil
		})

	svc := service.NewEnrichmentService(mockLLMClient)
	_ = svc.Lookup(context.Background(), "Show X")
}

func TestEnrichmentService_Lookup_ValidFencedJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reply := "```json\n{\"summary\":\"S\",\"genre\":[\"A\",\"B\"],\"streaming_sites\":[\"Netflix\"]}\n```"

	mockLLMClient := mocks.NewMockLLMClient(ctrl)
	mockLLMClient.EXPECT().Chat(gomock.Any(), gomock.Any()).Return(reply, nil)

	svc := service.NewEnrichmentService(mockLLMClient)
	got := svc.Lookup(context.Background(), "Show X")

	for _, want := range []string{"【Show X】", "S", "A, B", "・Netflix"} {
		if !strings.Contains(got, want) {
			t.Errorf("Lookup() = %q, want it to contain %q", got, want)
		}
	}
	if !strings.Contains(got, "AIによって生成") {
		t.Errorf("Lookup() = %q, missing attribution line", got)
	}
}

func TestEnrichmentService_Lookup_BareJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLLMClient := mocks.NewMockLLMClient(ctrl)
	mockLLMClient.EXPECT().
		Chat(gomock.Any(), gomock.Any()).
		Return(`{"summary":"S","genre":["A"],"streaming_sites":["Hulu"]}`, nil)

	svc := service.NewEnrichmentService(mockLLMClient)
	got := svc.Lookup(context.Background(), "Show X")

	if !strings.Contains(got, "あらすじ: S") {
		t.Errorf("Lookup() = %q, want summary line", got)
	}
	if !strings.Contains(got, "・Hulu") {
		t.Errorf("Lookup() = %q, want bulleted site", got)
	}
}

func TestEnrichmentService_Lookup_MissingFieldsUsePlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLLMClient := mocks.NewMockLLMClient(ctrl)
	mockLLMClient.EXPECT().Chat(gomock.Any(), gomock.Any()).Return(`{}`, nil)

	svc := service.NewEnrichmentService(mockLLMClient)
	got := svc.Lookup(context.Background(), "Show X")

	if strings.Count(got, "情報なし") != 3 {
		t.Errorf("Lookup() = %q, want the placeholder for summary, genre and sites", got)
	}
}

func TestEnrichmentService_Lookup_UnparseableReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	raw := "Sorry, I can't find that title."

	mockLLMClient := mocks.NewMockLLMClient(ctrl)
	mockLLMClient.EXPECT().Chat(gomock.Any(), gomock.Any()).Return(raw, nil)

	svc := service.NewEnrichmentService(mockLLMClient)
	got := svc.Lookup(context.Background(), "Show X")

	if !strings.Contains(got, "解析できませんでした") {
		t.Errorf("Lookup() = %q, want the unparseable-response notice", got)
	}
	if !strings.Contains(got, raw) {
		t.Errorf("Lookup() = %q, want the raw reply preserved", got)
	}
}

func TestEnrichmentService_Lookup_FencedNonJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A fenced code block that is not a JSON object must fall through
	// to the unparseable path with the fence markup kept out of the way
	reply := "```\nnot json at all\n```"

	mockLLMClient := mocks.NewMockLLMClient(ctrl)
	mockLLMClient.EXPECT().Chat(gomock.Any(), gomock.Any()).Return(reply, nil)

	svc := service.NewEnrichmentService(mockLLMClient)
	got := svc.Lookup(context.Background(), "Show X")

	if !strings.Contains(got, "解析できませんでした") {
		t.Errorf("Lookup() = %q, want the unparseable-response notice", got)
	}
}

func TestEnrichmentService_Lookup_TransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLLMClient := mocks.NewMockLLMClient(ctrl)
	mockLLMClient.EXPECT().
		Chat(gomock.Any(), gomock.Any()).
		Return("", errors.New("connection refused"))

	svc := service.NewEnrichmentService(mockLLMClient)
	got := svc.Lookup(context.Background(), "Show X")

	if !strings.Contains(got, "Show X") {
		t.Errorf("Lookup() = %q, want the failing title named", got)
	}
	if !strings.Contains(got, "APIキー") {
		t.Errorf("Lookup() = %q, want the credential/network hint", got)
	}
}
