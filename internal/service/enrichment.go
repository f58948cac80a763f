package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_llm_client.go -package=mocks watchlog/internal/service LLMClient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"watchlog/internal/contextutil"
)

const (
	msgPromptForTitle  = "作品タイトルを入力してください。"
	msgNoInfo          = "情報なし"
	msgUnparseable     = "AIの応答を解析できませんでした。以下が元の応答です:"
	msgAttribution     = "※この情報はAIによって生成されたものであり、正確でない場合があります。"
	msgLookupFailedFmt = "「%s」の情報取得に失敗しました。APIキーとネットワーク接続を確認してください。"

	// notFoundSentinel is what the model is told to substitute for any
	// field it cannot populate.
	notFoundSentinel = "情報が見つかりませんでした"

	lookupPromptFormat = `あなたは映画・ドラマの情報アシスタントです。「%s」という作品について、次のキーを持つJSONオブジェクトのみを返してください。
"summary": 作品のあらすじ(3文以内)
"genre": ジャンル名の配列
"streaming_sites": 視聴可能な配信サービス名の配列
情報が不明な項目には「` + notFoundSentinel + `」という文字列を入れてください。JSON以外のテキストは出力しないでください。`
)

// LLMClient is an interface for interacting with an LLM API.
// This interface is defined from the service layer's perspective (consumer-first).
type LLMClient interface {
	// Chat sends a message to the LLM and returns the reply.
	Chat(ctx context.Context, message string) (string, error)
}

// EnrichmentService asks the LLM for a structured summary of a title.
type EnrichmentService interface {
	// Lookup returns display-ready text for the given title. Every
	// failure mode (transport, parse) is rendered into the returned
	// text; Lookup never fails outward.
	Lookup(ctx context.Context, title string) string
}

// titleInfo is the structured reply the prompt asks the model for.
type titleInfo struct {
	Summary        string   `json:"summary"`
	Genre          []string `json:"genre"`
	StreamingSites []string `json:"streaming_sites"`
}

// enrichmentService implements EnrichmentService.
type enrichmentService struct {
	llmClient LLMClient
	logger    *slog.Logger
}

// NewEnrichmentService creates a new EnrichmentService.
func NewEnrichmentService(llmClient LLMClient) EnrichmentService {
	return &enrichmentService{
		llmClient: llmClient,
		logger:    slog.Default(),
	}
}

// Lookup sends the fixed prompt for the title and renders the reply.
// Single best-effort attempt; no retry.
func (s *enrichmentService) Lookup(ctx context.Context, title string) string {
	logger := contextutil.LoggerFromContext(ctx)

	title = strings.TrimSpace(title)
	if title == "" {
		return msgPromptForTitle
	}

	reply, err := s.llmClient.Chat(ctx, fmt.Sprintf(lookupPromptFormat, title))
	if err != nil {
		logger.ErrorContext(ctx, "title lookup failed", "title", title, "error", err)
		return fmt.Sprintf(msgLookupFailedFmt, title)
	}

	content := stripCodeFence(reply)

	var info titleInfo
	if err := json.Unmarshal([]byte(content), &info); err != nil {
		logger.WarnContext(ctx, "title lookup reply is not valid JSON", "title", title, "error", err)
		return msgUnparseable + "\n" + content
	}

	logger.InfoContext(ctx, "title lookup succeeded", "title", title)
	return formatTitleInfo(title, info)
}

// stripCodeFence removes markdown code-fence markup around an LLM reply.
// A ```json block wins; a plain ``` block is used only when it holds a
// JSON object.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)

	if strings.Contains(content, "```json") {
		start := strings.Index(content, "```json") + 7
		end := strings.Index(content[start:], "```")
		if end > 0 {
			return strings.TrimSpace(content[start : start+end])
		}
	} else if strings.Contains(content, "```") {
		start := strings.Index(content, "```") + 3
		end := strings.Index(content[start:], "```")
		if end > 0 {
			candidate := strings.TrimSpace(content[start : start+end])
			if strings.HasPrefix(candidate, "{") {
				return candidate
			}
		}
	}

	return content
}

// formatTitleInfo renders the parsed reply as a display block.
func formatTitleInfo(title string, info titleInfo) string {
	var b strings.Builder

	b.WriteString("【" + title + "】\n")
	b.WriteString(strings.Repeat("─", 20) + "\n")

	summary := strings.TrimSpace(info.Summary)
	if summary == "" {
		summary = msgNoInfo
	}
	b.WriteString("あらすじ: " + summary + "\n")

	if len(info.Genre) > 0 {
		b.WriteString("ジャンル: " + strings.Join(info.Genre, ", ") + "\n")
	} else {
		b.WriteString("ジャンル: " + msgNoInfo + "\n")
	}

	b.WriteString("視聴できるサービス:\n")
	if len(info.StreamingSites) > 0 {
		for _, site := range info.StreamingSites {
			b.WriteString("・" + site + "\n")
		}
	} else {
		b.WriteString("・" + msgNoInfo + "\n")
	}

	b.WriteString(msgAttribution)
	return b.String()
}
