package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"watchlog/internal/contextutil"
	"watchlog/internal/service"
)

// PageHandler serves the viewing history as a rendered HTML page.
type PageHandler struct {
	history  service.HistoryService
	parser   goldmark.Markdown
	template *template.Template
}

// pageData holds template data for the history page.
type pageData struct {
	Title   string
	Content template.HTML
}

// NewPageHandler creates a new handler for the history page.
func NewPageHandler(history service.HistoryService) *PageHandler {
	tmpl := template.Must(template.New("history").Parse(`<!DOCTYPE html>
<html lang="ja">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    :root {
      color-scheme: dark;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Hiragino Sans', 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 720px;
      line-height: 1.8;
      background: #050b18;
      color: #e4ecff;
    }
    h1 {
      color: #fff;
      font-size: 1.6rem;
      border-bottom: 1px solid rgba(148, 163, 184, 0.2);
      padding-bottom: 1rem;
    }
    article {
      background: rgba(12, 19, 35, 0.85);
      border: 1px solid rgba(99, 102, 241, 0.2);
      border-radius: 16px;
      padding: 1.5rem 2rem;
    }
    ul {
      padding-left: 1.2rem;
    }
    li {
      margin: 0.4rem 0;
      color: #cbd5f5;
    }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &PageHandler{
		history: history,
		parser: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
			),
		),
		template: tmpl,
	}
}

// ServeHTTP renders the viewing history as an HTML page.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	text, err := h.history.ListAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load history for page", "error", err)
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}

	htmlContent, err := h.renderMarkdown(historyMarkdown(text))
	if err != nil {
		logger.ErrorContext(ctx, "failed to render history page", "error", err)
		http.Error(w, "failed to render history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, pageData{
		Title:   "視聴履歴",
		Content: template.HTML(htmlContent),
	}); err != nil {
		logger.ErrorContext(ctx, "failed to execute history template", "error", err)
	}
}

func (h *PageHandler) renderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := h.parser.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// historyMarkdown turns the formatted history block into a markdown list.
// Lines without the history bullet (the empty-store message) pass through
// as plain text.
func historyMarkdown(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "・") {
			b.WriteString("- " + strings.TrimPrefix(line, "・") + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}
