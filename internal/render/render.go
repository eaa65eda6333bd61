// ABOUTME: Pure formatting of backend responses into display text per tool
// ABOUTME: Every status/body combination maps to some text; nothing escapes this layer

package render

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/curaq/curaq-mcp/internal/api"
)

// AlreadySavedMessage is the canonical sentence the backend returns
// when a save hits an article that already exists. When the backend
// message matches it exactly, it is passed through verbatim.
const AlreadySavedMessage = "This article is already saved."

// statusLabels maps backend article statuses to display labels. Raw
// unmapped values never surface.
var statusLabels = map[string]string{
	"unread":   "unread",
	"read":     "read",
	"deferred": "deferred",
}

// ListArticles interprets a response from the unread-list endpoint.
func ListArticles(status int, body []byte) string {
	if !isSuccess(status) {
		return genericFailure(status, body)
	}

	var list api.ArticleList
	if err := json.Unmarshal(body, &list); err != nil {
		return decodeFailure(err)
	}

	if len(list.Articles) == 0 {
		return "No unread articles found. Your reading queue is empty."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Unread articles (%d):\n", len(list.Articles))
	writeArticleList(&b, list.Articles)
	return b.String()
}

// SearchArticles interprets a response from either search endpoint.
// The mode is the effective one the request mapper selected ("keyword"
// or "semantic"); a 503 under semantic mode gets actionable guidance
// instead of the generic failure text.
func SearchArticles(query, mode string, status int, body []byte) string {
	if status == http.StatusServiceUnavailable && mode == "semantic" {
		return "Semantic search is temporarily unavailable. Try again with mode set to \"keyword\"."
	}
	if !isSuccess(status) {
		return genericFailure(status, body)
	}

	var list api.ArticleList
	if err := json.Unmarshal(body, &list); err != nil {
		return decodeFailure(err)
	}

	if len(list.Articles) == 0 {
		if mode == "keyword" {
			return fmt.Sprintf("No articles matched the keyword search for %q.", query)
		}
		return fmt.Sprintf("No articles matched the semantic search for %q.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Search results for %q (%s search, %d found):\n", query, mode, len(list.Articles))
	writeArticleList(&b, list.Articles)
	return b.String()
}

// ArticleDetail interprets a response from the single-article endpoint.
func ArticleDetail(id string, status int, body []byte) string {
	switch {
	case status == http.StatusNotFound:
		return fmt.Sprintf("Article %q was not found. It may have already been deleted.", id)
	case status == http.StatusForbidden:
		return fmt.Sprintf("You do not have permission to view article %q.", id)
	case !isSuccess(status):
		return genericFailure(status, body)
	}

	var detail api.ArticleDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return decodeFailure(err)
	}
	a := detail.Article

	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", a.Title)
	fmt.Fprintf(&b, "URL: %s\n", a.URL)
	fmt.Fprintf(&b, "Status: %s\n", statusLabel(a.Status))
	fmt.Fprintf(&b, "Reading time: %d min\n", a.ReadingTime)
	fmt.Fprintf(&b, "Tags: %s\n", joinTags(a.Tags))
	fmt.Fprintf(&b, "Content type: %s\n", a.ContentType)
	if a.CreatedAt != nil {
		fmt.Fprintf(&b, "Saved: %s\n", formatTime(*a.CreatedAt))
	} else {
		b.WriteString("Saved: unknown\n")
	}
	fmt.Fprintf(&b, "Summary: %s\n", a.Summary)
	fmt.Fprintf(&b, "ID: %s\n", a.ID)

	// History is always present, even when empty.
	b.WriteString("\nHistory:\n")
	for _, ev := range detail.Events {
		fmt.Fprintf(&b, "  %s  %s\n", formatTime(ev.CreatedAt), ev.Action)
	}

	return b.String()
}

// UpdateStatus interprets a response from the mark-read or delete
// endpoints. Action is one of "read" or "delete", validated upstream.
func UpdateStatus(action, id string, status int, body []byte) string {
	if status == http.StatusNotFound {
		if action == "read" {
			return fmt.Sprintf("Could not mark article %q as read: the article was not found.", id)
		}
		return fmt.Sprintf("Could not delete article %q: the article was not found.", id)
	}
	if !isSuccess(status) {
		return genericFailure(status, body)
	}

	if action == "read" {
		return fmt.Sprintf("Marked article %q as read.", id)
	}
	return fmt.Sprintf("Deleted article %q.", id)
}

// SaveArticle interprets a response from the save endpoint. The
// submitted URL is echoed back so the model can confirm what was saved.
func SaveArticle(submittedURL string, status int, body []byte) string {
	if status == http.StatusBadRequest {
		var errBody api.ErrorBody
		if err := json.Unmarshal(body, &errBody); err == nil {
			switch errBody.Error {
			case "unread-limit":
				return "You have reached the unread article limit. Read or delete some articles before saving new ones."
			case "limit-reached":
				return "You have reached the total saved article limit for your plan."
			case "already-read":
				return "This article was already saved and marked as read, so it was not added again."
			case "invalid-content":
				return "The article could not be saved because its content is invalid or could not be processed."
			}
		}
		return genericFailure(status, body)
	}
	if !isSuccess(status) {
		return genericFailure(status, body)
	}

	var result api.SaveResult
	if err := json.Unmarshal(body, &result); err != nil {
		return decodeFailure(err)
	}

	var msg string
	switch {
	case result.Restored:
		msg = "Re-registered a previously deleted article."
	case result.Message == AlreadySavedMessage:
		msg = result.Message
	default:
		msg = "Article saved."
	}

	return fmt.Sprintf("%s\nURL: %s\nID: %s", msg, submittedURL, result.ArticleID)
}

func writeArticleList(b *strings.Builder, articles []api.Article) {
	for i, a := range articles {
		fmt.Fprintf(b, "%d. %s (%d min read)\n", i+1, a.Title, a.ReadingTime)
		fmt.Fprintf(b, "   %s\n", a.URL)
		fmt.Fprintf(b, "   Tags: %s\n", joinTags(a.Tags))
		fmt.Fprintf(b, "   ID: %s\n", a.ID)
	}
}

func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return "unknown"
}

func joinTags(tags []string) string {
	if len(tags) == 0 {
		return "(none)"
	}
	return strings.Join(tags, ", ")
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
