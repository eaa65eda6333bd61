// ABOUTME: Wire types for the CuraQ backend REST API
// ABOUTME: Articles, event history, and the success/error envelopes per endpoint

package api

import "time"

// Article is the backend's view of a saved article. This component only
// deserializes and displays it; it never caches or mutates one.
type Article struct {
	ID          string     `json:"id"`
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Tags        []string   `json:"tags"`
	ReadingTime int        `json:"readingTime"`
	ContentType string     `json:"contentType"`
	Status      string     `json:"status"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// ArticleEvent is one row of an article's history, ordered by the
// backend (assumed chronological, never re-sorted here).
type ArticleEvent struct {
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"createdAt"`
}

// ArticleList is the envelope for list and search responses.
type ArticleList struct {
	Articles []Article `json:"articles"`
}

// ArticleDetail is the envelope for the single-article endpoint.
type ArticleDetail struct {
	Article Article        `json:"article"`
	Events  []ArticleEvent `json:"events,omitempty"`
}

// SaveResult is the envelope returned when saving an article.
type SaveResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ArticleID string `json:"articleId"`
	Restored  bool   `json:"restored,omitempty"`
}

// ErrorBody is the backend's error envelope. Both fields are optional;
// unparseable bodies fall back to raw text display.
type ErrorBody struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// SaveArticleRequest is the JSON body for the save endpoint. Title and
// Markdown are pointers so that omitted arguments stay omitted on the
// wire; the backend treats an absent field differently from an empty one.
type SaveArticleRequest struct {
	URL      string  `json:"url"`
	Title    *string `json:"title,omitempty"`
	Markdown *string `json:"markdown,omitempty"`
}
