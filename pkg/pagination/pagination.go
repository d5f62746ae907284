package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidToken indicates a continuation token that was not produced by this service.
var ErrInvalidToken = errors.New("invalid continuation token")

// Cursor is the keyset position of the last item on a page: its sort value
// and its identity as a tie-break.
type Cursor struct {
	Sort time.Time `json:"s"`
	ID   uuid.UUID `json:"i"`
}

// Encode renders the cursor as an opaque, URL-safe continuation token.
func (c Cursor) Encode() string {
	data, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeCursor parses a continuation token produced by Cursor.Encode.
func DecodeCursor(token string) (Cursor, error) {
	var c Cursor

	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return c, ErrInvalidToken
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, ErrInvalidToken
	}
	if c.ID == uuid.Nil || c.Sort.IsZero() {
		return c, ErrInvalidToken
	}

	return c, nil
}

// PageRequest represents a client request for one page of a collection.
type PageRequest struct {
	PageSize          int     `json:"page_size"`
	ContinuationToken *string `json:"continuation_token,omitempty"`
}

// Normalize clamps the page size, falling back to size when unset.
func (r *PageRequest) Normalize(cfg Config, size int) {
	if r.PageSize < 1 {
		r.PageSize = size
	}
	if r.PageSize > cfg.MaxPageSize {
		r.PageSize = cfg.MaxPageSize
	}
}

// Cursor decodes the continuation token. A nil cursor means the first page.
func (r *PageRequest) Cursor() (*Cursor, error) {
	if r.ContinuationToken == nil || *r.ContinuationToken == "" {
		return nil, nil
	}
	c, err := DecodeCursor(*r.ContinuationToken)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// PageRequestFromQuery parses paging parameters from URL query values.
// Supported parameters: page_size, continuation_token.
func PageRequestFromQuery(values url.Values, cfg Config, size int) PageRequest {
	pageSize, _ := strconv.Atoi(values.Get("page_size"))

	var token *string
	if t := values.Get("continuation_token"); t != "" {
		token = &t
	}

	req := PageRequest{
		PageSize:          pageSize,
		ContinuationToken: token,
	}

	req.Normalize(cfg, size)
	return req
}

// Page holds one page of items and the token for the next page.
// ContinuationToken is nil on the last page.
type Page[T any] struct {
	Items             []T     `json:"items"`
	ContinuationToken *string `json:"continuation_token"`
	Count             int     `json:"count"`
}

// NewPage creates a Page, encoding next as the continuation token when present.
func NewPage[T any](items []T, next *Cursor) *Page[T] {
	if items == nil {
		items = []T{}
	}

	page := &Page[T]{
		Items: items,
		Count: len(items),
	}

	if next != nil {
		token := next.Encode()
		page.ContinuationToken = &token
	}

	return page
}
