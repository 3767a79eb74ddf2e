package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	dom "Calendar/internal/domain"
	"Calendar/internal/utils"
)

const maxSourceBody = 32 << 20

// HTTPRecordSource reads records from an upstream JSON endpoint returning an
// array of {id, name, createdAt}.
type HTTPRecordSource struct {
	url    string
	client *http.Client
	loc    *time.Location
}

// NewHTTPRecordSource returns a source for url. Timestamps without a zone are
// read in loc.
func NewHTTPRecordSource(url string, timeout time.Duration, loc *time.Location) *HTTPRecordSource {
	if loc == nil {
		loc = time.UTC
	}
	return &HTTPRecordSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
		loc:    loc,
	}
}

type recordPayload struct {
	ID        json.RawMessage `json:"id"`
	Name      string          `json:"name"`
	CreatedAt json.RawMessage `json:"createdAt"`
}

func (s *HTTPRecordSource) List(ctx context.Context) ([]dom.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("records request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("records fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("records fetch: unexpected status %d", resp.StatusCode)
	}

	var payload []recordPayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxSourceBody)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("records decode: %w", err)
	}

	list := make([]dom.Record, 0, len(payload))
	for _, p := range payload {
		list = append(list, dom.Record{
			ID:        rawID(p.ID),
			Name:      p.Name,
			CreatedAt: s.parseCreatedAt(p.CreatedAt),
		})
	}
	return list, nil
}

// parseCreatedAt accepts a timestamp string or epoch milliseconds. Anything
// else yields the zero time, which keeps the record out of every view.
func (s *HTTPRecordSource) parseCreatedAt(raw json.RawMessage) time.Time {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		t, _, err := utils.ParseTimestamp(str, s.loc)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	var ms int64
	if err := json.Unmarshal(raw, &ms); err == nil && ms > 0 {
		return time.UnixMilli(ms).In(s.loc)
	}
	return time.Time{}
}

// rawID keeps string ids as-is and renders numeric ids in decimal.
func rawID(raw json.RawMessage) string {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
		return n.String()
	}
	return strings.TrimSpace(string(raw))
}
