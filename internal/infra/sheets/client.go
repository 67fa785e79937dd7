package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"event-reminder/internal/domain/event"
	"event-reminder/internal/infra"
	"event-reminder/internal/pkg/config"
)

// Client reads event rows from the Google Sheets v4 values endpoint with
// API-key auth. It deliberately stays dumb: cells come back as strings,
// absent trailing cells stay absent, and all layout knowledge lives in
// the per-category profiles.
type Client struct {
	cfg    config.SheetsConfig
	client *http.Client
	logger *slog.Logger
}

func NewClient(cfg config.SheetsConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		client: newHTTPClient(cfg.Timeout),
		logger: logger,
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: tr}
}

// valuesResponse mirrors the relevant slice of the Sheets values.get body.
// Cells are declared any because the API returns numbers unquoted.
type valuesResponse struct {
	Values [][]any `json:"values"`
}

func (c *Client) sheetFor(cat event.Category) (id, readRange string) {
	switch cat {
	case event.CategoryInterview:
		return c.cfg.InterviewSheetID, "Sheet1!A2:I"
	case event.CategoryStudy:
		return c.cfg.StudySheetID, "Sheet1!A2:H"
	default:
		return c.cfg.ConcertSheetID, "Sheet1!A2:H"
	}
}

func (c *Client) Read(ctx context.Context, cat event.Category) ([][]string, error) {
	sheetID, readRange := c.sheetFor(cat)

	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"),
		url.PathEscape(sheetID),
		url.PathEscape(readRange),
		url.QueryEscape(c.cfg.APIKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build sheets request", err, infra.KindUpstream)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, infra.WrapRepoErr("sheets request failed", err, infra.KindUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, infra.WrapRepoErr(
			fmt.Sprintf("sheets API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
			nil, infra.KindUpstream,
		)
	}

	var decoded valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, infra.WrapRepoErr("failed to decode sheets response", err, infra.KindUpstream)
	}

	rows := make([][]string, 0, len(decoded.Values))
	for _, raw := range decoded.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			if cell == nil {
				continue
			}
			if s, ok := cell.(string); ok {
				row[i] = s
			} else {
				row[i] = fmt.Sprint(cell)
			}
		}
		rows = append(rows, row)
	}

	c.logger.Info("retrieved sheet rows", "category", cat.String(), "rows", len(rows))
	return rows, nil
}
