package dispatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"creator-market/internal/domain/scraping"
	"creator-market/internal/pkg/config"
	"creator-market/internal/pkg/errs"
	"creator-market/internal/pkg/patch"
	"creator-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type scrapeRequest struct {
	BatchID    string   `json:"batch_id"`
	Engine     string   `json:"engine"`
	Keywords   []string `json:"keywords"`
	Location   string   `json:"location,omitempty"`
	MaxResults int      `json:"max_results"`
	BatchSize  int      `json:"batch_size"`
}

type scrapeResponse struct {
	BatchID  string `json:"batch_id"`
	Accepted int    `json:"accepted"`
}

// HTTPDispatcher posts batches to the scraping service. The service accepts
// the batch and scrapes asynchronously, so only the hand-off is awaited.
type HTTPDispatcher struct {
	baseURL string
	client  *http.Client
}

func NewHTTPDispatcher(cfg config.ScrapingConfig) *HTTPDispatcher {
	return &HTTPDispatcher{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (d *HTTPDispatcher) Dispatch(ctx context.Context, engine scraping.Engine, params scraping.RunParams) (*commands.DispatchReceipt, error) {
	batchID := uuid.New().String()
	body, err := json.Marshal(scrapeRequest{
		BatchID:    batchID,
		Engine:     engine.String(),
		Keywords:   params.Keywords,
		Location:   params.Location,
		MaxResults: params.MaxResults,
		BatchSize:  params.BatchSize,
	})
	if err != nil {
		return nil, errs.Wrap(err, "marshal scrape request")
	}

	url := fmt.Sprintf("%s/scrape/%s", d.baseURL, engine)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "build scrape request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", batchID)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, errs.Wrapf(err, "post %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errs.Wrapf(errs.New(strings.TrimSpace(string(snippet))), "scraper responded %d", resp.StatusCode)
	}

	// an empty or non-JSON body still counts as accepted
	var decoded scrapeResponse
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return &commands.DispatchReceipt{
		BatchID:  patch.OrZero(decoded.BatchID, batchID),
		Accepted: patch.OrZero(max(decoded.Accepted, 0), len(params.Keywords)),
	}, nil
}
