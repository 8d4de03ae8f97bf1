package scraping

import (
	"errors"
	"strings"

	"creator-market/internal/domain/cooldown"
)

var (
	ErrUnknownEngine  = errors.New("unknown scraping engine")
	ErrEmptyKeywords  = errors.New("at least one keyword is required")
	ErrInvalidMaxSize = errors.New("max results must be between 1 and 500")
)

const MaxResultsLimit = 500

type Engine string

const (
	EngineGoogle Engine = "google"
	EngineBing   Engine = "bing"
)

func NewEngine(s string) (Engine, error) {
	e := Engine(strings.ToLower(strings.TrimSpace(s)))
	switch e {
	case EngineGoogle, EngineBing:
		return e, nil
	default:
		return "", ErrUnknownEngine
	}
}

func (e Engine) String() string {
	return string(e)
}

// CooldownKey is the storage key guarding the engine's run button.
func (e Engine) CooldownKey() cooldown.Key {
	switch e {
	case EngineBing:
		return cooldown.KeyBingScraping
	default:
		return cooldown.KeyGoogleScraping
	}
}

// RunParams is the batch configuration sent to the remote scraper.
type RunParams struct {
	Keywords   []string
	Location   string
	MaxResults int
	BatchSize  int
}

func NewRunParams(keywords []string, location string, maxResults, batchSize int) (RunParams, error) {
	cleaned := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			cleaned = append(cleaned, k)
		}
	}
	if len(cleaned) == 0 {
		return RunParams{}, ErrEmptyKeywords
	}
	if maxResults < 1 || maxResults > MaxResultsLimit {
		return RunParams{}, ErrInvalidMaxSize
	}
	if batchSize < 1 || batchSize > len(cleaned) {
		batchSize = len(cleaned)
	}
	return RunParams{
		Keywords:   cleaned,
		Location:   strings.TrimSpace(location),
		MaxResults: maxResults,
		BatchSize:  batchSize,
	}, nil
}
