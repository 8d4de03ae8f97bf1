//go:build unit

package scraping_test

import (
	"testing"

	"creator-market/internal/domain/cooldown"
	"creator-market/internal/domain/scraping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	e, err := scraping.NewEngine(" Google ")
	require.NoError(t, err)
	assert.Equal(t, scraping.EngineGoogle, e)
	assert.Equal(t, cooldown.KeyGoogleScraping, e.CooldownKey())

	e, err = scraping.NewEngine("bing")
	require.NoError(t, err)
	assert.Equal(t, cooldown.KeyBingScraping, e.CooldownKey())

	_, err = scraping.NewEngine("yahoo")
	assert.ErrorIs(t, err, scraping.ErrUnknownEngine)
}

func TestNewRunParams(t *testing.T) {
	testCases := []struct {
		name      string
		keywords  []string
		max       int
		batch     int
		wantBatch int
		errIs     error
	}{
		{name: "trims blanks", keywords: []string{" fitness ", "", "beauty"}, max: 50, batch: 1, wantBatch: 1},
		{name: "batch larger than keywords is clamped", keywords: []string{"a", "b"}, max: 10, batch: 9, wantBatch: 2},
		{name: "zero batch means all", keywords: []string{"a", "b", "c"}, max: 10, batch: 0, wantBatch: 3},
		{name: "only blanks NG", keywords: []string{" ", ""}, max: 10, errIs: scraping.ErrEmptyKeywords},
		{name: "max zero NG", keywords: []string{"a"}, max: 0, errIs: scraping.ErrInvalidMaxSize},
		{name: "max above limit NG", keywords: []string{"a"}, max: scraping.MaxResultsLimit + 1, errIs: scraping.ErrInvalidMaxSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := scraping.NewRunParams(tc.keywords, " Tokyo ", tc.max, tc.batch)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantBatch, p.BatchSize)
			assert.Equal(t, "Tokyo", p.Location)
			assert.NotContains(t, p.Keywords, "")
		})
	}
}
