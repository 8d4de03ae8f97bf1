//go:build e2e

package e2e

import (
	"creator-market/internal/pkg/config"
	"creator-market/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SharedSuite owns one database, one running app and one fake scraper per
// test binary. Every subtest starts from empty tables.
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	DB      *pgxpool.Pool
	Config  config.Config
	Scraper *FakeScraper
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	s.Scraper = NewFakeScraper(t)

	server := postgresServer(t)
	pool, dbCfg := createDatabase(t, server)
	s.DB = pool
	s.Router, s.Config = startApp(t, pool, dbCfg, s.Scraper.URL())

	require.NotNil(t, s.Router, "router")
	t.Logf("e2e ready on %s:%s (%s)", server.Host, server.Port, dbCfg.DBName)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
	s.Scraper.Reset()
}
