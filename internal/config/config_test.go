package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ei-projects/lzss/pkg/lzss"
	"github.com/nuclio/errors"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (suite *ConfigTestSuite) SetupTest() {
	for _, key := range []string{"LZSS_EI", "LZSS_EJ", "LZSS_FILL", "LZSS_LOG_LEVEL", "LZSS_LISTEN", "LZSS_MAX_BODY", "LZSS_MAX_OUTPUT"} {
		suite.T().Setenv(key, "")
	}
}

func (suite *ConfigTestSuite) TestDefaults() {
	cfg, err := Load("")
	suite.Require().NoError(err)
	suite.Equal(Default(), cfg)

	p, err := cfg.Params()
	suite.Require().NoError(err)
	suite.Equal(lzss.Default, p)
}

func (suite *ConfigTestSuite) TestMissingFileIsDefault() {
	cfg, err := Load(filepath.Join(suite.T().TempDir(), "missing.yaml"))
	suite.Require().NoError(err)
	suite.Equal(Default(), cfg)
}

func (suite *ConfigTestSuite) TestFileThenEnv() {
	path := filepath.Join(suite.T().TempDir(), "lzss.yaml")
	err := os.WriteFile(path, []byte("ei: 12\nej: 4\nfill: 0\nlistenAddr: 127.0.0.1:9000\n"), 0o600)
	suite.Require().NoError(err)
	suite.T().Setenv("LZSS_FILL", "0x20")
	suite.T().Setenv("LZSS_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	suite.Require().NoError(err)
	suite.Equal(12, cfg.EI)
	suite.Equal(0x20, cfg.Fill)
	suite.Equal("debug", cfg.LogLevel)
	suite.Equal("127.0.0.1:9000", cfg.ListenAddr)

	p, err := cfg.Params()
	suite.Require().NoError(err)
	suite.Equal(lzss.Okumura, p)
}

func (suite *ConfigTestSuite) TestBadEnv() {
	suite.T().Setenv("LZSS_EI", "ten")
	_, err := Load("")
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestMaxOutputFromEnv() {
	suite.T().Setenv("LZSS_MAX_OUTPUT", "0x1000")
	cfg, err := Load("")
	suite.Require().NoError(err)
	suite.Equal(int64(4096), cfg.MaxOutputSize)

	suite.T().Setenv("LZSS_MAX_OUTPUT", "lots")
	_, err = Load("")
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestBadYAML() {
	cfg := Default()
	suite.Error(cfg.Read(strings.NewReader("ei: [1")))
}

func (suite *ConfigTestSuite) TestInvalidParams() {
	cfg := Default()
	cfg.EJ = 0
	_, err := cfg.Params()
	suite.Equal(lzss.ErrEJZero, errors.RootCause(err))

	cfg = Default()
	cfg.Fill = 300
	_, err = cfg.Params()
	suite.Error(err)
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
