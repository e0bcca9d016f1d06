package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ei-projects/lzss/pkg/lzss"
	"github.com/stretchr/testify/suite"
)

var sample = []byte(strings.Repeat("Sample   Data   11221233123\n", 40))

type CommandTestSuite struct {
	suite.Suite
	dir    string
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func (suite *CommandTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
	suite.stdout.Reset()
	suite.stderr.Reset()
	for _, name := range []string{"LZSS_EI", "LZSS_EJ", "LZSS_FILL", "LZSS_LOG_LEVEL"} {
		suite.T().Setenv(name, "")
	}
}

func (suite *CommandTestSuite) path(name string) string {
	return filepath.Join(suite.dir, name)
}

func (suite *CommandTestSuite) run(stdin []byte, args ...string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(&suite.stdout)
	cmd.SetErr(&suite.stderr)
	return cmd.Execute()
}

func (suite *CommandTestSuite) TestFileRoundTrip() {
	suite.Require().NoError(os.WriteFile(suite.path("in"), sample, 0o644))

	suite.Require().NoError(suite.run(nil, "compress",
		"-i", suite.path("in"), "-o", suite.path("packed"), "--params", "12,4,0x20"))
	packed, err := os.ReadFile(suite.path("packed"))
	suite.Require().NoError(err)
	suite.Equal(lzss.Okumura.CompressBytes(sample), packed)

	suite.Require().NoError(suite.run(nil, "d",
		"-i", suite.path("packed"), "-o", suite.path("out"), "--params", "12,4,0x20"))
	out, err := os.ReadFile(suite.path("out"))
	suite.Require().NoError(err)
	suite.Equal(sample, out)
}

func (suite *CommandTestSuite) TestStdio() {
	suite.Require().NoError(suite.run(sample, "e"))
	suite.Equal(lzss.Default.CompressBytes(sample), suite.stdout.Bytes())
}

func (suite *CommandTestSuite) TestParamsFromConfigFile() {
	config := "ei: 8\nej: 4\nfill: 0\n"
	suite.Require().NoError(os.WriteFile(suite.path("lzss.yaml"), []byte(config), 0o644))

	suite.Require().NoError(suite.run(sample, "compress", "--config", suite.path("lzss.yaml")))
	suite.Equal(lzss.MustNew(8, 4, 0).CompressBytes(sample), suite.stdout.Bytes())
}

func (suite *CommandTestSuite) TestInPlaceMatchesStreaming() {
	suite.Require().NoError(suite.run(sample, "compress", "--in-place", "--params", "10,4,0x20"))
	suite.Equal(lzss.Default.CompressBytes(sample), suite.stdout.Bytes())
}

func (suite *CommandTestSuite) TestStats() {
	suite.Require().NoError(suite.run(sample, "compress", "--stats"))
	suite.Contains(suite.stderr.String(), "the data compression is ")
	suite.Contains(suite.stderr.String(), "read 1,120 bytes")
}

func (suite *CommandTestSuite) TestProgress() {
	suite.Require().NoError(os.WriteFile(suite.path("in"), sample, 0o644))
	suite.Require().NoError(suite.run(nil, "compress", "--progress", "-i", suite.path("in")))
	suite.Equal(lzss.Default.CompressBytes(sample), suite.stdout.Bytes())
}

func (suite *CommandTestSuite) TestInvalidParams() {
	suite.Error(suite.run(sample, "compress", "--params", "4,4,0"))
	suite.Error(suite.run(sample, "compress", "--params", "10,4"))
}

func (suite *CommandTestSuite) TestInvalidLogLevel() {
	suite.Error(suite.run(sample, "compress", "--log-level", "loud"))
}

func (suite *CommandTestSuite) TestMissingInput() {
	suite.Error(suite.run(nil, "compress", "-i", suite.path("nope")))
}

func (suite *CommandTestSuite) TestVersion() {
	suite.Require().NoError(suite.run(nil, "version"))
	suite.Equal(version+"\n", suite.stdout.String())
}

func TestCommandTestSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}
