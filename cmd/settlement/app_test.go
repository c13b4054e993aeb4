package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"hdwallet-settlement/config"
	"hdwallet-settlement/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRegistry(t *testing.T) {
	r := buildRegistry(config.ChainsConfig{
		Ethereum: config.EthereumConfig{
			Tokens: map[string]config.TokenConfig{
				"usdt": {Contract: "0xdAC17F958D2ee523a2206206994597C13D831ec7", Decimals: 6},
			},
		},
	})

	assert.Equal(t, []string{"BTC", "ETH", "USDT"}, sortedCurrencies(r))

	usdt, err := r.Get("USDT")
	require.NoError(t, err)
	assert.Equal(t, int32(6), usdt.Decimals())
}

func TestParseTolerance(t *testing.T) {
	d, err := parseTolerance("0.02")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("0.02")))

	d, err = parseTolerance("")
	require.NoError(t, err)
	assert.Negative(t, d.Sign(), "empty selects the checker default")

	for _, bad := range []string{"abc", "-0.1", "1", "2.5"} {
		_, err := parseTolerance(bad)
		assert.Error(t, err, bad)
	}
}

func TestReadPassword(t *testing.T) {
	t.Setenv(passwordEnv, "")

	pw, err := readPassword(strings.NewReader("correct horse\nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "correct horse", pw)

	pw, err = readPassword(strings.NewReader("no-newline"))
	require.NoError(t, err)
	assert.Equal(t, "no-newline", pw)

	_, err = readPassword(strings.NewReader(""))
	assert.ErrorContains(t, err, passwordEnv)

	t.Setenv(passwordEnv, "from-env")
	pw, err = readPassword(strings.NewReader("from-stdin\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", pw)
}

func TestIssueToken(t *testing.T) {
	_, _, err := issueToken("", time.Hour, "hdwallet-settlement", "ops")
	assert.ErrorContains(t, err, "jwt.secret")

	_, _, err = issueToken("s3cret", time.Hour, "hdwallet-settlement", "  ")
	assert.Error(t, err)

	token, expires, err := issueToken("s3cret", time.Hour, "hdwallet-settlement", "ops@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	claims, err := service.NewJWTTokenService("s3cret", time.Hour, "hdwallet-settlement").Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
}

func TestRootCmd_Commands(t *testing.T) {
	root := rootCmd()

	for _, path := range [][]string{
		{"serve"},
		{"sweep"},
		{"migrate"},
		{"wallet", "create"},
		{"wallet", "export"},
		{"wallet", "token"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestMigrateCmd_RejectsUnknownDirection(t *testing.T) {
	root := rootCmd()
	root.SetArgs([]string{"migrate", "sideways"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	assert.ErrorContains(t, err, "invalid argument")
}

func TestWalletExportCmd_ValidatesID(t *testing.T) {
	root := rootCmd()
	root.SetArgs([]string{"wallet", "export", "not-a-uuid"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	assert.ErrorContains(t, err, "invalid wallet id")
}
