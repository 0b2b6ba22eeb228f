package config

import (
	"bytes"
	"io"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/pw/internal/crypto"
	"github.com/vaultpass/pw/internal/model"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want model.GenerateRequest
	}{
		{
			name: "defaults",
			args: nil,
			want: model.GenerateRequest{Length: 16},
		},
		{
			name: "numeric",
			args: []string{"--numeric"},
			want: model.GenerateRequest{ExcludeNumeric: true, Length: 16},
		},
		{
			name: "alpha excludes both cases",
			args: []string{"--alpha"},
			want: model.GenerateRequest{ExcludeLower: true, ExcludeUpper: true, Length: 16},
		},
		{
			name: "upper shorthand",
			args: []string{"-u", "--symbol"},
			want: model.GenerateRequest{ExcludeUpper: true, ExcludeSymbol: true, Length: 16},
		},
		{
			name: "lower with length",
			args: []string{"--lower", "--length", "24"},
			want: model.GenerateRequest{ExcludeLower: true, Length: 24},
		},
		{
			name: "length with equals",
			args: []string{"--length=8"},
			want: model.GenerateRequest{Length: 8},
		},
		{
			name: "zero length",
			args: []string{"--length", "0"},
			want: model.GenerateRequest{Length: 0},
		},
		{
			name: "diceware default length",
			args: []string{"--diceware"},
			want: model.GenerateRequest{Diceware: true, Length: 4},
		},
		{
			name: "diceware with numeric is passed through",
			args: []string{"--diceware", "--numeric"},
			want: model.GenerateRequest{Diceware: true, ExcludeNumeric: true, Length: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.args, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Request)
			assert.False(t, cfg.Verbose)
			assert.False(t, cfg.Version)
		})
	}
}

func TestLoadInvalidLength(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "not a number", args: []string{"--length", "twelve"}},
		{name: "negative", args: []string{"--length=-3"}},
		{name: "too long", args: []string{"--length", "70000"}},
		{name: "overflow", args: []string{"--length", "99999999999999999999"}},
		{name: "empty", args: []string{"--length", ""}},
		{name: "empty with equals", args: []string{"--length="}},
		{name: "blank", args: []string{"--length", "   "}},
		{name: "padded", args: []string{"--length", " 12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, io.Discard)
			assert.ErrorIs(t, err, crypto.ErrInvalidLength)
		})
	}
}

func TestLoadUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--words"}},
		{name: "missing length value", args: []string{"--length"}},
		{name: "positional argument", args: []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, io.Discard)
			assert.ErrorIs(t, err, ErrUsage)
		})
	}
}

func TestLoadHelp(t *testing.T) {
	var buf bytes.Buffer
	_, err := Load([]string{"--help"}, &buf)

	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, buf.String(), "--diceware")
	assert.Contains(t, buf.String(), "-u, --upper")
}

func TestLoadMeta(t *testing.T) {
	cfg, err := Load([]string{"-v", "--version"}, io.Discard)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Version)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PW_LENGTH", "32")
	t.Setenv("PW_SYMBOL", "true")

	cfg, err := Load(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, model.GenerateRequest{ExcludeSymbol: true, Length: 32}, cfg.Request)
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("PW_LENGTH", "32")

	cfg, err := Load([]string{"--length", "10"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Request.Length)
}

func TestLoadInvalidEnvironmentLength(t *testing.T) {
	t.Setenv("PW_LENGTH", "lots")

	_, err := Load(nil, io.Discard)
	assert.ErrorIs(t, err, crypto.ErrInvalidLength)
}

func TestLoadInvalidEnvironmentBool(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "alpha yes", key: "PW_ALPHA", value: "yes"},
		{name: "numeric garbage", key: "PW_NUMERIC", value: "1x"},
		{name: "diceware word", key: "PW_DICEWARE", value: "please"},
		{name: "verbose on", key: "PW_VERBOSE", value: "on"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load(nil, io.Discard)
			require.ErrorIs(t, err, ErrUsage)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadEnvironmentBoolForms(t *testing.T) {
	t.Setenv("PW_NUMERIC", "1")
	t.Setenv("PW_ALPHA", "TRUE")
	t.Setenv("PW_SYMBOL", "f")

	cfg, err := Load(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, model.GenerateRequest{
		ExcludeNumeric: true,
		ExcludeLower:   true,
		ExcludeUpper:   true,
		Length:         16,
	}, cfg.Request)
}

func TestLoadFlagOverridesInvalidEnvironmentBool(t *testing.T) {
	t.Setenv("PW_SYMBOL", "nope")

	cfg, err := Load([]string{"--symbol"}, io.Discard)
	require.NoError(t, err)
	assert.True(t, cfg.Request.ExcludeSymbol)
}
