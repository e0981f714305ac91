package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabmaster/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, logging.ParseLevel(in), "level %q", in)
	}
}

func TestNewWithOutput_JSONCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithOutput("debug", "json", &buf)

	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "persist")
	logging.FromContext(ctx).Info().Msg("flushed")

	out := buf.String()
	assert.Contains(t, out, `"component":"persist"`)
	assert.Contains(t, out, `"message":"flushed"`)
}

func TestFromContext_WithoutLoggerIsNoop(t *testing.T) {
	log := logging.FromContext(context.Background())
	require.NotNil(t, log)
	log.Info().Msg("dropped")
}

func TestFileWriter_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	w, err := logging.NewFileWriter(dir, "tabmaster.log", 1, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	chunk := []byte(strings.Repeat("x", 600*1024))
	for i := 0; i < 4; i++ {
		_, err := w.Write(chunk)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "tabmaster.log.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)
	assert.FileExists(t, filepath.Join(dir, "tabmaster.log"))
}
