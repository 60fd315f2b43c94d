package logrus

import (
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusLogger_Levels(t *testing.T) {
	logger := NewLogrusLogger("debug")
	require.NotNil(t, logger)
	assert.Equal(t, log.DebugLevel, logger.logger.GetLevel())

	logger = NewLogrusLogger("error")
	assert.Equal(t, log.ErrorLevel, logger.logger.GetLevel())

	// unknown levels fall back to info
	logger = NewLogrusLogger("chatty")
	assert.Equal(t, log.InfoLevel, logger.logger.GetLevel())
}

func TestLogrusLogger_WritesFields(t *testing.T) {
	logger := NewLogrusLogger("debug")
	var buf bytes.Buffer
	logger.logger.SetOutput(&buf)

	logger.Info("parsed input", map[string]interface{}{
		"pattern": "dash-date",
		"instant": 1548854618000,
	})

	out := buf.String()
	assert.Contains(t, out, "parsed input")
	assert.Contains(t, out, "pattern=dash-date")
	assert.Contains(t, out, "instant=1548854618000")
}

func TestLogrusLogger_RespectsLevel(t *testing.T) {
	logger := NewLogrusLogger("warn")
	var buf bytes.Buffer
	logger.logger.SetOutput(&buf)

	logger.Debug("hidden", nil)
	logger.Info("hidden too", nil)
	assert.Empty(t, buf.String())

	logger.Warn("visible", nil)
	logger.Error("also visible", map[string]interface{}{"code": 500})
	out := buf.String()
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "code=500")
}
