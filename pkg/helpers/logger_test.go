package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "user-directory", "production")
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())

	buf.Reset()
	LogError(l, "boom", errors.New("bad"), logrus.Fields{"user_id": 3})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "boom", line["msg"])
	assert.Equal(t, "bad", line["error"])
	assert.Equal(t, float64(3), line["user_id"])
}

func TestNewLogger_DevelopmentIsText(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "user-directory", "development")
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	buf.Reset()
	LogInfo(l, "hello", nil)
	assert.True(t, strings.Contains(buf.String(), "msg=hello"))
}
