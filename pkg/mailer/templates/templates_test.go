package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Welcome(t *testing.T) {
	data := NewWelcomeData("user-directory", "Ana <b>", "ana@example.com",
		WithUserID(7),
		WithDisplayName("Ana P."),
		WithTime(time.Date(2025, 3, 4, 5, 6, 0, 0, time.UTC)),
	)

	subject, text, html, err := Render(Welcome, data)
	require.NoError(t, err)

	assert.Equal(t, "Welcome to user-directory, Ana <b>", subject)
	assert.Contains(t, text, "ana@example.com")
	assert.Contains(t, text, "04 March 2025, 05:06")
	assert.Contains(t, text, `"Ana P."`)
	assert.Contains(t, html, "Ana &lt;b&gt;")
	assert.NotContains(t, html, "Ana <b>")
}

func TestRender_DefaultAppName(t *testing.T) {
	subject, _, _, err := Render(Welcome, NewWelcomeData("", "Bo", "bo@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the directory, Bo", subject)
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", nil)
	assert.Error(t, err)
}

func TestDefaultFn(t *testing.T) {
	assert.Equal(t, "x", defaultFn("x", ""))
	assert.Equal(t, "x", defaultFn("x", nil))
	assert.Equal(t, "x", defaultFn("x", 0))
	assert.Equal(t, 5, defaultFn("x", 5))
	assert.Equal(t, "v", defaultFn("x", "v"))
}
