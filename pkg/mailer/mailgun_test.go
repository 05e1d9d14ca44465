package mailer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailgun_Send(t *testing.T) {
	var (
		mu   sync.Mutex
		path string
		form = map[string]string{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		path = r.URL.Path
		for _, k := range []string{"from", "to", "subject", "text", "html"} {
			form[k] = r.FormValue(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"<1@mg.example.com>","message":"Queued. Thank you."}`))
	}))
	defer srv.Close()

	m := NewMailgun("mg.example.com", "key-test", "Directory <no-reply@example.com>").WithAPIBase(srv.URL + "/v3")
	err := m.Send(context.Background(), "ana@example.com", "Welcome", "hello", "<p>hello</p>")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, strings.HasSuffix(path, "/messages"), path)
	assert.Equal(t, "ana@example.com", form["to"])
	assert.Equal(t, "Welcome", form["subject"])
	assert.Equal(t, "hello", form["text"])
	assert.Equal(t, "<p>hello</p>", form["html"])
}

func TestMailgun_SendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"forbidden"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	m := NewMailgun("mg.example.com", "key-test", "no-reply@example.com").WithAPIBase(srv.URL + "/v3")
	assert.Error(t, m.Send(context.Background(), "ana@example.com", "s", "t", ""))
}
