package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/user-directory/internal/domain/entity"
)

type recorded struct {
	method string
	path   string
	body   []byte
}

func fakeES(t *testing.T, status int) (*elasticsearch.Client, *[]recorded) {
	t.Helper()
	var (
		mu   sync.Mutex
		reqs []recorded
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		reqs = append(reqs, recorded{method: r.Method, path: r.URL.Path, body: b})
		mu.Unlock()
		// the client checks this header to confirm it talks to Elasticsearch
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return es, &reqs
}

func TestUserIndexer_IndexUser(t *testing.T) {
	es, reqs := fakeES(t, http.StatusCreated)
	x := NewUserIndexer(es, "users")

	u := entity.User{
		ID: 7, Name: "Ada", Email: "ada@example.com", Age: 36,
		Profile:   entity.Profile{ID: 2, Code: "USR", DisplayName: "Usuario"},
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, x.IndexUser(context.Background(), u))

	require.Len(t, *reqs, 1)
	got := (*reqs)[0]
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/users/_doc/7", got.path)

	var doc userDocument
	require.NoError(t, json.Unmarshal(got.body, &doc))
	assert.Equal(t, toDocument(u), doc)
}

func TestUserIndexer_IndexError(t *testing.T) {
	es, _ := fakeES(t, http.StatusInternalServerError)
	err := NewUserIndexer(es, "users").IndexUser(context.Background(), entity.User{ID: 1})
	assert.Error(t, err)
}

func TestUserIndexer_DeleteMissingIsOK(t *testing.T) {
	es, reqs := fakeES(t, http.StatusNotFound)
	require.NoError(t, NewUserIndexer(es, "users").DeleteUser(context.Background(), 3))
	require.Len(t, *reqs, 1)
	assert.Equal(t, http.MethodDelete, (*reqs)[0].method)
	assert.Equal(t, "/users/_doc/3", (*reqs)[0].path)
}
