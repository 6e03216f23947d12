package customsearch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conversational-assistant/pkg/customsearch"
)

func TestSearch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/customsearch/v1") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		q := r.URL.Query()
		if q.Get("key") != "test-key" || q.Get("cx") != "engine" {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":{"code":403,"message":"forbidden"}}`))
			return
		}
		assert.Equal(t, "cats", q.Get("q"))
		assert.Equal(t, "2", q.Get("num"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[
			{"title":"Cats","link":"https://example.com/cats","snippet":"All about cats."},
			{"title":"Kittens","link":"https://example.com/kittens","snippet":"Young cats."}
		]}`))
	}))
	defer ts.Close()

	ctx := context.Background()
	client, err := customsearch.New(ctx, customsearch.Config{
		APIKey:   "test-key",
		EngineID: "engine",
		Endpoint: ts.URL + "/",
	})
	require.NoError(t, err)

	results, err := client.Search(ctx, "cats", 2)
	require.NoError(t, err)
	assert.Equal(t, []customsearch.Result{
		{Title: "Cats", Link: "https://example.com/cats", Snippet: "All about cats."},
		{Title: "Kittens", Link: "https://example.com/kittens", Snippet: "Young cats."},
	}, results)

	none, err := client.Search(ctx, "cats", 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	bad, err := customsearch.New(ctx, customsearch.Config{APIKey: "wrong", EngineID: "engine", Endpoint: ts.URL + "/"})
	require.NoError(t, err)
	_, err = bad.Search(ctx, "cats", 2)
	assert.Error(t, err)
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := customsearch.New(context.Background(), customsearch.Config{APIKey: "k"})
	assert.Error(t, err)
}
