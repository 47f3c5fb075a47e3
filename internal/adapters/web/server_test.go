package web

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ricettario/internal/adapters/memory"
	"ricettario/internal/domain"
	"ricettario/internal/logging"
)

func newTestServer(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()

	repo := memory.New(domain.NewClassicClassifier())
	require.NoError(t, repo.Seed(context.Background(),
		domain.Recipe{Name: "Pancakes", CookingTime: 15, Ingredients: []string{"flour", "eggs", "milk"}},
		domain.Recipe{Name: "Omelette", CookingTime: 5, Ingredients: []string{"eggs", "cheese"}},
	))

	s, err := NewServer(repo, domain.NewClassicClassifier())
	require.NoError(t, err)
	return s.Routes(), repo
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHome(t *testing.T) {
	h, _ := newTestServer(t)

	rec := get(t, h, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Welcome to Ricettario")
	assert.Contains(t, rec.Body.String(), "Browse 2 recipes")
}

func TestList(t *testing.T) {
	h, _ := newTestServer(t)

	for _, path := range []string{"/list/", "/list"} {
		rec := get(t, h, path)
		require.Equal(t, http.StatusOK, rec.Code, path)

		body := rec.Body.String()
		assert.Contains(t, body, `<a href="/recipe/1/">Pancakes</a>`)
		assert.Contains(t, body, `<a href="/recipe/2/">Omelette</a>`)
		assert.Contains(t, body, "flour, eggs, milk")
		assert.Contains(t, body, "Intermediate")
	}
}

func TestList_Empty(t *testing.T) {
	s, err := NewServer(memory.New(domain.NewClassicClassifier()), domain.NewClassicClassifier())
	require.NoError(t, err)

	rec := get(t, s.Routes(), "/list/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No recipes yet.")
}

func TestDetail(t *testing.T) {
	h, _ := newTestServer(t)

	rec := get(t, h, "/recipe/2/")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Omelette</h1>")
	assert.Contains(t, body, "Cooking time: 5 minutes")
	assert.Contains(t, body, `<span class="difficulty Easy">Easy</span>`)
	assert.Contains(t, body, "<li>cheese</li>")
}

func TestDetail_RecomputesDifficulty(t *testing.T) {
	repo := memory.New(nil)
	require.NoError(t, repo.Seed(context.Background(),
		domain.Recipe{Name: "Stew", CookingTime: 90, Ingredients: []string{"beef", "carrots"}, Difficulty: domain.DifficultyEasy},
	))
	s, err := NewServer(repo, domain.NewClassicClassifier())
	require.NoError(t, err)

	rec := get(t, s.Routes(), "/recipe/1/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<span class="difficulty Intermediate">Intermediate</span>`)
}

func TestDetail_NotFound(t *testing.T) {
	h, _ := newTestServer(t)

	for _, path := range []string{"/recipe/999/", "/recipe/abc/", "/recipe/0/", "/recipe/-1/", "/nowhere"} {
		rec := get(t, h, path)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Not found", path)
	}
}

func TestDetail_EscapesHTML(t *testing.T) {
	repo := memory.New(nil)
	require.NoError(t, repo.Seed(context.Background(),
		domain.Recipe{Name: "<script>alert(1)</script>", CookingTime: 5, Ingredients: []string{"salt"}},
	))
	s, err := NewServer(repo, domain.NewClassicClassifier())
	require.NoError(t, err)

	rec := get(t, s.Routes(), "/recipe/1/")
	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
	assert.Contains(t, rec.Body.String(), "&lt;script&gt;")
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	orig := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(orig) })

	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	rec := get(t, h, "/explode")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), `"status":500`)
	assert.Contains(t, buf.String(), `"path":"/explode"`)
}

func TestLink(t *testing.T) {
	assert.Equal(t, "/recipe/42/", Link(42))
}
