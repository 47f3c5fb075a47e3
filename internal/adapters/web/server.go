// Package web serves read-only HTML pages for the recipe collection.
package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"ricettario/internal/application/commands"
	"ricettario/internal/domain"
	"ricettario/internal/logging"
	"ricettario/internal/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"join": domain.FormatIngredientList,
	"link": Link,
}

// Server renders the recipe pages
type Server struct {
	repo       ports.RecipeRepository
	classifier domain.Classifier
	pages      map[string]*template.Template
}

// NewServer parses the page templates
func NewServer(repo ports.RecipeRepository, classifier domain.Classifier) (*Server, error) {
	s := &Server{
		repo:       repo,
		classifier: classifier,
		pages:      make(map[string]*template.Template),
	}
	for _, page := range []string{"home", "list", "detail", "notfound"} {
		t, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		s.pages[page] = t
	}
	return s, nil
}

// Routes builds the router
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)

	r.Get("/", s.home)
	r.Get("/list", s.list)
	r.Get("/recipe/{id}", s.detail)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.notFound(w, r, "The page you asked for does not exist.")
	})

	return r
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	recipes, err := commands.NewListRecipesCommand(s.repo).Execute(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "home", map[string]any{"Count": len(recipes)})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	recipes, err := commands.NewListRecipesCommand(s.repo).Execute(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "list", map[string]any{"Recipes": recipes})
}

func (s *Server) detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		s.notFound(w, r, "No recipe with that ID.")
		return
	}

	recipe, err := commands.NewGetRecipeCommand(s.repo, id).Execute(r.Context())
	if errors.Is(err, domain.ErrNotFound) {
		s.notFound(w, r, fmt.Sprintf("No recipe with ID %d.", id))
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, "detail", map[string]any{
		"Recipe":     recipe,
		"Difficulty": s.classifier.Classify(recipe.CookingTime, len(recipe.Ingredients)),
	})
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request, message string) {
	if err := s.write(w, http.StatusNotFound, "notfound", map[string]any{"Message": message}); err != nil {
		http.NotFound(w, r)
	}
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Err(err).
		Str("request_id", chimiddleware.GetReqID(r.Context())).
		Str("path", r.URL.Path).
		Msg("request failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if err := s.write(w, status, page, data); err != nil {
		s.serverError(w, r, err)
	}
}

// write renders into a buffer first; nothing reaches w when the template
// fails.
func (s *Server) write(w http.ResponseWriter, status int, page string, data any) error {
	var buf bytes.Buffer
	if err := s.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}

// Link returns the detail page path for a recipe.
func Link(id int64) string {
	return "/recipe/" + strconv.FormatInt(id, 10) + "/"
}
