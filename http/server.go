package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/recipeclip/recipeclip"
)

// qaFallbackAnswer is returned when the model is unavailable during QA.
// QA failures degrade to a fallback message rather than a hard error so the
// conversation can continue.
const qaFallbackAnswer = "Sorry, I could not answer that right now. Please try again."

// Handler holds API route handlers.
type Handler struct {
	Ingestor recipeclip.Ingestor
	Recipes  recipeclip.RecipeService
	Asker    recipeclip.Asker
	Healther recipeclip.HealthService
}

// NewRouter creates a chi router with all API routes mounted.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/extract-recipe", h.ExtractRecipe)
	r.Get("/recipes", h.ListRecipes)
	r.Delete("/recipes", h.DeleteRecipe)
	r.Patch("/recipes", h.UpdateRecipe)
	r.Post("/recipes/ask", h.Ask)
	r.Get("/db-health", h.DBHealth)

	return r
}

// ExtractRecipe handles POST /extract-recipe?url=<raw>. Runs the full
// extraction pipeline and returns the stored record.
func (h *Handler) ExtractRecipe(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		writeError(w, recipeclip.Errorf(recipeclip.EINVALID, "url query parameter required"))
		return
	}

	rec, err := h.Ingestor.IngestURL(r.Context(), rawURL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// ListRecipes handles GET /recipes.
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Recipes.FindRecipes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if recs == nil {
		recs = []*recipeclip.RecipeRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}

// DeleteRecipe handles DELETE /recipes?source_url=<canonical>. Deleting a
// non-existent record is not an error.
func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	sourceURL := r.URL.Query().Get("source_url")
	if sourceURL == "" {
		writeError(w, recipeclip.Errorf(recipeclip.EINVALID, "source_url query parameter required"))
		return
	}

	if err := h.Recipes.DeleteRecipe(r.Context(), recipeclip.CanonicalURL(sourceURL)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// UpdateRecipe handles PATCH /recipes with a sparse field patch.
func (h *Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	var upd recipeclip.RecipeUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, recipeclip.Errorf(recipeclip.EINVALID, "invalid request body: %v", err))
		return
	}
	if err := validation.ValidateStruct(&upd,
		validation.Field(&upd.SourceURL, validation.Required),
	); err != nil {
		writeError(w, recipeclip.Errorf(recipeclip.EINVALID, "source_url is required"))
		return
	}

	upd.SourceURL = recipeclip.CanonicalURL(upd.SourceURL)
	rec, err := h.Recipes.UpdateRecipe(r.Context(), upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

type askRequest struct {
	SourceURL string `json:"source_url"`
	Question  string `json:"question"`
}

func (a askRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.SourceURL, validation.Required),
		validation.Field(&a.Question, validation.Required),
	)
}

type askResponse struct {
	Answer string `json:"answer"`
}

// Ask handles POST /recipes/ask. Model failures degrade to a fallback
// answer; an unknown recipe is still a 404.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, recipeclip.Errorf(recipeclip.EINVALID, "invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, recipeclip.Errorf(recipeclip.EINVALID, "source_url and question are required"))
		return
	}

	answer, err := h.Asker.Ask(r.Context(), req.SourceURL, req.Question)
	if err != nil {
		if recipeclip.ErrorCode(err) == recipeclip.EMODEL {
			writeJSON(w, http.StatusOK, askResponse{Answer: qaFallbackAnswer})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, askResponse{Answer: answer})
}

// DBHealth handles GET /db-health.
func (h *Handler) DBHealth(w http.ResponseWriter, r *http.Request) {
	health, err := h.Healther.Health(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, health)
}

// Server wraps the API router in an http.Server.
type Server struct {
	server *http.Server
}

// NewServer creates a Server listening on addr.
func NewServer(addr string, h *Handler) *Server {
	return &Server{
		server: &http.Server{
			Addr:    addr,
			Handler: NewRouter(h),
		},
	}
}

// ListenAndServe blocks serving the API until the server is shut down.
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
