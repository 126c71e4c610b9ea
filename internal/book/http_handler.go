package book

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"bookshelf/internal/httpx"
)

// Renderer turns a view-model into HTML.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

type HTTPHandler struct {
	repo   Repository
	views  Renderer
	logger *slog.Logger
}

func NewHTTPHandler(repo Repository, views Renderer, logger *slog.Logger) *HTTPHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPHandler{repo: repo, views: views, logger: logger}
}

// RegisterRoutes mounts the catalog pages on mux.
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.List)
	mux.HandleFunc("POST /{$}", h.Create)
	mux.HandleFunc("GET /new_book", h.NewForm)
	mux.HandleFunc("GET /book/{id}", h.Show)
	mux.HandleFunc("POST /delete", h.Delete)
	mux.HandleFunc("GET /new_book/{id}", h.EditForm)
	mux.HandleFunc("POST /new_book/{id}", h.EditForm)
	mux.HandleFunc("POST /edited", h.Update)
}

// List handles GET /
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r)
}

// NewForm handles GET /new_book
func (h *HTTPHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, FormTemplate, FormView{Action: "/"})
}

// Create handles POST /
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.TextError(w, http.StatusBadRequest, "Invalid form data.")
		return
	}
	form := readBookForm(r)

	if err := h.repo.Create(r.Context(), form.Title, form.Author, form.Notes); err != nil {
		httpx.TextError(w, http.StatusInternalServerError, "Error adding the book")
		return
	}
	h.renderList(w, r)
}

// Show handles GET /book/{id}
func (h *HTTPHandler) Show(w http.ResponseWriter, r *http.Request) {
	b, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.render(w, r, DetailTemplate, DetailView{Book: b})
}

// EditForm handles GET and POST /new_book/{id}. It never mutates.
func (h *HTTPHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	b, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.render(w, r, FormTemplate, FormView{Book: b, Editing: true, Action: "/edited"})
}

// Delete handles POST /delete
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.TextError(w, http.StatusBadRequest, "Invalid form data.")
		return
	}
	form := readDeleteForm(r)
	if err := validate.Struct(form); err != nil {
		httpx.TextError(w, http.StatusBadRequest, "Book ID is missing.")
		return
	}
	id, err := ParseID(form.BookID)
	if err != nil {
		httpx.TextError(w, http.StatusBadRequest, "Invalid book ID.")
		return
	}

	err = h.repo.Delete(r.Context(), id)
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, ErrNotFound):
		h.logger.InfoContext(r.Context(), "book not found", "book_id", id)
		httpx.TextError(w, http.StatusNotFound, "Book not found")
	default:
		httpx.TextError(w, http.StatusInternalServerError, "Error deleting the book")
	}
}

// Update handles POST /edited
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.TextError(w, http.StatusBadRequest, "Invalid form data.")
		return
	}
	form := readEditForm(r)
	if err := validate.Struct(form); err != nil {
		httpx.TextError(w, http.StatusBadRequest, "Book ID is missing.")
		return
	}
	id, err := ParseID(form.ID)
	if err != nil {
		httpx.TextError(w, http.StatusBadRequest, "Invalid book ID.")
		return
	}

	err = h.repo.Update(r.Context(), id, form.Title, form.Author, form.Notes)
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, ErrNotFound):
		httpx.TextError(w, http.StatusNotFound, "Book not found.")
	default:
		httpx.TextError(w, http.StatusInternalServerError, "Failed to update the book")
	}
}

// renderList shows every book. A failed query degrades to an empty list.
func (h *HTTPHandler) renderList(w http.ResponseWriter, r *http.Request) {
	books, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.WarnContext(r.Context(), "book list unavailable, rendering empty list",
			"request_id", httpx.RequestIDFrom(r), "error", err)
		books = []Book{}
	}
	h.render(w, r, IndexTemplate, ListView{Books: books})
}

// lookup resolves the {id} path value to a stored book or writes the failure.
func (h *HTTPHandler) lookup(w http.ResponseWriter, r *http.Request) (Book, bool) {
	id, err := ParseID(r.PathValue("id"))
	if err != nil {
		httpx.TextError(w, http.StatusBadRequest, "Invalid book ID.")
		return Book{}, false
	}

	b, err := h.repo.GetByID(r.Context(), id)
	switch {
	case err == nil:
		return b, true
	case errors.Is(err, ErrNotFound):
		httpx.TextError(w, http.StatusNotFound, "Book not found.")
	default:
		httpx.TextError(w, http.StatusInternalServerError, "Error loading the book")
	}
	return Book{}, false
}

func (h *HTTPHandler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := h.views.Render(&buf, name, data); err != nil {
		h.logger.ErrorContext(r.Context(), "render failed",
			"template", name, "request_id", httpx.RequestIDFrom(r), "error", err)
		httpx.TextError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.HTML(w, http.StatusOK, &buf)
}
