package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Diegogmorales/Biblioteca-digital/internal/httpx"
)

// HTTPHandler exposes the catalog over HTTP.
type HTTPHandler struct {
	service  *Service
	validate *validator.Validate
	log      *zap.Logger
}

// NewHTTPHandler creates the catalog HTTP handler.
func NewHTTPHandler(service *Service, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

type addBookRequest struct {
	Titulo        string `json:"titulo" validate:"required"`
	ClaveCubiculo string `json:"clave_cubiculo" validate:"required"`
	Autor         string `json:"autor"`
}

// GetShelf handles GET /api/biblioteca.
func (h *HTTPHandler) GetShelf(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.Shelf(r.Context())
	if err != nil {
		h.log.Error("list shelf", zap.Error(err), zap.String("request_id", httpx.RequestIDFrom(r)))
		httpx.JSONError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	httpx.JSON(w, http.StatusOK, groups)
}

// AddBook handles POST /api/biblioteca.
func (h *HTTPHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	var req addBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Faltan datos")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Faltan datos")
		return
	}

	err := h.service.AddBook(r.Context(), req.Titulo, req.Autor, req.ClaveCubiculo)
	switch {
	case err == nil:
		httpx.JSONMessage(w, http.StatusCreated, "Libro añadido con éxito")
	case errors.Is(err, ErrInvalidCubicleKey):
		httpx.JSONError(w, http.StatusBadRequest, "Clave de cubículo inválida")
	case errors.Is(err, ErrCubicleNotFound):
		httpx.JSONError(w, http.StatusNotFound, "Cubículo no existe")
	default:
		h.log.Error("add book", zap.Error(err), zap.String("request_id", httpx.RequestIDFrom(r)))
		httpx.JSONError(w, http.StatusInternalServerError, "Error interno al guardar")
	}
}

// DeleteBook handles DELETE /api/libros/{id}.
func (h *HTTPHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "Libro no encontrado")
		return
	}

	err = h.service.DeleteBook(r.Context(), id)
	switch {
	case err == nil:
		httpx.JSONMessage(w, http.StatusOK, "Libro borrado con éxito")
	case errors.Is(err, ErrBookNotFound):
		httpx.JSONError(w, http.StatusNotFound, "Libro no encontrado")
	default:
		h.log.Error("delete book", zap.Error(err), zap.Int64("id", id), zap.String("request_id", httpx.RequestIDFrom(r)))
		httpx.JSONError(w, http.StatusInternalServerError, "Error interno al borrar")
	}
}

// DownloadCSV handles GET /api/descargar-csv.
func (h *HTTPHandler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.ExportRows(r.Context())
	if err != nil {
		h.log.Error("export csv", zap.Error(err), zap.String("request_id", httpx.RequestIDFrom(r)))
		httpx.JSONError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFilename))
	if err := WriteCSV(w, rows); err != nil {
		// Headers are already out; nothing useful can reach the client now.
		h.log.Error("write csv", zap.Error(err), zap.String("request_id", httpx.RequestIDFrom(r)))
	}
}
