package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"meatwagon-server/internal/domain"
	"meatwagon-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию сессии
type DebugHandler struct {
	Session *engine.Session
}

func NewDebugHandler(s *engine.Session) *DebugHandler {
	return &DebugHandler{Session: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleState)
	mux.HandleFunc("/debug/reachable", h.handleReachable)
	mux.HandleFunc("/debug/path", h.handlePath)
}

// /debug/state - полный снимок: граф, сущности, фаза хода
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Session.Snapshot())
}

// /debug/reachable?origin=0,0&budget=3
func (h *DebugHandler) handleReachable(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	budget, err := strconv.Atoi(q.Get("budget"))
	if err != nil {
		http.Error(w, "budget must be an integer", http.StatusBadRequest)
		return
	}

	tiles, err := h.Session.ComputeReachable(domain.TileID(q.Get("origin")), budget)
	if err != nil {
		writeError(w, err)
		return
	}
	writeTiles(w, tiles)
}

// /debug/path?origin=0,0&goal=3,2
func (h *DebugHandler) handlePath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	path, err := h.Session.ComputePath(domain.TileID(q.Get("origin")), domain.TileID(q.Get("goal")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeTiles(w, path)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, domain.ErrNoPathExists) {
		status = http.StatusNotFound
	}
	http.Error(w, domain.ErrorCode(err)+": "+err.Error(), status)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	json.NewEncoder(w).Encode(data)
}

// writeTiles кодирует пустой список тайлов как [], а не null
func writeTiles(w http.ResponseWriter, tiles []domain.TileID) {
	if tiles == nil {
		tiles = []domain.TileID{}
	}
	writeJSON(w, tiles)
}
