// Package devserver is an in-memory stand-in for the game backend, for local
// play and integration tests. It serves the same REST endpoints the client
// calls.
package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/automoto/herbclinic/shared/messages"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 16 // 64 KB

// NewMux registers every endpoint. A non-empty token is required as a bearer
// token on every request.
func NewMux(st *Store, token string, log *zap.SugaredLogger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /player/list-saves", ListSaves(st))
	mux.HandleFunc("POST /player/create-save", CreateSave(st, log))
	mux.HandleFunc("POST /player/delete-save", DeleteSave(st, log))
	mux.HandleFunc("GET /player/{id}", GetPlayer(st))
	mux.HandleFunc("POST /player/position", UpdatePosition(st))
	mux.HandleFunc("POST /player/change-map", ChangeMap(st, log))
	mux.HandleFunc("POST /market/buy", Buy(st, log))
	mux.HandleFunc("GET /item", ListItems(st))
	mux.HandleFunc("GET /item/{id}", GetItem(st))
	mux.HandleFunc("GET /health", Health())

	return withLogging(withToken(mux, token), log)
}

func ListSaves(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, st.List())
	}
}

func CreateSave(st *Store, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req messages.CreateSaveRequest
		if !decode(w, r, &req) {
			return
		}

		rec, err := st.Create(strings.TrimSpace(req.Nickname))
		if err != nil {
			writeError(w, err)
			return
		}

		log.Infof("[devserver] created save %q (id=%s)", rec.Nickname, rec.ID)
		writeJSON(w, http.StatusCreated, rec)
	}
}

func DeleteSave(st *Store, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req messages.DeleteSaveRequest
		if !decode(w, r, &req) {
			return
		}

		if err := st.Delete(req.PlayerID); err != nil {
			writeError(w, err)
			return
		}

		log.Infof("[devserver] deleted save %s", req.PlayerID)
		writeJSON(w, http.StatusOK, messages.Status{Status: "ok"})
	}
}

func GetPlayer(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := st.Get(r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func UpdatePosition(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req messages.PositionRequest
		if !decode(w, r, &req) {
			return
		}

		rec, err := st.Move(req.PlayerID, messages.Position{
			MapID: req.MapID,
			X:     float64(req.X),
			Y:     float64(req.Y),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func ChangeMap(st *Store, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req messages.ChangeMapRequest
		if !decode(w, r, &req) {
			return
		}
		if req.TargetMapID == "" {
			writeMessage(w, http.StatusBadRequest, "targetMapId required")
			return
		}

		if _, err := st.Move(req.PlayerID, messages.Position{
			MapID: req.TargetMapID,
			X:     float64(req.X),
			Y:     float64(req.Y),
		}); err != nil {
			writeError(w, err)
			return
		}

		log.Infof("[devserver] %s moved to %s (%d, %d)", req.PlayerID, req.TargetMapID, req.X, req.Y)
		writeJSON(w, http.StatusOK, messages.Status{Status: "ok"})
	}
}

func Buy(st *Store, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req messages.BuyRequest
		if !decode(w, r, &req) {
			return
		}

		rec, err := st.Buy(req.PlayerID, req.ItemID, req.Count)
		if err != nil {
			writeError(w, err)
			return
		}

		log.Infof("[devserver] %s bought %d x %s, %d gold left", req.PlayerID, req.Count, req.ItemID, rec.Gold)
		writeJSON(w, http.StatusOK, messages.Status{Status: "ok", Message: "购买成功"})
	}
}

func ListItems(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, st.Items())
	}
}

func GetItem(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it, err := st.Item(r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, it)
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, messages.Status{Status: "ok"})
	}
}

func withToken(next http.Handler, token string) http.Handler {
	if token == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token && r.URL.Path != "/health" {
			writeMessage(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func withLogging(next http.Handler, log *zap.SugaredLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Debugw("[devserver] request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"took", time.Since(start),
		)
	})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnknownItem):
		writeMessage(w, http.StatusNotFound, err.Error())
	default:
		writeMessage(w, http.StatusBadRequest, err.Error())
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messages.Status{Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
