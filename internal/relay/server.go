package relay

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
)

// maxBodyBytes bounds request bodies; envelopes are short text messages.
const maxBodyBytes = 1 << 20

const errNotFoundOrExpired = "not found or expired"

// Server is the thin HTTP surface over a Store.
type Server struct {
	mux   *http.ServeMux
	store *Store
	log   *logrus.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server's logger.
func WithLogger(l *logrus.Logger) Option {
	return func(s *Server) { s.log = l }
}

// NewServer builds the handler set over store.
func NewServer(store *Store, opts ...Option) *Server {
	s := &Server{
		mux:   http.NewServeMux(),
		store: store,
		log:   logrus.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /relay/messages", s.handleSubmit)
	s.mux.HandleFunc("GET /relay/messages/{id}", s.handleFetch)
	s.mux.HandleFunc("POST /relay/messages/{id}/read", s.handleMarkRead)
	s.mux.HandleFunc("POST /relay/keys", s.handleRegisterKey)
	s.mux.HandleFunc("GET /relay/keys/{id}", s.handleFetchKey)
	s.mux.HandleFunc("GET /relay/health", s.handleHealth)
}

// ServeHTTP dispatches to the mux. Panics in handlers become a generic
// 500 with no internal detail in the response.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			s.log.WithField("path", r.URL.Path).Error("handler panic")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		}
	}()
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	if len(req.EncryptedPayload) == 0 || len(req.IV) != crypto.NonceBytes || req.RecipientID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing or malformed fields"})
		return
	}
	if _, err := crypto.ImportPublicKey(req.EphemeralKey); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed ephemeral key"})
		return
	}
	if s.store.GetKey(req.RecipientID) == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown recipient"})
		return
	}
	if req.ExpirationMinutes < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing or malformed fields"})
		return
	}

	entry := domain.RelayEntry{
		MessageID:        req.MessageID,
		EncryptedPayload: req.EncryptedPayload,
		IV:               req.IV,
		EphemeralKey:     req.EphemeralKey,
		CreatedAt:        domain.NowMillis(),
	}
	if req.ExpirationMinutes > 0 {
		entry.ExpiresAt = entry.CreatedAt + int64(req.ExpirationMinutes)*60_000
	}
	entry = s.store.StoreMessage(entry)

	writeJSON(w, http.StatusOK, submitResponse{
		Success:          true,
		MessageID:        entry.MessageID,
		DeliveryEstimate: "immediate",
	})
}

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	deleteAfterRead := true
	if v := r.URL.Query().Get("deleteAfterRead"); v == "false" {
		deleteAfterRead = false
	}

	e := s.store.GetMessage(r.PathValue("id"), deleteAfterRead)
	if e == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: errNotFoundOrExpired})
		return
	}
	writeJSON(w, http.StatusOK, fetchResponse{
		Success:          true,
		EncryptedPayload: e.EncryptedPayload,
		IV:               e.IV,
		EphemeralKey:     e.EphemeralKey,
		Timestamp:        e.CreatedAt,
		ExpiresAt:        e.ExpiresAt,
	})
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	if !s.store.MarkRead(r.PathValue("id")) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: errNotFoundOrExpired})
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleRegisterKey(w http.ResponseWriter, r *http.Request) {
	var req registerKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	if _, err := crypto.ImportPublicKey(req.PublicKey); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed public key"})
		return
	}
	writeJSON(w, http.StatusOK, registerKeyResponse{
		Success: true,
		UserID:  s.store.RegisterKey(req.PublicKey),
	})
}

func (s *Server) handleFetchKey(w http.ResponseWriter, r *http.Request) {
	pub := s.store.GetKey(r.PathValue("id"))
	if pub == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		return
	}
	writeJSON(w, http.StatusOK, fetchKeyResponse{Success: true, PublicKey: pub})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "operational",
		Timestamp: domain.NowMillis(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
