// Package httpapi exposes the wall and memo services over HTTP/JSON.
//
// Three endpoints are privileged password checks that must not leak hash
// material to callers (/auth, /memos/create, /memos/verify); the rest is the
// plain store surface the client uses for listing and gated mutations.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mkalens/wallpaper/internal/logging"
	"github.com/mkalens/wallpaper/internal/server/models"
)

// WallUnlocker is the wall-level gate the API needs. *services.WallService
// satisfies it.
type WallUnlocker interface {
	Unlock(ctx context.Context, password string) (*models.Wall, error)
}

// MemoLifecycle is the memo surface the API needs. *services.MemoService
// satisfies it.
type MemoLifecycle interface {
	Create(ctx context.Context, wallID, content string, color models.Color, password string) (*models.Memo, error)
	List(ctx context.Context, wallID string) ([]*models.Memo, error)
	Verify(ctx context.Context, memoID, password string) error
	Update(ctx context.Context, memoID, password string, changes models.MemoChanges) (*models.Memo, error)
	Delete(ctx context.Context, memoID, password string) error
}

type Server struct {
	address string
	walls   WallUnlocker
	memos   MemoLifecycle
	logger  logging.Logger
}

func NewServer(a string, l logging.Logger, ws WallUnlocker, ms MemoLifecycle) *Server {
	return &Server{
		address: a,
		logger:  l.With("module", "http_server"),
		walls:   ws,
		memos:   ms,
	}
}

// Handler returns the routed handler, wrapped so that a panicking handler
// turns into a 500 response instead of a dropped connection.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth", s.handleAuth)
	mux.HandleFunc("POST /memos/create", s.handleCreateMemo)
	mux.HandleFunc("POST /memos/verify", s.handleVerifyMemo)
	mux.HandleFunc("GET /memos", s.handleListMemos)
	mux.HandleFunc("POST /memos/update", s.handleUpdateMemo)
	mux.HandleFunc("POST /memos/delete", s.handleDeleteMemo)

	return s.recoverPanic(mux)
}

func (s *Server) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				s.logger.Error(r.Context(), "handler panic", "path", r.URL.Path, "panic", p)
				writeError(w, http.StatusInternalServerError, msgInternal)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
