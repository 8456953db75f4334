package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkalens/wallpaper/internal/common"
	"github.com/mkalens/wallpaper/internal/server/models"
)

// User-facing failure messages. The mismatch message is identical whether the
// target exists or not, so callers cannot probe for memo existence through
// the gated mutations.
const (
	msgPasswordRequired = "password is required"
	msgWallNotFound     = "wall not found"
	msgMemoNotFound     = "memo not found"
	msgInvalidPassword  = "invalid password"
	msgMissingField     = "missing required field"
	msgWeakPassword     = "password must be at least 4 characters"
	msgInvalidColor     = "invalid memo color"
	msgContentTooLong   = "memo content is too long"
	msgInternal         = "an unexpected error occurred"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// errorStatus maps service sentinels onto HTTP statuses. notFoundMsg lets the
// auth and memo paths keep their distinct 404 wording.
func errorStatus(err error, notFoundMsg string) (int, string) {
	switch {
	case errors.Is(err, common.ErrMissingInput):
		return http.StatusBadRequest, msgMissingField
	case errors.Is(err, common.ErrWeakPassword):
		return http.StatusBadRequest, msgWeakPassword
	case errors.Is(err, common.ErrInvalidColor):
		return http.StatusBadRequest, msgInvalidColor
	case errors.Is(err, common.ErrContentTooLong):
		return http.StatusBadRequest, msgContentTooLong
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, notFoundMsg
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, msgInvalidPassword
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func (s *Server) handleAuth(w http.ResponseWriter, r *http.Request) {

	var in struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, msgPasswordRequired)
		return
	}
	if in.Password == "" {
		writeError(w, http.StatusBadRequest, msgPasswordRequired)
		return
	}

	wall, err := s.walls.Unlock(r.Context(), in.Password)
	if err != nil {
		status, msg := errorStatus(err, msgWallNotFound)
		if status >= http.StatusInternalServerError {
			s.logger.Error(r.Context(), "unlock failed", "error", err)
		}
		writeError(w, status, msg)
		return
	}

	s.logger.Info(r.Context(), "wall unlocked", "wall_id", wall.ID)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"wallId":   wall.ID,
		"wallName": wall.Name,
	})
}

func (s *Server) handleCreateMemo(w http.ResponseWriter, r *http.Request) {

	var in struct {
		WallID   string       `json:"wall_id"`
		Content  string       `json:"content"`
		Color    models.Color `json:"color"`
		Password string       `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, msgMissingField)
		return
	}

	memo, err := s.memos.Create(r.Context(), in.WallID, in.Content, in.Color, in.Password)
	if err != nil {
		status, msg := errorStatus(err, msgMemoNotFound)
		if status >= http.StatusInternalServerError {
			s.logger.Error(r.Context(), "create memo failed", "error", err)
		}
		writeError(w, status, msg)
		return
	}

	s.logger.Info(r.Context(), "memo created", "memo_id", memo.ID, "wall_id", memo.WallID)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"memo":    memo,
	})
}

func (s *Server) handleVerifyMemo(w http.ResponseWriter, r *http.Request) {

	var in struct {
		MemoID   string `json:"memoId"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, msgMissingField)
		return
	}

	if err := s.memos.Verify(r.Context(), in.MemoID, in.Password); err != nil {
		status, msg := errorStatus(err, msgMemoNotFound)
		if status >= http.StatusInternalServerError {
			s.logger.Error(r.Context(), "verify memo failed", "error", err)
		}
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleListMemos(w http.ResponseWriter, r *http.Request) {

	wallID := r.URL.Query().Get("wall_id")

	list, err := s.memos.List(r.Context(), wallID)
	if err != nil {
		status, msg := errorStatus(err, msgWallNotFound)
		if status >= http.StatusInternalServerError {
			s.logger.Error(r.Context(), "list memos failed", "error", err)
		}
		writeError(w, status, msg)
		return
	}

	if list == nil {
		list = []*models.Memo{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"memos":   list,
	})
}

func (s *Server) handleUpdateMemo(w http.ResponseWriter, r *http.Request) {

	var in struct {
		MemoID   string        `json:"memoId"`
		Password string        `json:"password"`
		Content  *string       `json:"content"`
		Color    *models.Color `json:"color"`
		IsPinned *bool         `json:"is_pinned"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, msgMissingField)
		return
	}

	changes := models.MemoChanges{
		Content:  in.Content,
		Color:    in.Color,
		IsPinned: in.IsPinned,
	}

	memo, err := s.memos.Update(r.Context(), in.MemoID, in.Password, changes)
	if err != nil {
		status, msg := errorStatus(err, msgMemoNotFound)
		if status >= http.StatusInternalServerError {
			s.logger.Error(r.Context(), "update memo failed", "error", err)
		}
		writeError(w, status, msg)
		return
	}

	s.logger.Info(r.Context(), "memo updated", "memo_id", memo.ID)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"memo":    memo,
	})
}

func (s *Server) handleDeleteMemo(w http.ResponseWriter, r *http.Request) {

	var in struct {
		MemoID   string `json:"memoId"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, msgMissingField)
		return
	}

	if err := s.memos.Delete(r.Context(), in.MemoID, in.Password); err != nil {
		status, msg := errorStatus(err, msgMemoNotFound)
		if status >= http.StatusInternalServerError {
			s.logger.Error(r.Context(), "delete memo failed", "error", err)
		}
		writeError(w, status, msg)
		return
	}

	s.logger.Info(r.Context(), "memo deleted", "memo_id", in.MemoID)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
