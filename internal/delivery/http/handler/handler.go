package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/user/company-crawler/internal/delivery/http/middleware"
	"github.com/user/company-crawler/internal/delivery/http/request"
	"github.com/user/company-crawler/internal/delivery/http/response"
	"github.com/user/company-crawler/internal/entity"
	"github.com/user/company-crawler/internal/export"
	"github.com/user/company-crawler/internal/usecase"
)

const downloadFilename = "회사정보_리스트.xlsx"

type Handler struct {
	crawls *usecase.CrawlUseCase
}

func NewHandler(crawls *usecase.CrawlUseCase) *Handler {
	return &Handler{crawls: crawls}
}

// HandleIndex serves the minimal control page and issues the session cookie
// when the client does not have one yet.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err != nil || cookie.Value == "" {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    uuid.NewString(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(indexHTML)); err != nil {
		slog.Error("Failed to write index page", "error", err)
	}
}

func (h *Handler) HandleCrawl(w http.ResponseWriter, r *http.Request) {
	var req request.CrawlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "잘못된 요청입니다.", http.StatusBadRequest)
		return
	}

	err := h.crawls.Start(middleware.SessionID(r), req.Keywords, req.MaxCount, req.SearchPages)
	switch {
	case errors.Is(err, usecase.ErrNoKeywords):
		h.writeJSONError(w, "검색어를 입력해주세요.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRunActive):
		h.writeJSONError(w, "이미 크롤링이 진행 중입니다.", http.StatusBadRequest)
	case err != nil:
		slog.Error("Failed to start crawl run", "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
	default:
		h.writeJSON(w, http.StatusOK, response.MessageResponse{Message: "크롤링을 시작합니다."})
	}
}

func (h *Handler) HandleStop(w http.ResponseWriter, r *http.Request) {
	if err := h.crawls.Stop(middleware.SessionID(r)); err != nil {
		h.writeJSONError(w, "진행 중인 크롤링이 없습니다.", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, response.MessageResponse{Message: "중지 요청을 접수했습니다."})
}

func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	snapshot := h.crawls.Snapshot(middleware.SessionID(r))
	h.writeJSON(w, http.StatusOK, response.StatusResponse{
		Running:   snapshot.Running,
		Progress:  snapshot.Progress,
		Completed: snapshot.Completed,
		Count:     snapshot.Count,
	})
}

func (h *Handler) HandleResults(w http.ResponseWriter, r *http.Request) {
	records := h.crawls.Results(middleware.SessionID(r))
	if records == nil {
		records = []entity.CompanyRecord{}
	}
	h.writeJSON(w, http.StatusOK, records)
}

func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	records := h.crawls.Results(middleware.SessionID(r))
	if len(records) == 0 {
		h.writeJSONError(w, "다운로드할 데이터가 없습니다.", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		`attachment; filename="companies.xlsx"; filename*=UTF-8''`+url.PathEscape(downloadFilename))
	if err := export.WriteXLSX(w, records); err != nil {
		// Headers are already out; all that is left is logging.
		slog.Error("Failed to write spreadsheet", "error", err)
	}
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeJSONError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
