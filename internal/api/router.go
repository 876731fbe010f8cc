package api

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/encuestapp/survey-api/internal/middleware"
	"github.com/encuestapp/survey-api/internal/services"
)

// Router wires the HTTP surface to the service layer.
type Router struct {
	auth      *services.AuthService
	responses *services.ResponseService
	dashboard *services.DashboardService
}

func NewRouter(store Store, auth *services.AuthService) *Router {
	return &Router{
		auth:      auth,
		responses: services.NewResponseService(store),
		dashboard: services.NewDashboardService(store),
	}
}

// Register mounts all API routes. Routes that expose stored responses are
// wrapped by the auth middleware here, at the routing boundary; the
// handlers behind it never re-check the token.
func (rt *Router) Register(mux *http.ServeMux, auth *middleware.Auth) {
	listHandler := auth.Protect(http.HandlerFunc(rt.handleSurveyList))

	mux.HandleFunc("/api/auth/login", rt.handleLogin)
	mux.HandleFunc("/api/survey/questions", rt.handleQuestions)
	mux.HandleFunc("/api/survey/submit", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			rt.handleSurveySubmit(w, r)
		case http.MethodGet:
			listHandler.ServeHTTP(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.Handle("/api/dashboard/responses", auth.Protect(http.HandlerFunc(rt.handleDashboard)))
}

// POST /api/auth/login
func (rt *Router) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, services.NewInvalidError("invalid request body"))
		return
	}
	res, err := rt.auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token": res.Token,
		"user":  map[string]string{"email": res.Email, "role": res.Role},
	})
}

// GET /api/survey/questions — the static schema the form renders.
func (rt *Router) handleQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": services.Questions()})
}

// POST /api/survey/submit
func (rt *Router) handleSurveySubmit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Responses services.AnswerSet `json:"responses"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, services.NewInvalidError("invalid request body"))
		return
	}
	resp, err := rt.responses.Submit(services.SubmitRequest{
		Answers:   req.Responses,
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": resp.ID})
}

// GET /api/survey/submit (auth required)
func (rt *Router) handleSurveyList(w http.ResponseWriter, r *http.Request) {
	list, err := rt.dashboard.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GET /api/dashboard/responses (auth required)
func (rt *Router) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	data, err := rt.dashboard.Overview()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func clientIP(r *http.Request) string {
	// Behind a proxy the first X-Forwarded-For entry is the client.
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service errors to statuses. Anything unrecognized is a
// 500 with a generic message; the detail only goes to the log.
func writeError(w http.ResponseWriter, err error) {
	if se, ok := services.AsServiceError(err); ok {
		switch se.Code {
		case services.ErrorInvalid:
			writeJSON(w, http.StatusBadRequest, errorBody(se.Message, se.Field))
			return
		case services.ErrorUnauthorized:
			writeJSON(w, http.StatusUnauthorized, errorBody(se.Message, ""))
			return
		case services.ErrorNotFound:
			writeJSON(w, http.StatusNotFound, errorBody(se.Message, ""))
			return
		}
	}
	log.Error().Err(err).Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, errorBody("internal server error", ""))
}

func errorBody(msg, field string) map[string]string {
	body := map[string]string{"error": msg}
	if field != "" {
		body["field"] = field
	}
	return body
}
