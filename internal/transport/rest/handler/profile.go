package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"thozhahub/internal/engine"
	"thozhahub/internal/model"
	"thozhahub/internal/service"
	"thozhahub/internal/transport/rest/middleware"
)

// ProfileHandler handles questionnaire and profile endpoints
type ProfileHandler struct {
	profileSvc *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileSvc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

type legacySubmitRequest struct {
	Responses []model.LegacyResponse `json:"responses"`
}

type adaptiveNextRequest struct {
	CurrentQuestionID string           `json:"currentQuestionId"`
	OptionIndex       int              `json:"selectedOptionIndex"`
	History           []model.Response `json:"history"`
}

type adaptiveSubmitRequest struct {
	Responses []model.Response `json:"responses"`
}

type adaptiveTurnResponse struct {
	Completed bool                `json:"completed"`
	Question  *model.QuestionView `json:"question,omitempty"`
	Meta      engine.Meta         `json:"meta"`
}

// Questions handles GET /v1/profile/questions
func (h *ProfileHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": h.profileSvc.Questions(),
	})
}

// SubmitQuestionnaire handles POST /v1/profile/questionnaire
func (h *ProfileHandler) SubmitQuestionnaire(w http.ResponseWriter, r *http.Request) {
	var req legacySubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Responses) == 0 {
		writeError(w, http.StatusBadRequest, "responses are required")
		return
	}

	userID := middleware.GetUserID(r.Context())
	result, err := h.profileSvc.SubmitLegacy(r.Context(), userID, req.Responses)
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// Results handles GET /v1/profile/results
func (h *ProfileHandler) Results(w http.ResponseWriter, r *http.Request) {
	kind := model.QuestionnaireKind(r.URL.Query().Get("kind"))
	switch kind {
	case "", model.KindLegacy, model.KindAdaptive:
	default:
		writeError(w, http.StatusBadRequest, "unknown questionnaire kind")
		return
	}

	h.writeLatestResult(w, r, kind)
}

// AdaptiveStart handles GET /v1/profile/adaptive/start
func (h *ProfileHandler) AdaptiveStart(w http.ResponseWriter, r *http.Request) {
	res, err := h.profileSvc.StartAdaptive()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, adaptiveTurnResponse{
		Completed: res.Completed,
		Question:  res.Question,
		Meta:      res.Meta,
	})
}

// AdaptiveNext handles POST /v1/profile/adaptive/next
func (h *ProfileHandler) AdaptiveNext(w http.ResponseWriter, r *http.Request) {
	var req adaptiveNextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.profileSvc.NextAdaptive(engine.NextRequest{
		CurrentQuestionID: req.CurrentQuestionID,
		OptionIndex:       req.OptionIndex,
		History:           req.History,
	})
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, adaptiveTurnResponse{
		Completed: res.Completed,
		Question:  res.Question,
		Meta:      res.Meta,
	})
}

// AdaptiveSubmit handles POST /v1/profile/adaptive/submit
func (h *ProfileHandler) AdaptiveSubmit(w http.ResponseWriter, r *http.Request) {
	var req adaptiveSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Responses) == 0 {
		writeError(w, http.StatusBadRequest, "responses are required")
		return
	}

	userID := middleware.GetUserID(r.Context())
	result, err := h.profileSvc.SubmitAdaptive(r.Context(), userID, req.Responses)
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// AdaptiveResults handles GET /v1/profile/adaptive/results
func (h *ProfileHandler) AdaptiveResults(w http.ResponseWriter, r *http.Request) {
	h.writeLatestResult(w, r, model.KindAdaptive)
}

func (h *ProfileHandler) writeLatestResult(w http.ResponseWriter, r *http.Request, kind model.QuestionnaireKind) {
	userID := middleware.GetUserID(r.Context())
	result, err := h.profileSvc.Results(r.Context(), userID, kind)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "no completed questionnaire")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
