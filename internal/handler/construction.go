package handler

import (
	"net/http"

	"github.com/osse101/BuildQueue_Go/internal/construction"
	"github.com/osse101/BuildQueue_Go/internal/domain"
	"github.com/osse101/BuildQueue_Go/internal/logger"
)

// ConstructionHandler serves the build queue API
type ConstructionHandler struct {
	service construction.Service
}

func NewConstructionHandler(service construction.Service) *ConstructionHandler {
	return &ConstructionHandler{
		service: service,
	}
}

// QueueBuildRequest is the body of a new construction order
type QueueBuildRequest struct {
	DesignID string `json:"design_id" validate:"required,max=64,design_id"`
}

// BuildingListResponse is the assembled list for one colony
type BuildingListResponse struct {
	StarKey    string         `json:"star_key"`
	ColonyKey  string         `json:"colony_key"`
	Entries    []domain.Entry `json:"entries"`
	Existing   []domain.Entry `json:"existing"`
	Candidates []domain.Entry `json:"candidates"`
	Skipped    int            `json:"skipped,omitempty"`
}

// BuildRequestResponse wraps a freshly queued request
type BuildRequestResponse struct {
	Message string              `json:"message"`
	Request domain.BuildRequest `json:"request"`
}

// StarResponse is one star with the revision it was read at
type StarResponse struct {
	Star     domain.Star `json:"star"`
	Revision uint64      `json:"revision"`
}

// HandleGetStar returns the current state of a star
// @Summary Get a star
// @Description Returns the star's colonies, buildings and active build requests at its current revision
// @Tags construction
// @Produce json
// @Param star path string true "Star key"
// @Success 200 {object} StarResponse
// @Failure 404 {object} ErrorResponse "Unknown star"
// @Security ApiKeyAuth
// @Router /stars/{star} [get]
func (h *ConstructionHandler) HandleGetStar(w http.ResponseWriter, r *http.Request) {
	starKey, ok := GetPathParam(r, w, ParamStar)
	if !ok {
		return
	}

	rec, err := h.service.Snapshot(r.Context(), starKey)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetStarFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, StarResponse{Star: rec.Star, Revision: rec.Revision})
}

// HandleGetBuildings returns the building list of one colony
// @Summary List a colony's buildings
// @Description Existing buildings and in-flight requests, followed by the designs the colony may still build
// @Tags construction
// @Produce json
// @Param star path string true "Star key"
// @Param colony path string true "Colony key"
// @Success 200 {object} BuildingListResponse
// @Failure 404 {object} ErrorResponse "Unknown star or colony"
// @Security ApiKeyAuth
// @Router /stars/{star}/colonies/{colony}/buildings [get]
func (h *ConstructionHandler) HandleGetBuildings(w http.ResponseWriter, r *http.Request) {
	starKey, ok := GetPathParam(r, w, ParamStar)
	if !ok {
		return
	}
	colonyKey, ok := GetPathParam(r, w, ParamColony)
	if !ok {
		return
	}

	view, err := h.service.View(r.Context(), starKey, colonyKey)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetViewFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, BuildingListResponse{
		StarKey:    starKey,
		ColonyKey:  colonyKey,
		Entries:    nonNil(view.Entries),
		Existing:   nonNil(view.Existing()),
		Candidates: nonNil(view.Candidates()),
		Skipped:    len(view.Skipped),
	})
}

// HandleGetProgress returns how far along a request is
// @Summary Get build progress
// @Tags construction
// @Produce json
// @Param request path string true "Build request key"
// @Success 200 {object} construction.RequestProgress
// @Failure 404 {object} ErrorResponse "Unknown request"
// @Security ApiKeyAuth
// @Router /requests/{request}/progress [get]
func (h *ConstructionHandler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	requestKey, ok := GetPathParam(r, w, ParamRequest)
	if !ok {
		return
	}

	progress, err := h.service.Progress(r.Context(), requestKey)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetProgressFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, progress)
}

// HandleQueueBuild orders a new building on a colony
// @Summary Queue a new building
// @Tags construction
// @Accept json
// @Produce json
// @Param colony path string true "Colony key"
// @Param request body QueueBuildRequest true "Design to build"
// @Success 201 {object} BuildRequestResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Unknown colony or design"
// @Failure 409 {object} ErrorResponse "Cap reached or dependencies missing"
// @Security ApiKeyAuth
// @Router /colonies/{colony}/builds [post]
func (h *ConstructionHandler) HandleQueueBuild(w http.ResponseWriter, r *http.Request) {
	colonyKey, ok := GetPathParam(r, w, ParamColony)
	if !ok {
		return
	}

	var req QueueBuildRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Queue build"); err != nil {
		return
	}

	logger.FromContext(r.Context()).Debug("Request details", "colony", colonyKey, "design", req.DesignID)

	queued, err := h.service.QueueBuild(r.Context(), colonyKey, req.DesignID)
	if err != nil {
		respondServiceError(w, r, ErrMsgQueueBuildFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, BuildRequestResponse{Message: MsgBuildQueued, Request: *queued})
}

// HandleQueueUpgrade orders the next level of an existing building
// @Summary Queue an upgrade
// @Tags construction
// @Produce json
// @Param building path string true "Building key"
// @Success 201 {object} BuildRequestResponse
// @Failure 404 {object} ErrorResponse "Unknown building"
// @Failure 409 {object} ErrorResponse "Max level, upgrade in flight or dependencies missing"
// @Security ApiKeyAuth
// @Router /buildings/{building}/upgrade [post]
func (h *ConstructionHandler) HandleQueueUpgrade(w http.ResponseWriter, r *http.Request) {
	buildingKey, ok := GetPathParam(r, w, ParamBuilding)
	if !ok {
		return
	}

	queued, err := h.service.QueueUpgrade(r.Context(), buildingKey)
	if err != nil {
		respondServiceError(w, r, ErrMsgQueueUpgradeFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, BuildRequestResponse{Message: MsgUpgradeQueued, Request: *queued})
}

// HandleCancel drops an in-flight request
// @Summary Cancel a build request
// @Tags construction
// @Produce json
// @Param request path string true "Build request key"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Unknown request"
// @Security ApiKeyAuth
// @Router /requests/{request} [delete]
func (h *ConstructionHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	requestKey, ok := GetPathParam(r, w, ParamRequest)
	if !ok {
		return
	}

	if err := h.service.Cancel(r.Context(), requestKey); err != nil {
		respondServiceError(w, r, ErrMsgCancelFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRequestCanceled})
}

func nonNil(entries []domain.Entry) []domain.Entry {
	if entries == nil {
		return []domain.Entry{}
	}
	return entries
}
