package gigs

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gigmart/internal/domain"
	"github.com/GlebRadaev/gigmart/internal/dto"
	"github.com/GlebRadaev/gigmart/internal/handlers/httperr"
	"github.com/GlebRadaev/gigmart/pkg/auth"
	"github.com/GlebRadaev/gigmart/pkg/utils"
)

type Service interface {
	CreateGig(ctx context.Context, posterID int, title, description string, reward int64) (*domain.Gig, error)
	GetGig(ctx context.Context, gigID int) (*domain.Gig, error)
	ListOpenGigs(ctx context.Context, limit int) ([]domain.Gig, error)
	ListGigsByPoster(ctx context.Context, posterID, limit int) ([]domain.Gig, error)
	ListApplications(ctx context.Context, callerID, gigID int) ([]domain.Application, error)
	Apply(ctx context.Context, gigID, applicantID int, message string) (*domain.Application, error)
	Withdraw(ctx context.Context, callerID, applicationID int) error
	Accept(ctx context.Context, posterID, gigID, applicantID int) (*domain.Gig, error)
	Close(ctx context.Context, posterID, gigID int) (*domain.Gig, error)
}

type GigHandler struct {
	gigService Service
}

func New(gigService Service) *GigHandler {
	return &GigHandler{
		gigService: gigService,
	}
}

// CreateGig godoc
//
//	@Summary		Post a gig
//	@Description	Create an OPEN gig owned by the caller
//	@Tags			Gigs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateGigRequestDTO	true	"Gig payload"
//	@Success		201		{object}	dto.GigResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing title or negative reward"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/gigs [post]
func (h *GigHandler) CreateGig(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateGigRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	gig, err := h.gigService.CreateGig(r.Context(), userID, req.Title, req.Description, req.Reward)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromGig(gig))
}

// ListGigs godoc
//
//	@Summary		List gigs
//	@Description	Open gigs, newest first. With poster_id, that poster's gigs in every state.
//	@Tags			Gigs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit		query		int	false	"Maximum number of gigs"
//	@Param			poster_id	query		int	false	"Only gigs posted by this user"
//	@Success		200			{array}		dto.GigResponseDTO
//	@Success		204			{object}	utils.Response	"No gigs"
//	@Failure		400			{object}	utils.Response	"Invalid limit or poster id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/gigs [get]
func (h *GigHandler) ListGigs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
	}

	var (
		gigs []domain.Gig
		err  error
	)
	if raw := r.URL.Query().Get("poster_id"); raw != "" {
		posterID, convErr := strconv.Atoi(raw)
		if convErr != nil || posterID <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid poster id")
			return
		}
		gigs, err = h.gigService.ListGigsByPoster(r.Context(), posterID, limit)
	} else {
		gigs, err = h.gigService.ListOpenGigs(r.Context(), limit)
	}
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if len(gigs) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	response := make([]dto.GigResponseDTO, len(gigs))
	for i := range gigs {
		response[i] = dto.FromGig(&gigs[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetGig godoc
//
//	@Summary		Get a gig
//	@Tags			Gigs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			gigID	path		int	true	"Gig ID"
//	@Success		200		{object}	dto.GigResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid gig id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Gig not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/gigs/{gigID} [get]
func (h *GigHandler) GetGig(w http.ResponseWriter, r *http.Request) {
	gigID, ok := pathID(w, r, "gigID")
	if !ok {
		return
	}

	gig, err := h.gigService.GetGig(r.Context(), gigID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromGig(gig))
}

// ListApplications godoc
//
//	@Summary		List applications for a gig
//	@Description	Pending applications, oldest first. Poster only.
//	@Tags			Gigs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			gigID	path		int	true	"Gig ID"
//	@Success		200		{array}		dto.ApplicationResponseDTO
//	@Success		204		{object}	utils.Response	"No applications"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Caller is not the poster"
//	@Failure		404		{object}	utils.Response	"Gig not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/gigs/{gigID}/applications [get]
func (h *GigHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	gigID, ok := pathID(w, r, "gigID")
	if !ok {
		return
	}

	apps, err := h.gigService.ListApplications(r.Context(), userID, gigID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if len(apps) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	response := make([]dto.ApplicationResponseDTO, len(apps))
	for i := range apps {
		response[i] = dto.FromApplication(&apps[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Apply godoc
//
//	@Summary		Apply to a gig
//	@Tags			Gigs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			gigID	path		int					true	"Gig ID"
//	@Param			request	body		dto.ApplyRequestDTO	false	"Optional message"
//	@Success		201		{object}	dto.ApplicationResponseDTO
//	@Failure		400		{object}	utils.Response	"Poster can't apply to own gig"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Gig not found"
//	@Failure		409		{object}	utils.Response	"Gig not open or already applied"
//	@Failure		503		{object}	utils.Response	"Gig busy, retry"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/gigs/{gigID}/applications [post]
func (h *GigHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	gigID, ok := pathID(w, r, "gigID")
	if !ok {
		return
	}

	var req dto.ApplyRequestDTO
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	app, err := h.gigService.Apply(r.Context(), gigID, userID, req.Message)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromApplication(app))
}

// Withdraw godoc
//
//	@Summary		Withdraw an application
//	@Tags			Gigs
//	@Security		BearerAuth
//	@Param			applicationID	path	int	true	"Application ID"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not the applicant"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{applicationID} [delete]
func (h *GigHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	applicationID, ok := pathID(w, r, "applicationID")
	if !ok {
		return
	}

	if err := h.gigService.Withdraw(r.Context(), userID, applicationID); err != nil {
		httperr.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Accept godoc
//
//	@Summary		Accept an applicant
//	@Description	Assign the gig to an applicant. Depending on the reward policy the reward is paid in the same transaction.
//	@Tags			Gigs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			gigID	path		int						true	"Gig ID"
//	@Param			request	body		dto.AcceptRequestDTO	true	"Applicant to accept"
//	@Success		200		{object}	dto.GigResponseDTO
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		402		{object}	dto.InsufficientFundsResponseDTO	"Poster can't pay the reward"
//	@Failure		403		{object}	utils.Response						"Caller is not the poster"
//	@Failure		404		{object}	utils.Response						"Gig or application not found"
//	@Failure		409		{object}	utils.Response						"Gig not open"
//	@Failure		503		{object}	utils.Response						"Gig busy, retry"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/gigs/{gigID}/accept [post]
func (h *GigHandler) Accept(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	gigID, ok := pathID(w, r, "gigID")
	if !ok {
		return
	}

	var req dto.AcceptRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	gig, err := h.gigService.Accept(r.Context(), userID, gigID, req.ApplicantID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromGig(gig))
}

// Close godoc
//
//	@Summary		Close a gig
//	@Tags			Gigs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			gigID	path		int	true	"Gig ID"
//	@Success		200		{object}	dto.GigResponseDTO
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		402		{object}	dto.InsufficientFundsResponseDTO	"Poster can't pay the reward"
//	@Failure		403		{object}	utils.Response						"Caller is not the poster"
//	@Failure		404		{object}	utils.Response						"Gig not found"
//	@Failure		409		{object}	utils.Response						"Gig already closed"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/gigs/{gigID}/close [post]
func (h *GigHandler) Close(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	gigID, ok := pathID(w, r, "gigID")
	if !ok {
		return
	}

	gig, err := h.gigService.Close(r.Context(), userID, gigID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromGig(gig))
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}
