package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/rs/zerolog"

	"github.com/Simplici0/carcost/internal/catalog"
	"github.com/Simplici0/carcost/internal/format"
	"github.com/Simplici0/carcost/internal/postcode"
	"github.com/Simplici0/carcost/internal/report"
	"github.com/Simplici0/carcost/internal/scenario"
	"github.com/Simplici0/carcost/internal/tco"
)

var validate = validator.New()

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, statusResponse{Status: statusOK})
}

func (s *server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, struct {
		Status   string           `json:"status"`
		Scenario scenario.Request `json:"scenario"`
	}{Status: statusOK, Scenario: scenario.Defaults()})
}

func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	f, err := s.formatterFor(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	req := scenario.Defaults()
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ModelID != "" {
		model, err := s.catalog.GetModel(ctx, req.ModelID)
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, fmt.Sprintf("unknown model %s", req.ModelID))
			return
		}
		if err != nil {
			logger.Error().Err(err).Msg("load catalog model")
			respondError(w, r, http.StatusInternalServerError, "failed to load model")
			return
		}
		req = model.ApplyTo(req)
	}

	if err := req.Validate(); err != nil {
		var verr *scenario.ValidationError
		if errors.As(err, &verr) {
			s.metrics.ObserveValidationFailure()
			respondJSON(w, r, http.StatusBadRequest, errorResponse{
				Status: statusError,
				Error:  verr.Error(),
				Fields: verr.Fields,
			})
			return
		}
		logger.Error().Err(err).Msg("validate scenario")
		respondError(w, r, http.StatusInternalServerError, "failed to validate request")
		return
	}

	in := req.Input()
	res, cached := s.engine.Calculate(ctx, in)
	s.metrics.ObserveCalculation(in, cached)

	respondJSON(w, r, http.StatusOK, calculateResponse{
		Status:   statusOK,
		Cached:   cached,
		Scenario: req,
		Summary:  report.Summarize(in, res, req.Warnings(), f),
	})
}

// formatterFor honours ?locale= and ?currency= overrides of the server defaults.
func (s *server) formatterFor(r *http.Request) (*format.Formatter, error) {
	q := r.URL.Query()
	locale, currency := q.Get("locale"), q.Get("currency")
	if locale == "" && currency == "" {
		return s.formatter, nil
	}

	opts := format.Options{Locale: s.formatter.Locale().String(), Currency: s.formatter.CurrencyCode()}
	if locale != "" {
		opts.Locale = locale
	}
	if currency != "" {
		opts.Currency = strings.ToUpper(currency)
	}
	return format.New(opts)
}

func (s *server) handleBands(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, struct {
		Status string    `json:"status"`
		Bands  []bandDTO `json:"bands"`
	}{Status: statusOK, Bands: newBandDTOs(tco.Bands())})
}

type postcodeResponse struct {
	Status   string                `json:"status"`
	Valid    bool                  `json:"valid"`
	Postcode string                `json:"postcode"`
	Outward  string                `json:"outward,omitempty"`
	Area     *catalog.PostcodeArea `json:"area,omitempty"`
}

// handlePostcode reports a malformed postcode as valid=false rather than an
// error; only a well-formed postcode is looked up in the catalog.
func (s *server) handlePostcode(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "postcode")
	if !postcode.Valid(raw) {
		respondJSON(w, r, http.StatusOK, postcodeResponse{
			Status:   statusOK,
			Valid:    false,
			Postcode: postcode.Format(raw),
		})
		return
	}

	outward := postcode.Outward(raw)
	area, err := s.catalog.LookupPostcode(r.Context(), outward)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, fmt.Sprintf("no catalog area for %s", outward))
		return
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("lookup postcode area")
		respondError(w, r, http.StatusInternalServerError, "failed to look up postcode")
		return
	}

	respondJSON(w, r, http.StatusOK, postcodeResponse{
		Status:   statusOK,
		Valid:    true,
		Postcode: postcode.Format(raw),
		Outward:  outward,
		Area:     &area,
	})
}

type modelResponse struct {
	Status string           `json:"status"`
	Model  catalog.CarModel `json:"model"`
}

func (s *server) handleListModels(w http.ResponseWriter, r *http.Request) {
	models, err := s.catalog.ListModels(r.Context(), r.URL.Query().Get("make"))
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list catalog models")
		respondError(w, r, http.StatusInternalServerError, "failed to list models")
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		Status string             `json:"status"`
		Models []catalog.CarModel `json:"models"`
	}{Status: statusOK, Models: models})
}

func (s *server) handleGetModel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	model, err := s.catalog.GetModel(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, fmt.Sprintf("unknown model %s", id))
		return
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("get catalog model")
		respondError(w, r, http.StatusInternalServerError, "failed to load model")
		return
	}
	respondJSON(w, r, http.StatusOK, modelResponse{Status: statusOK, Model: model})
}

type fuelPricesResponse struct {
	Status string             `json:"status"`
	Prices catalog.FuelPrices `json:"prices"`
}

func (s *server) handleFuelPrices(w http.ResponseWriter, r *http.Request) {
	prices, err := s.catalog.FuelPrices(r.Context())
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, "no fuel price sheet")
		return
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("load fuel prices")
		respondError(w, r, http.StatusInternalServerError, "failed to load fuel prices")
		return
	}
	respondJSON(w, r, http.StatusOK, fuelPricesResponse{Status: statusOK, Prices: prices})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, r, http.StatusBadRequest, "email and password are required")
		return
	}

	valid, err := s.auth.validateCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("validate credentials")
		respondError(w, r, http.StatusInternalServerError, "authentication error")
		return
	}
	if !valid {
		respondError(w, r, http.StatusUnauthorized, "invalid credentials")
		return
	}

	s.auth.setSessionCookie(w, req.Email)
	respondJSON(w, r, http.StatusOK, statusResponse{Status: statusOK})
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.clearSessionCookie(w)
	respondJSON(w, r, http.StatusOK, statusResponse{Status: statusOK})
}

func (s *server) handleUpdateFuelPrices(w http.ResponseWriter, r *http.Request) {
	var prices catalog.FuelPrices
	if err := render.DecodeJSON(r.Body, &prices); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := s.catalog.UpdateFuelPrices(r.Context(), prices)
	if errors.Is(err, catalog.ErrInvalid) {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("update fuel prices")
		respondError(w, r, http.StatusInternalServerError, "failed to update fuel prices")
		return
	}
	respondJSON(w, r, http.StatusOK, fuelPricesResponse{Status: statusOK, Prices: saved})
}

func (s *server) handleCreateModel(w http.ResponseWriter, r *http.Request) {
	var model catalog.CarModel
	if err := render.DecodeJSON(r.Body, &model); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	// Ids are always assigned by the store.
	model.ID = ""

	created, err := s.catalog.CreateModel(r.Context(), model)
	if errors.Is(err, catalog.ErrInvalid) {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("create catalog model")
		respondError(w, r, http.StatusInternalServerError, "failed to create model")
		return
	}
	respondJSON(w, r, http.StatusCreated, modelResponse{Status: statusOK, Model: created})
}
