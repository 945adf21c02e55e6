package main

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/Simplici0/carcost/internal/report"
	"github.com/Simplici0/carcost/internal/scenario"
	"github.com/Simplici0/carcost/internal/tco"
)

const (
	statusOK    = "OK"
	statusError = "Error"
)

type statusResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Status string                `json:"status"`
	Error  string                `json:"error"`
	Fields []scenario.FieldError `json:"fields,omitempty"`
}

func respondJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	render.Status(r, code)
	render.JSON(w, r, v)
}

func respondError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	respondJSON(w, r, code, errorResponse{Status: statusError, Error: msg})
}

type calculateResponse struct {
	Status   string           `json:"status"`
	Cached   bool             `json:"cached"`
	Scenario scenario.Request `json:"scenario"`
	report.Summary
}

type bandDTO struct {
	Band      tco.TaxBand `json:"band"`
	MaxCO2    *int        `json:"maxCO2"`
	AnnualTax float64     `json:"annualTax"`
}

func newBandDTOs(bands []tco.BandRate) []bandDTO {
	out := make([]bandDTO, 0, len(bands))
	for _, b := range bands {
		dto := bandDTO{Band: b.Band, AnnualTax: b.AnnualTax}
		if b.MaxCO2 >= 0 {
			maxCO2 := b.MaxCO2
			dto.MaxCO2 = &maxCO2
		}
		out = append(out, dto)
	}
	return out
}
