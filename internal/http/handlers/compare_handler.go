// README: Comparison handlers: form page, HTML results, JSON view model and PDF sheet.
package handlers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"busquote/internal/http/middleware"
	"busquote/internal/modules/comparison"
	"busquote/internal/modules/export"
	"busquote/internal/modules/quote"
)

const invalidTripMessage = "Please check your trip details."

type CompareHandler struct {
	comparison *comparison.Service
}

func NewCompareHandler(svc *comparison.Service) *CompareHandler {
	return &CompareHandler{comparison: svc}
}

type compareQuery struct {
	ZipCode    string `form:"zip_code" binding:"required"`
	Passengers int    `form:"passengers" binding:"required,min=1"`
	Hours      int    `form:"hours" binding:"required,min=1"`
	Date       string `form:"date" binding:"required,datetime=2006-01-02"`
	EventType  string `form:"event_type"`
}

func (q compareQuery) trip() quote.TripRequest {
	return quote.TripRequest{
		ZipCode:    strings.TrimSpace(q.ZipCode),
		Passengers: q.Passengers,
		Hours:      q.Hours,
		Date:       q.Date,
		EventType:  q.EventType,
	}
}

type pageData struct {
	Form       compareQuery
	EventTypes []string
	Error      string
	Trip       comparison.TripSummary
	View       *comparison.ViewModel
	PDFHref    template.URL
}

func newPageData(q compareQuery) pageData {
	return pageData{Form: q, EventTypes: quote.EventTypes}
}

// Form renders the empty trip form.
func (h *CompareHandler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "page.tmpl", newPageData(compareQuery{Passengers: 10, Hours: 4}))
}

// Page renders either the full comparison or the error state, never both.
func (h *CompareHandler) Page(c *gin.Context) {
	q, err := bindTrip(c)
	if err != nil {
		data := newPageData(q)
		data.Error = invalidTripMessage
		c.HTML(compareErrorStatus(err), "page.tmpl", data)
		return
	}

	out := h.comparison.Compare(c.Request.Context(), q.trip())
	data := newPageData(q)
	data.Trip = out.Trip
	if !out.Succeeded() {
		data.Error = out.Message
		c.HTML(compareErrorStatus(out.Err), "page.tmpl", data)
		return
	}
	data.View = out.View
	data.PDFHref = template.URL("/compare.pdf?" + quote.QueryParams(q.trip()).Encode())
	c.HTML(http.StatusOK, "page.tmpl", data)
}

type compareResponse struct {
	Trip comparison.TripSummary `json:"trip"`
	View *comparison.ViewModel  `json:"view"`
}

// API returns the view model as JSON.
func (h *CompareHandler) API(c *gin.Context) {
	q, err := bindTrip(c)
	if err != nil {
		writeError(c, compareErrorStatus(err), invalidTripMessage)
		return
	}
	out := h.comparison.Compare(c.Request.Context(), q.trip())
	if !out.Succeeded() {
		writeError(c, compareErrorStatus(out.Err), out.Message)
		return
	}
	writeJSON(c, http.StatusOK, compareResponse{Trip: out.Trip, View: out.View})
}

// PDF streams the quote sheet as an attachment.
func (h *CompareHandler) PDF(c *gin.Context) {
	q, err := bindTrip(c)
	if err != nil {
		writeError(c, compareErrorStatus(err), invalidTripMessage)
		return
	}
	out := h.comparison.Compare(c.Request.Context(), q.trip())
	if !out.Succeeded() {
		writeError(c, compareErrorStatus(out.Err), out.Message)
		return
	}
	body, name, err := export.QuoteSheet(out.Trip, *out.View)
	if err != nil {
		log.Printf("[HTTP] request_id=%s action=quote_sheet error=%v", middleware.GetRequestID(c), err)
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/pdf", body)
}

// bindTrip validates the query. Every surface answers a bad trip with
// invalidTripMessage; the specific reason only goes to the log.
func bindTrip(c *gin.Context) (compareQuery, error) {
	q, err := parseTrip(c)
	if err != nil {
		log.Printf("[HTTP] request_id=%s action=bind_trip error=%v", middleware.GetRequestID(c), err)
	}
	return q, err
}

func parseTrip(c *gin.Context) (compareQuery, error) {
	var q compareQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, &inputError{msg: err.Error()}
	}
	if strings.TrimSpace(q.ZipCode) == "" {
		return q, &inputError{msg: "zip_code is required"}
	}
	if !quote.IsEventType(q.EventType) {
		return q, &inputError{msg: "unknown event_type"}
	}
	return q, nil
}
