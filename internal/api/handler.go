// Package api exposes summarization over HTTP.
package api

import (
	"net/http"

	"github.com/rosette-api-community/document-summarization/internal/adm"
	"github.com/rosette-api-community/document-summarization/internal/config"
	"github.com/rosette-api-community/document-summarization/internal/summarizer"
	"github.com/rosette-api-community/document-summarization/internal/utils"
	"github.com/rosette-api-community/document-summarization/internal/utils/httputils"
)

// ADMProvider supplies annotated documents. Satisfied by *rosette.Client;
// tests stub it.
type ADMProvider interface {
	GetADM(content, language string, uri bool, reqID string) (*adm.Document, error)
}

type Handler struct {
	logger    *utils.Logger
	annotator ADMProvider
	cfg       *config.Config
}

func NewHandler(logger *utils.Logger, annotator ADMProvider, cfg *config.Config) *Handler {
	return &Handler{
		logger:    logger,
		annotator: annotator,
		cfg:       cfg,
	}
}

func (h *Handler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	reqID := ReqIDFromContext(r.Context())

	if _, err := httputils.LogRequestBody(r, h.logger, reqID); err != nil {
		h.logger.Error(&reqID, "Failed to read request body: %v", err)
		httputils.HandleError(w, err)
		return
	}

	var payload SummarizeRequest
	if err := httputils.DecodeJSON(r, &payload); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	if err := h.validate(&payload); err != nil {
		h.logger.Error(&reqID, "Invalid summarize request: %v", err)
		httputils.HandleError(w, err)
		return
	}

	content := payload.Content
	uri := false
	if payload.ContentURI != "" {
		content = payload.ContentURI
		uri = true
	}

	h.logger.Info(&reqID, "Summarizing %s (percent=%v, topN=%d)",
		contentLabel(payload), payload.Percent, payload.TopN)

	document, err := h.annotator.GetADM(content, payload.Language, uri, reqID)
	if err != nil {
		h.logger.Error(&reqID, "Annotation request failed: %v", err)
		httputils.HandleError(w, err)
		return
	}

	summary, err := summarizer.Summarize(document, payload.Percent, payload.TopN)
	if err != nil {
		h.logger.Error(&reqID, "Summarization failed: %v", err)
		httputils.HandleError(w, &httputils.HTTPError{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
		return
	}

	h.logger.Info(&reqID, "Summarized document: %s", summary.Info)

	if payload.Verbose {
		document.Attributes.Summary = summary
		if err := httputils.JSONResponse(w, http.StatusOK, document); err != nil {
			h.logger.Error(&reqID, "Error sending response: %v", err)
		}
		return
	}

	response := SummarizeResponse{Info: summary.Info, Summary: summary.Summary}
	if err := httputils.SuccessResponse(w, "Document summarized", response); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) validate(payload *SummarizeRequest) error {
	if payload.Content == "" && payload.ContentURI == "" {
		return &httputils.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "One of 'content' or 'contentUri' is required",
		}
	}
	if payload.Content != "" && payload.ContentURI != "" {
		return &httputils.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "'content' and 'contentUri' are mutually exclusive",
		}
	}

	if payload.Percent == 0 {
		payload.Percent = h.cfg.Summary.Percent
	}
	if payload.TopN == 0 {
		payload.TopN = h.cfg.Summary.TopN
	}

	if payload.Percent <= 0 || payload.Percent > 1 {
		return &httputils.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "'percent' must be in (0, 1]",
		}
	}
	if payload.TopN < 0 {
		return &httputils.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "'topN' must be positive",
		}
	}

	return nil
}

func contentLabel(payload SummarizeRequest) string {
	if payload.ContentURI != "" {
		return payload.ContentURI
	}
	return "inline content"
}
