package api

import (
	"fmt"
	"net/http"
)

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "Document Summarization Service is running\n")
	})
	mux.HandleFunc("POST /summarize", handler.HandleSummarize)
}
