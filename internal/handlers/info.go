package handlers

import (
	"net/http"

	"notekeeper/internal/handlers/render"
)

func handleInfo() http.Handler {
	type InfoResponse struct {
		Service string `json:"service"`
		Status  string `json:"status"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, InfoResponse{Service: "notekeeper", Status: "ok"})
	})
}
