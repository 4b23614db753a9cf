package http

import (
	"net/http"

	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/model"
	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/types"
)

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	status := &model.HealthStatus{
		Status:  "healthy",
		Service: model.ServiceName,
		Version: types.Version,
	}

	writeJSON(r.Context(), w, status, http.StatusOK)
}
