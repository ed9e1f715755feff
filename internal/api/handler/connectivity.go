package handler

import (
	"net/http"

	"github.com/sajangez/sajangez-api/internal/scheduler"
)

func GetConnectivityStatus(probe *scheduler.ConnectivityProbeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(probe.GetStatus())
	}
}

func TriggerConnectivityProbe(probe *scheduler.ConnectivityProbeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		probe.TriggerManualProbe()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "connectivity probe started",
		})
	}
}
