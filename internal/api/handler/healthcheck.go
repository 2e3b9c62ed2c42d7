package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
)

type healthcheckResponse struct {
	Status      string `json:"status"`
	Time        string `json:"time"`
	TableLoaded bool   `json:"table_loaded"`
	SnapshotID  string `json:"snapshot_id,omitempty"`
	Records     int    `json:"records"`
}

// HealthcheckHandler responde sempre 200; a tabela é consultada sem acessar a fonte
func HealthcheckHandler(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := healthcheckResponse{
			Status: "ok",
			Time:   time.Now().Format(time.RFC3339),
		}

		if table := service.Snapshot(); table != nil {
			resp.TableLoaded = true
			resp.SnapshotID = table.SnapshotID
			resp.Records = table.Len()
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}
