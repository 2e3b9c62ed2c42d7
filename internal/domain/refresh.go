package domain

// TableRefreshStatus é o estado do agendador de recarga da tabela
type TableRefreshStatus struct {
	Enabled          bool   `json:"enabled"`
	CronSchedule     string `json:"cron_schedule"`
	Running          bool   `json:"running"`
	LastStartedAt    string `json:"last_started_at,omitempty"`
	LastCompletedAt  string `json:"last_completed_at,omitempty"`
	LastError        string `json:"last_error,omitempty"`
	SnapshotID       string `json:"snapshot_id,omitempty"`
	Records          int    `json:"records"`
	SnapshotLoadedAt string `json:"snapshot_loaded_at,omitempty"`
}
