package dto

type DashboardCounts struct {
	Jobs         int64 `json:"jobs"`
	Applications int64 `json:"applications"`
	Projects     int64 `json:"projects"`
	Services     int64 `json:"services"`
	Contacts     int64 `json:"contacts"`
}

type MonthlyStat struct {
	Name     string `json:"name"` // short month label, e.g. "Jan"
	Jobs     int    `json:"jobs"`
	Projects int    `json:"projects"`
}

type DashboardStats struct {
	Counts  DashboardCounts `json:"counts"`
	Monthly []MonthlyStat   `json:"monthly"`
}
