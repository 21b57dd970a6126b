package domain

import "time"

// Report summarizes one generation run.
type Report struct {
	RunID      string    `json:"run_id"`
	OutputDir  string    `json:"output_dir"`
	Products   int       `json:"products"`
	Categories []string  `json:"categories"`
	Pages      int       `json:"pages"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
