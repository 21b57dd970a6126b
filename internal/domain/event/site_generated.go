package event

import (
	"time"

	"catalog/sitegen/internal/domain"
)

type SiteGeneratedEvent struct {
	RunID       string    `json:"run_id"`     // Identifier of the generation run
	OutputDir   string    `json:"output_dir"` // Root of the written site
	Products    int       `json:"products"`   // Product pages written
	Categories  []string  `json:"categories"` // Category names, first-seen order
	Pages       int       `json:"pages"`      // All pages written, index included
	GeneratedAt time.Time `json:"generated_at"`
}

func NewSiteGeneratedEvent(report *domain.Report) *SiteGeneratedEvent {
	return &SiteGeneratedEvent{
		RunID:       report.RunID,
		OutputDir:   report.OutputDir,
		Products:    report.Products,
		Categories:  report.Categories,
		Pages:       report.Pages,
		GeneratedAt: report.FinishedAt,
	}
}

func (e *SiteGeneratedEvent) EventType() string {
	return "SiteGeneratedEvent"
}

func (e *SiteGeneratedEvent) EventValue() ([]byte, error) {
	return encode(e)
}
