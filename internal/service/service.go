package service

import (
	"context"
	"fmt"
	"time"

	"catalog/sitegen/internal/catalog"
	"catalog/sitegen/internal/domain"
	"catalog/sitegen/internal/domain/event"
	"catalog/sitegen/internal/queue"
	"catalog/sitegen/internal/render"
	"catalog/sitegen/internal/repository"
	"catalog/sitegen/internal/site"
	"catalog/sitegen/internal/state"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Service generates the catalog site. Stages run one after another and the
// first failure aborts the run; pages written before it stay on disk.
type Service struct {
	source       catalog.Source
	renderer     *render.Renderer
	site         *site.Site
	repository   repository.ProductRepository
	queue        queue.Queue
	stateManager state.StateManager
}

// NewService wires a generator. repository, queue and stateManager are
// optional and may be nil.
func NewService(
	source catalog.Source,
	renderer *render.Renderer,
	site *site.Site,
	repository repository.ProductRepository,
	queue queue.Queue,
	stateManager state.StateManager,
) *Service {
	return &Service{
		source:       source,
		renderer:     renderer,
		site:         site,
		repository:   repository,
		queue:        queue,
		stateManager: stateManager,
	}
}

func (s *Service) Generate(ctx context.Context) (*domain.Report, error) {
	report := &domain.Report{
		RunID:     uuid.NewString(),
		OutputDir: s.site.Root(),
		StartedAt: time.Now(),
	}

	log.Infof("🔄 Generating site into %s (run %s)", report.OutputDir, report.RunID)
	s.logLastRun(ctx)

	if err := s.site.Prepare(); err != nil {
		return nil, fmt.Errorf("failed to initialize output: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	products, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog from %s: %w", s.source.Name(), err)
	}
	log.Infof("✅ Read %d products from %s", len(products), s.source.Name())

	categories := catalog.Categorize(products)
	report.Categories = categories.Names()
	log.Infof("✅ Grouped products into %d categories", categories.Len())

	if err := s.renderProducts(ctx, products, report); err != nil {
		return nil, err
	}

	if err := s.renderCategories(ctx, categories, report); err != nil {
		return nil, err
	}

	if err := s.renderIndex(ctx, categories, report); err != nil {
		return nil, err
	}

	if err := s.mirrorProducts(ctx, products); err != nil {
		return nil, err
	}

	report.FinishedAt = time.Now()

	if err := s.announce(ctx, report); err != nil {
		return nil, err
	}

	log.Infof("✅ Wrote %d pages in %v", report.Pages, report.Duration().Round(time.Millisecond))
	return report, nil
}

func (s *Service) renderProducts(ctx context.Context, products []*domain.Product, report *domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, product := range products {
		content, err := s.renderer.RenderProduct(product)
		if err != nil {
			return fmt.Errorf("failed to render product %s: %w", product.ID, err)
		}

		if err := s.writePage(site.ProductPath(product), content, report); err != nil {
			return err
		}
		report.Products++
	}

	log.Infof("✅ Rendered %d product pages", report.Products)
	return nil
}

func (s *Service) renderCategories(ctx context.Context, categories *domain.Categories, report *domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, group := range categories.Groups() {
		content, err := s.renderer.RenderCategory(group)
		if err != nil {
			return fmt.Errorf("failed to render category %q: %w", group.Name, err)
		}

		if err := s.writePage(site.CategoryPath(group), content, report); err != nil {
			return err
		}
	}

	log.Infof("✅ Rendered %d category pages", categories.Len())
	return nil
}

func (s *Service) renderIndex(ctx context.Context, categories *domain.Categories, report *domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := s.renderer.RenderIndex(categories)
	if err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}

	return s.writePage(site.IndexPath(), content, report)
}

func (s *Service) writePage(rel, content string, report *domain.Report) error {
	path, err := s.site.WritePage(rel, content)
	if err != nil {
		return err
	}

	report.Pages++
	log.Debugf("Wrote %s", path)
	return nil
}

// mirrorProducts upserts every product into the repository, when one is
// configured.
func (s *Service) mirrorProducts(ctx context.Context, products []*domain.Product) error {
	if s.repository == nil {
		return nil
	}

	if err := s.repository.EnsureSchema(ctx); err != nil {
		return err
	}

	for _, product := range products {
		if err := s.repository.SaveProduct(ctx, product); err != nil {
			return err
		}
	}

	log.Infof("✅ Mirrored %d products to the database", len(products))
	return nil
}

// announce records the run and publishes a SiteGeneratedEvent, when the
// state manager and queue are configured.
func (s *Service) announce(ctx context.Context, report *domain.Report) error {
	generated := event.NewSiteGeneratedEvent(report)

	if s.stateManager != nil {
		if err := s.stateManager.SetLastRun(ctx, generated); err != nil {
			return err
		}
	}

	if s.queue != nil {
		messageID, err := s.queue.AddEvent(ctx, generated)
		if err != nil {
			return fmt.Errorf("failed to publish run %s: %w", report.RunID, err)
		}
		log.Infof("📣 Published run %s as message %s", report.RunID, messageID)
	}

	return nil
}

func (s *Service) logLastRun(ctx context.Context) {
	if s.stateManager == nil {
		return
	}

	last, err := s.stateManager.GetLastRun(ctx)
	if err != nil {
		log.Warnf("⚠️ Failed to read previous run: %v", err)
		return
	}
	if last == nil {
		return
	}

	log.Infof("Previous run %s wrote %d pages at %s",
		last.RunID, last.Pages, last.GeneratedAt.Format(time.RFC3339))
}
