// Package render turns catalog entities into page text through pongo2
// templates loaded from a template directory.
package render

import (
	"errors"
	"fmt"

	"catalog/sitegen/internal/domain"

	"github.com/flosch/pongo2/v6"
)

// ErrTemplate marks a template that cannot be resolved or executed.
var ErrTemplate = errors.New("template error")

const (
	ProductTemplate  = "product.html"
	CategoryTemplate = "category.html"
	IndexTemplate    = "index.html"
)

// Renderer owns its template set, so renderers built for different
// directories never share loaded templates.
type Renderer struct {
	dir string
	set *pongo2.TemplateSet
}

func NewRenderer(templateDir string) (*Renderer, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(templateDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open template directory %s: %w", ErrTemplate, templateDir, err)
	}

	set := pongo2.NewSet("catalog", loader)
	set.Globals.Update(Helpers())

	return &Renderer{
		dir: templateDir,
		set: set,
	}, nil
}

// Render executes the named template with bindings.
func (r *Renderer) Render(name string, bindings pongo2.Context) (string, error) {
	tpl, err := r.set.FromCache(name)
	if err != nil {
		return "", fmt.Errorf("%w: failed to load %s from %s: %w", ErrTemplate, name, r.dir, err)
	}

	out, err := tpl.Execute(bindings)
	if err != nil {
		return "", fmt.Errorf("%w: failed to render %s: %w", ErrTemplate, name, err)
	}

	return out, nil
}

func (r *Renderer) RenderProduct(product *domain.Product) (string, error) {
	return r.Render(ProductTemplate, pongo2.Context{
		"product": product,
	})
}

func (r *Renderer) RenderCategory(group *domain.CategoryGroup) (string, error) {
	return r.Render(CategoryTemplate, pongo2.Context{
		"category": group.Name,
		"slug":     group.Slug(),
		"products": group.Products,
	})
}

func (r *Renderer) RenderIndex(categories *domain.Categories) (string, error) {
	return r.Render(IndexTemplate, pongo2.Context{
		"categories": categories,
	})
}
