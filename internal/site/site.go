// Package site manages the output tree of a generated catalog site.
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"catalog/sitegen/internal/domain"

	"github.com/natefinch/atomic"
	log "github.com/sirupsen/logrus"
)

const (
	StaticDir     = "static"
	ProductsDir   = "products"
	CategoriesDir = "categories"
	IndexFile     = "index.html"
	pageExt       = ".html"

	dirMode  fs.FileMode = 0o755
	pageMode fs.FileMode = 0o644
)

type Site struct {
	root      string
	staticSrc string
}

// New returns a site rooted at root whose static assets are mirrored from
// staticSrc.
func New(root, staticSrc string) *Site {
	return &Site{
		root:      root,
		staticSrc: staticSrc,
	}
}

func (s *Site) Root() string {
	return s.root
}

// Prepare creates the output directories and mirrors the static assets.
// It is safe to call on an existing tree.
func (s *Site) Prepare() error {
	for _, dir := range []string{
		s.root,
		filepath.Join(s.root, StaticDir),
		filepath.Join(s.root, ProductsDir),
		filepath.Join(s.root, CategoriesDir),
	} {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	return s.copyStatic()
}

func (s *Site) copyStatic() error {
	info, err := os.Stat(s.staticSrc)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("No static assets at %s, skipping copy", s.staticSrc)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat static assets %s: %w", s.staticSrc, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("static assets path %s is not a directory", s.staticSrc)
	}

	copied, err := copyTree(s.staticSrc, filepath.Join(s.root, StaticDir))
	if err != nil {
		return err
	}

	log.Debugf("Copied %d static files from %s", copied, s.staticSrc)
	return nil
}

// WritePage writes content to rel under the site root, replacing any
// previous file. It returns the full path written.
func (s *Site) WritePage(rel, content string) (string, error) {
	path := filepath.Join(s.root, rel)

	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return "", fmt.Errorf("failed to write page %s: %w", path, err)
	}
	if err := os.Chmod(path, pageMode); err != nil {
		return "", fmt.Errorf("failed to set mode of page %s: %w", path, err)
	}

	return path, nil
}

func ProductPath(product *domain.Product) string {
	return filepath.Join(ProductsDir, product.ID+pageExt)
}

func CategoryPath(group *domain.CategoryGroup) string {
	return filepath.Join(CategoriesDir, group.Slug()+pageExt)
}

func IndexPath() string {
	return IndexFile
}
