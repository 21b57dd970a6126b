package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CategoryGroup is a category name with its products in catalog order.
type CategoryGroup struct {
	Name     string     `json:"name"`
	Products []*Product `json:"products"`
}

func (g *CategoryGroup) Slug() string {
	return Slug(g.Name)
}

// Slug lowercases name and replaces spaces with hyphens. Every other
// character, including punctuation and slashes, is kept as is.
func Slug(name string) string {
	return strings.ReplaceAll(cases.Lower(language.Und).String(name), " ", "-")
}

// Categories maps category names to their groups and remembers the order in
// which names were first seen.
type Categories struct {
	groups []*CategoryGroup
	index  map[string]*CategoryGroup
}

func NewCategories() *Categories {
	return &Categories{
		index: make(map[string]*CategoryGroup),
	}
}

// Add appends p to the group named by its category, creating the group on
// first sight.
func (c *Categories) Add(p *Product) {
	group, ok := c.index[p.Category]
	if !ok {
		group = &CategoryGroup{Name: p.Category}
		c.index[p.Category] = group
		c.groups = append(c.groups, group)
	}
	group.Products = append(group.Products, p)
}

func (c *Categories) Groups() []*CategoryGroup {
	return c.groups
}

// Get returns the named group, or nil.
func (c *Categories) Get(name string) *CategoryGroup {
	return c.index[name]
}

func (c *Categories) Names() []string {
	names := make([]string, len(c.groups))
	for i, group := range c.groups {
		names[i] = group.Name
	}
	return names
}

func (c *Categories) Len() int {
	return len(c.groups)
}
