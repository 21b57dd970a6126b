package domain

// Product is one catalog row. Fields holds every raw column, including the
// unparsed specifications string.
type Product struct {
	ID             string            `json:"id"`
	Category       string            `json:"category"`
	Specifications Specifications    `json:"specifications"`
	Fields         map[string]string `json:"fields"`
}

// Field returns the raw value of the named column, or "" if the row has none.
func (p *Product) Field(name string) string {
	return p.Fields[name]
}

func (p *Product) Name() string {
	return p.Field(ColumnName.String())
}

func (p *Product) Price() string {
	return p.Field(ColumnPrice.String())
}

func (p *Product) Description() string {
	return p.Field(ColumnDescription.String())
}

func (p *Product) ImageURL() string {
	return p.Field(ColumnImageURL.String())
}

func (p *Product) StockStatus() string {
	return p.Field(ColumnStockStatus.String())
}
