package domain

// Column names a field of a catalog row.
type Column string

func (c Column) String() string {
	return string(c)
}

const (
	ColumnID             Column = "id"
	ColumnName           Column = "name"
	ColumnCategory       Column = "category"
	ColumnSubcategory    Column = "subcategory"
	ColumnPrice          Column = "price"
	ColumnDescription    Column = "description"
	ColumnImageURL       Column = "image_url"
	ColumnSpecifications Column = "specifications"
	ColumnStockStatus    Column = "stock_status"
)

// RequiredColumns must be present in every catalog header.
var RequiredColumns = []Column{
	ColumnID,
	ColumnCategory,
	ColumnSpecifications,
}

// SheetColumns is the column order of the products sheet, used when the
// sheet does not label its columns.
var SheetColumns = []Column{
	ColumnID,
	ColumnName,
	ColumnCategory,
	ColumnSubcategory,
	ColumnPrice,
	ColumnDescription,
	ColumnImageURL,
	ColumnSpecifications,
	ColumnStockStatus,
}
