package catalog

import "github.com/jackc/pgx/v5"

// Mapping is the explicit field-to-column layout of one shape for the
// relational adapter. Mappings are defined per shape at composition time;
// nothing is derived from the struct at runtime.
type Mapping[T Entity] struct {
	// TypeName is the shape's discriminator value, e.g. "Product".
	TypeName string

	// Fields lists the shape's field names in column order. Columns are
	// derived from them with ColumnName.
	Fields []string

	// Values returns the entity's values in Fields order.
	Values func(entity T) []any

	// Scan reads one row, in Fields order, into a new entity.
	Scan func(row pgx.Row) (T, error)
}

// Table returns the derived table name for the shape.
func (m Mapping[T]) Table() string { return TableName(m.TypeName) }

// Columns returns the derived column names in Fields order.
func (m Mapping[T]) Columns() []string {
	cols := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		cols[i] = ColumnName(f)
	}
	return cols
}

// ProductMapping is the relational layout of the Product shape.
func ProductMapping() Mapping[*Product] {
	return Mapping[*Product]{
		TypeName: TypeProduct,
		Fields: []string{
			"Id", "Type", "CreatedAt", "UpdatedAt",
			"Name", "Description", "Price", "Currency",
			"ImageUrl", "CategoryId", "Stock", "IsPublished",
		},
		Values: func(p *Product) []any {
			return []any{
				p.ID, p.Type, p.CreatedAt, p.UpdatedAt,
				p.Name, p.Description, p.Price, p.Currency,
				p.ImageURL, p.CategoryID, p.Stock, p.IsPublished,
			}
		},
		Scan: func(row pgx.Row) (*Product, error) {
			var p Product
			err := row.Scan(
				&p.ID, &p.Type, &p.CreatedAt, &p.UpdatedAt,
				&p.Name, &p.Description, &p.Price, &p.Currency,
				&p.ImageURL, &p.CategoryID, &p.Stock, &p.IsPublished,
			)
			if err != nil {
				return nil, err
			}
			return &p, nil
		},
	}
}

// CategoryMapping is the relational layout of the Category shape.
func CategoryMapping() Mapping[*Category] {
	return Mapping[*Category]{
		TypeName: TypeCategory,
		Fields: []string{
			"Id", "Type", "CreatedAt", "UpdatedAt",
			"Name", "Description", "ImageUrl",
		},
		Values: func(c *Category) []any {
			return []any{
				c.ID, c.Type, c.CreatedAt, c.UpdatedAt,
				c.Name, c.Description, c.ImageURL,
			}
		},
		Scan: func(row pgx.Row) (*Category, error) {
			var c Category
			err := row.Scan(
				&c.ID, &c.Type, &c.CreatedAt, &c.UpdatedAt,
				&c.Name, &c.Description, &c.ImageURL,
			)
			if err != nil {
				return nil, err
			}
			return &c, nil
		},
	}
}
