package catalog

import "strings"

// TableName derives the relational table name for a shape name: pluralize
// (a trailing "y" becomes "ies", otherwise append "s") and lowercase.
// "Product" -> "products", "Category" -> "categories".
func TableName(typeName string) string {
	plural := typeName + "s"
	if strings.HasSuffix(typeName, "y") {
		plural = typeName[:len(typeName)-1] + "ies"
	}
	return strings.ToLower(plural)
}

// ColumnName derives the snake_case column name for a field name: the
// first letter is lowercased and every subsequent uppercase letter is
// preceded by an underscore and lowercased. "CategoryId" -> "category_id".
func ColumnName(field string) string {
	if field == "" {
		return field
	}

	var b strings.Builder
	b.Grow(len(field) + 4)
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
