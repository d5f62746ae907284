// Package query provides SQL query building utilities with projection mapping.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps view property names to the columns of a single table.
// Qualified references (alias.column) are used in SELECT lists and predicates;
// bare names are used where PostgreSQL forbids qualification (INSERT column
// lists and UPDATE SET targets).
type ProjectionMap struct {
	schema    string
	table     string
	alias     string
	qualified map[string]string
	names     map[string]string
	order     []string
}

// NewProjectionMap creates a ProjectionMap for the given schema, table, and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:    schema,
		table:     table,
		alias:     alias,
		qualified: make(map[string]string),
		names:     make(map[string]string),
		order:     make([]string, 0),
	}
}

// Project adds a column mapping from database column to view property name.
// Projection order is the order of SELECT, INSERT, and RETURNING lists.
func (p *ProjectionMap) Project(column, viewName string) *ProjectionMap {
	p.qualified[viewName] = fmt.Sprintf("%s.%s", p.alias, column)
	p.names[viewName] = column
	p.order = append(p.order, viewName)
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the schema-qualified table name without alias.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s", p.schema, p.table)
}

// From returns the table reference with its alias, for FROM and DML targets.
func (p *ProjectionMap) From() string {
	return fmt.Sprintf("%s.%s AS %s", p.schema, p.table, p.alias)
}

// Column returns the qualified column for a view property name, or the input if not mapped.
func (p *ProjectionMap) Column(viewName string) string {
	if col, ok := p.qualified[viewName]; ok {
		return col
	}
	return viewName
}

// Name returns the unqualified column for a view property name, or the input if not mapped.
func (p *ProjectionMap) Name(viewName string) string {
	if col, ok := p.names[viewName]; ok {
		return col
	}
	return viewName
}

// Columns returns all mapped qualified columns as a comma-separated string.
func (p *ProjectionMap) Columns() string {
	cols := make([]string, len(p.order))
	for i, view := range p.order {
		cols[i] = p.qualified[view]
	}
	return strings.Join(cols, ", ")
}

// Names returns the unqualified column names in projection order.
func (p *ProjectionMap) Names() []string {
	cols := make([]string, len(p.order))
	for i, view := range p.order {
		cols[i] = p.names[view]
	}
	return cols
}

// Fields returns the view property names in projection order.
func (p *ProjectionMap) Fields() []string {
	return p.order
}
