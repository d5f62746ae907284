package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/pkg/pagination"
	"github.com/JaimeStill/jobtracker/pkg/query"
)

// Schema describes how a partitioned table maps onto an entity type.
type Schema[T any] struct {
	// Projection maps view fields to columns. Its order is the order of the
	// values passed to Collection.Create.
	Projection *query.ProjectionMap

	// ID, Partition and Sort name view fields of the projection: the identity
	// column, the partition (ownership) column, and the timestamp lists are
	// ordered by, newest first.
	ID        string
	Partition string
	Sort      string

	// Mutable lists the view fields rewritten by Collection.Replace, in the
	// order of the values passed to it.
	Mutable []string

	Scan ScanFunc[T]

	// Cursor returns the keyset position of an item.
	Cursor func(T) pagination.Cursor
}

// Collection provides partition-scoped access to one entity kind. Every
// operation takes the partition value and never reads or writes rows outside it.
type Collection[T any] struct {
	db       *sql.DB
	schema   Schema[T]
	notFound error
	conflict error
}

// NewCollection creates a Collection over db. notFound and conflict are the
// domain errors returned for absent rows and identity collisions.
func NewCollection[T any](db *sql.DB, schema Schema[T], notFound, conflict error) *Collection[T] {
	return &Collection[T]{
		db:       db,
		schema:   schema,
		notFound: notFound,
		conflict: conflict,
	}
}

// Create inserts one row. values follow the projection order.
func (c *Collection[T]) Create(ctx context.Context, values []any) (*T, error) {
	p := c.schema.Projection
	names := p.Names()

	if len(values) != len(names) {
		return nil, fmt.Errorf("create %s: %d values for %d columns", p.Table(), len(values), len(names))
	}

	placeholders := make([]string, len(names))
	for i := range names {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	q := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		p.From(),
		strings.Join(names, ", "),
		strings.Join(placeholders, ", "),
		p.Columns(),
	)

	item, err := QueryOne(ctx, c.db, q, values, c.schema.Scan)
	if err != nil {
		return nil, MapError(err, c.notFound, c.conflict)
	}
	return &item, nil
}

// Get returns the item with id in partition, or nil when no such item exists
// in that partition.
func (c *Collection[T]) Get(ctx context.Context, id, partition uuid.UUID) (*T, error) {
	q, args := query.NewBuilder(c.schema.Projection).
		WhereEquals(c.schema.ID, id).
		WhereEquals(c.schema.Partition, partition).
		BuildSingleOrNull()

	item, err := QueryOne(ctx, c.db, q, args, c.schema.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, MapError(err, c.notFound, c.conflict)
	}
	return &item, nil
}

// List returns one page of the partition, newest first. filter may add
// predicates; they are ANDed after the partition predicate.
func (c *Collection[T]) List(ctx context.Context, partition uuid.UUID, page pagination.PageRequest, filter func(*query.Builder)) (*pagination.Page[T], error) {
	cursor, err := page.Cursor()
	if err != nil {
		return nil, err
	}

	b := query.NewBuilder(
		c.schema.Projection,
		query.SortField{Field: c.schema.Sort, Descending: true},
		query.SortField{Field: c.schema.ID, Descending: true},
	)
	b.WhereEquals(c.schema.Partition, partition)

	if filter != nil {
		filter(b)
	}

	if cursor != nil {
		b.WhereBefore(c.schema.Sort, c.schema.ID, cursor.Sort, cursor.ID)
	}

	q, args := b.BuildPage(page.PageSize + 1)

	items, err := QueryMany(ctx, c.db, q, args, c.schema.Scan)
	if err != nil {
		return nil, MapError(err, c.notFound, c.conflict)
	}

	var next *pagination.Cursor
	if len(items) > page.PageSize {
		items = items[:page.PageSize]
		last := c.schema.Cursor(items[len(items)-1])
		next = &last
	}

	return pagination.NewPage(items, next), nil
}

// Replace rewrites the mutable columns of an existing item and returns the
// stored result. Returns the notFound error when id is absent from partition.
func (c *Collection[T]) Replace(ctx context.Context, id, partition uuid.UUID, values []any) (*T, error) {
	p := c.schema.Projection

	if len(values) != len(c.schema.Mutable) {
		return nil, fmt.Errorf("replace %s: %d values for %d columns", p.Table(), len(values), len(c.schema.Mutable))
	}

	sets := make([]string, len(c.schema.Mutable))
	for i, field := range c.schema.Mutable {
		sets[i] = fmt.Sprintf("%s = $%d", p.Name(field), i+1)
	}

	n := len(values)
	q := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d AND %s = $%d RETURNING %s",
		p.From(),
		strings.Join(sets, ", "),
		p.Column(c.schema.ID), n+1,
		p.Column(c.schema.Partition), n+2,
		p.Columns(),
	)

	args := append(append(make([]any, 0, n+2), values...), id, partition)

	item, err := QueryOne(ctx, c.db, q, args, c.schema.Scan)
	if err != nil {
		return nil, MapError(err, c.notFound, c.conflict)
	}
	return &item, nil
}

// Delete removes the item with id from partition. Returns the notFound error
// when nothing was deleted.
func (c *Collection[T]) Delete(ctx context.Context, id, partition uuid.UUID) error {
	p := c.schema.Projection
	q := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1 AND %s = $2",
		p.From(),
		p.Column(c.schema.ID),
		p.Column(c.schema.Partition),
	)

	if err := ExecExpectOne(ctx, c.db, q, id, partition); err != nil {
		return MapError(err, c.notFound, c.conflict)
	}
	return nil
}

// Count returns the number of items in partition, ignoring any filters.
func (c *Collection[T]) Count(ctx context.Context, partition uuid.UUID) (int, error) {
	q, args := query.NewBuilder(c.schema.Projection).
		WhereEquals(c.schema.Partition, partition).
		BuildCount()

	var n int
	if err := c.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, MapError(err, c.notFound, c.conflict)
	}
	return n, nil
}
