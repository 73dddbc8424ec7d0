// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/pkg/uuid"
)

// PostgresRepository stores one content kind in its catalog table.
type PostgresRepository struct {
	db     *pgxpool.Pool
	schema Schema
}

// NewPostgresRepository binds a repository to the table described by s.
func NewPostgresRepository(db *pgxpool.Pool, s Schema) *PostgresRepository {
	return &PostgresRepository{db: db, schema: s}
}

// # Query Helpers

// selectColumns returns the comma separated column list in [scanItem] order.
func (repository *PostgresRepository) selectColumns() string {
	return strings.Join(repository.schema.Table.Columns(), ", ")
}

// whereClause renders the optional filter predicates.
func (repository *PostgresRepository) whereClause(filter Filter) (string, []any) {
	table := repository.schema.Table

	var conditions []string
	var args []any

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", table.Category, len(args)))
	}
	if filter.Slug != "" {
		args = append(args, filter.Slug)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", table.Slug, len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// scanItem reads one row produced by [selectColumns].
func (repository *PostgresRepository) scanItem(row pgx.Row) (*Item, error) {
	item := &Item{Kind: repository.schema.Kind}
	var frameworksJSON []byte

	err := row.Scan(
		&item.ID, &item.Title, &item.Slug, &item.Description, &item.Content, &item.Category,
		&item.Thumbnail, &item.ImageURLs, &item.PreviewLink, &item.Href, &frameworksJSON,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(frameworksJSON) > 0 {
		if err := json.Unmarshal(frameworksJSON, &item.Frameworks); err != nil {
			return nil, fmt.Errorf("decode frameworks: %w", err)
		}
	}

	normalize(&item.Draft)
	return item, nil
}

// normalize replaces nil lists so they serialize as [] rather than null.
func normalize(draft *Draft) {
	if draft.ImageURLs == nil {
		draft.ImageURLs = []string{}
	}
	if draft.Frameworks == nil {
		draft.Frameworks = []Framework{}
	}
}

// # Reads

func (repository *PostgresRepository) Find(ctx context.Context, filter Filter) ([]*Item, error) {
	table := repository.schema.Table
	where, args := repository.whereClause(filter)

	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s DESC, %s DESC`,
		repository.selectColumns(), table.Table, where, table.CreatedAt, table.ID,
	)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, repository.schema.Resource, "find_"+repository.schema.Collection)
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		item, err := repository.scanItem(rows)
		if err != nil {
			return nil, dberr.Wrap(err, repository.schema.Resource, "scan_"+string(repository.schema.Kind))
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, repository.schema.Resource, "find_"+repository.schema.Collection)
	}
	return items, nil
}

func (repository *PostgresRepository) FindOne(ctx context.Context, filter Filter) (*Item, error) {
	table := repository.schema.Table
	where, args := repository.whereClause(filter)

	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s DESC, %s DESC LIMIT 1`,
		repository.selectColumns(), table.Table, where, table.CreatedAt, table.ID,
	)

	item, err := repository.scanItem(repository.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, repository.schema.Resource, "find_one_"+string(repository.schema.Kind))
	}
	return item, nil
}

func (repository *PostgresRepository) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, repository.schema.Table.Table)

	var total int
	if err := repository.db.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, repository.schema.Resource, "count_"+repository.schema.Collection)
	}
	return total, nil
}

// # Writes

func (repository *PostgresRepository) Insert(ctx context.Context, draft *Draft) (*Item, error) {
	normalize(draft)
	if err := repository.schema.Validate(draft); err != nil {
		return nil, err
	}

	frameworksJSON, err := json.Marshal(draft.Frameworks)
	if err != nil {
		return nil, dberr.Wrap(err, repository.schema.Resource, "encode_frameworks")
	}

	table := repository.schema.Table
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING %s
	`,
		table.Table, table.ID, table.Title, table.Slug, table.Description, table.Content, table.Category,
		table.Thumbnail, table.ImageURLs, table.PreviewLink, table.Href, table.Frameworks,
		table.CreatedAt, table.UpdatedAt,
		repository.selectColumns(),
	)

	row := repository.db.QueryRow(ctx, query,
		uuid.New(), draft.Title, draft.Slug, draft.Description, draft.Content, draft.Category,
		draft.Thumbnail, draft.ImageURLs, draft.PreviewLink, draft.Href, frameworksJSON,
	)

	item, err := repository.scanItem(row)
	if err != nil {
		return nil, dberr.Wrap(err, repository.schema.Resource, "insert_"+string(repository.schema.Kind))
	}
	return item, nil
}

/*
UpdateByID merges the patch into the stored row inside one transaction.

The row is locked, merged in memory, validated as a whole document and then
written back, so a patch can never leave a row that Insert would refuse.
*/
func (repository *PostgresRepository) UpdateByID(ctx context.Context, id string, patch Patch) (*Item, error) {
	table := repository.schema.Table
	resource := repository.schema.Resource
	action := "update_" + string(repository.schema.Kind)

	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return nil, dberr.Wrap(err, resource, action)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	lockQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`,
		repository.selectColumns(), table.Table, table.ID,
	)

	current, err := repository.scanItem(tx.QueryRow(ctx, lockQuery, id))
	if err != nil {
		return nil, dberr.Wrap(err, resource, action)
	}

	merged := current.Draft
	patch.Apply(&merged)
	normalize(&merged)

	if err := repository.schema.Validate(&merged); err != nil {
		return nil, err
	}

	frameworksJSON, err := json.Marshal(merged.Frameworks)
	if err != nil {
		return nil, dberr.Wrap(err, resource, "encode_frameworks")
	}

	updateQuery := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = $11, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		table.Table, table.Title, table.Slug, table.Description, table.Content, table.Category,
		table.Thumbnail, table.ImageURLs, table.PreviewLink, table.Href, table.Frameworks, table.UpdatedAt,
		table.ID,
		repository.selectColumns(),
	)

	updated, err := repository.scanItem(tx.QueryRow(ctx, updateQuery,
		id, merged.Title, merged.Slug, merged.Description, merged.Content, merged.Category,
		merged.Thumbnail, merged.ImageURLs, merged.PreviewLink, merged.Href, frameworksJSON,
	))
	if err != nil {
		return nil, dberr.Wrap(err, resource, action)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, dberr.Wrap(err, resource, action)
	}
	return updated, nil
}

func (repository *PostgresRepository) DeleteByID(ctx context.Context, id string) (*Item, error) {
	table := repository.schema.Table
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		table.Table, table.ID, repository.selectColumns(),
	)

	item, err := repository.scanItem(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, repository.schema.Resource, "delete_"+string(repository.schema.Kind))
	}
	return item, nil
}
