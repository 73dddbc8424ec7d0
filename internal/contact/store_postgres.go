// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/pkg/uuid"
)

const resource = "Contact"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func selectColumns() string {
	return strings.Join(schema.InboxContact.Columns(), ", ")
}

func scanContact(row pgx.Row) (*Contact, error) {
	c := &Contact{}
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.WhatsApp, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// statusClause renders the optional status predicate as $1.
func statusClause(filter Filter) (string, []any) {
	if filter.Status == "" {
		return "", nil
	}
	return fmt.Sprintf(" WHERE %s = $1", schema.InboxContact.Status), []any{string(filter.Status)}
}

func (repository *PostgresRepository) List(ctx context.Context, filter Filter) ([]*Contact, error) {
	where, args := statusClause(filter)
	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s DESC, %s DESC`,
		selectColumns(), schema.InboxContact.Table, where, schema.InboxContact.CreatedAt, schema.InboxContact.ID,
	)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, resource, "list_contacts")
	}
	defer rows.Close()

	contacts := []*Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resource, "scan_contact")
		}
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resource, "list_contacts")
	}
	return contacts, nil
}

func (repository *PostgresRepository) Count(ctx context.Context, filter Filter) (int, error) {
	where, args := statusClause(filter)
	query := fmt.Sprintf(`SELECT count(*) FROM %s%s`, schema.InboxContact.Table, where)

	var total int
	if err := repository.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, resource, "count_contacts")
	}
	return total, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, c *Contact) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.InboxContact.Table, schema.InboxContact.ID, schema.InboxContact.Name, schema.InboxContact.Email,
		schema.InboxContact.Subject, schema.InboxContact.Message, schema.InboxContact.WhatsApp,
		schema.InboxContact.Status, schema.InboxContact.CreatedAt, schema.InboxContact.UpdatedAt,
		schema.InboxContact.CreatedAt, schema.InboxContact.UpdatedAt,
	)

	c.ID = uuid.New()
	err := repository.db.QueryRow(ctx, query,
		c.ID, c.Name, c.Email, c.Subject, c.Message, c.WhatsApp, string(c.Status),
	).Scan(&c.CreatedAt, &c.UpdatedAt)

	return dberr.Wrap(err, resource, "create_contact")
}

func (repository *PostgresRepository) UpdateStatus(ctx context.Context, id string, status Status) (*Contact, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.InboxContact.Table, schema.InboxContact.Status, schema.InboxContact.UpdatedAt,
		schema.InboxContact.ID, selectColumns(),
	)

	c, err := scanContact(repository.db.QueryRow(ctx, query, id, string(status)))
	if err != nil {
		return nil, dberr.Wrap(err, resource, "update_contact_status")
	}
	return c, nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.InboxContact.Table, schema.InboxContact.ID)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, resource, "delete_contact")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}
