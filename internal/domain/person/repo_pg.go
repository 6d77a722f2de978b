package person

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/turnero/turnero/internal/platform/db"
)

const personCols = `id, first_name, last_name, national_id, username, password`

func scanPerson(row pgx.Row, kind Kind) (*Person, error) {
	var p Person
	p.Kind = kind
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.NationalID, &p.Username, &p.Password)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPersons(rows pgx.Rows, kind Kind) ([]*Person, error) {
	defer rows.Close()
	var out []*Person
	for rows.Next() {
		p, err := scanPerson(rows, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type repoPG struct {
	kind  Kind
	scope *db.Scope
}

// NewRepositoryPG returns the strict Repository for one person category.
func NewRepositoryPG(kind Kind, scope *db.Scope) Repository {
	return &repoPG{kind: kind, scope: scope}
}

func (r *repoPG) FindByID(ctx context.Context, id int64) (*Person, error) {
	var p *Person
	err := r.scope.Execute(ctx, "find "+string(r.kind)+" by id", func(ctx context.Context, q db.Querier) error {
		row := q.QueryRow(ctx, `SELECT `+personCols+` FROM `+r.kind.Table()+` WHERE id = $1`, id)
		found, err := scanPerson(row, r.kind)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s with id %d: %w", r.kind, id, db.ErrEntityNotFound)
		}
		if err != nil {
			return err
		}
		p = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repoPG) FindByCode(ctx context.Context, code string) (*Person, error) {
	var p *Person
	err := r.scope.Execute(ctx, "find "+string(r.kind)+" by code", func(ctx context.Context, q db.Querier) error {
		row := q.QueryRow(ctx, `SELECT `+personCols+` FROM `+r.kind.Table()+` WHERE national_id = $1`, code)
		found, err := scanPerson(row, r.kind)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s with code %s: %w", r.kind, code, db.ErrEntityNotFound)
		}
		if err != nil {
			return err
		}
		p = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repoPG) FindAll(ctx context.Context) ([]*Person, error) {
	var out []*Person
	err := r.scope.Execute(ctx, "list "+r.kind.Table(), func(ctx context.Context, q db.Querier) error {
		rows, err := q.Query(ctx, `SELECT `+personCols+` FROM `+r.kind.Table()+` ORDER BY last_name, first_name`)
		if err != nil {
			return err
		}
		out, err = collectPersons(rows, r.kind)
		if err != nil {
			return err
		}
		if len(out) == 0 {
			return fmt.Errorf("no %s records: %w", r.kind, db.ErrNoDataFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repoPG) FindByName(ctx context.Context, fragment string) ([]*Person, error) {
	var out []*Person
	err := r.scope.Execute(ctx, "search "+r.kind.Table()+" by name", func(ctx context.Context, q db.Querier) error {
		pattern := "%" + fragment + "%"
		rows, err := q.Query(ctx, `SELECT `+personCols+` FROM `+r.kind.Table()+`
			WHERE first_name ILIKE $1 OR last_name ILIKE $1
			ORDER BY last_name, first_name`, pattern)
		if err != nil {
			return err
		}
		out, err = collectPersons(rows, r.kind)
		if err != nil {
			return err
		}
		if len(out) == 0 {
			return fmt.Errorf("no %s matching %q: %w", r.kind, fragment, db.ErrNoDataFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Save inserts when the record has no ID and updates otherwise. The
// generated key is written back into p on insert.
func (r *repoPG) Save(ctx context.Context, p *Person) error {
	if strings.TrimSpace(p.NationalID) == "" {
		return fmt.Errorf("national id is required")
	}
	p.Kind = r.kind
	return r.scope.Execute(ctx, "save "+string(r.kind), func(ctx context.Context, q db.Querier) error {
		if p.ID == nil {
			var id int64
			err := q.QueryRow(ctx, `INSERT INTO `+r.kind.Table()+` (first_name, last_name, national_id, username, password)
				VALUES ($1, $2, $3, $4, $5) RETURNING id`,
				p.FirstName, p.LastName, p.NationalID, p.Username, p.Password).Scan(&id)
			if errors.Is(err, pgx.ErrNoRows) {
				return db.AccessError("insert "+r.kind.Table()+" returned no key", nil)
			}
			if err != nil {
				return err
			}
			p.ID = &id
			return nil
		}
		tag, err := q.Exec(ctx, `UPDATE `+r.kind.Table()+`
			SET first_name = $1, last_name = $2, national_id = $3, username = $4, password = $5
			WHERE id = $6`,
			p.FirstName, p.LastName, p.NationalID, p.Username, p.Password, *p.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%s with id %d: %w", r.kind, *p.ID, db.ErrEntityNotFound)
		}
		return nil
	})
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	return r.scope.Execute(ctx, "delete "+string(r.kind), func(ctx context.Context, q db.Querier) error {
		tag, err := q.Exec(ctx, `DELETE FROM `+r.kind.Table()+` WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%s with id %d: %w", r.kind, id, db.ErrEntityNotFound)
		}
		return nil
	})
}

func (r *repoPG) DeleteByCode(ctx context.Context, code string) error {
	return r.scope.Execute(ctx, "delete "+string(r.kind)+" by code", func(ctx context.Context, q db.Querier) error {
		tag, err := q.Exec(ctx, `DELETE FROM `+r.kind.Table()+` WHERE national_id = $1`, code)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%s with code %s: %w", r.kind, code, db.ErrEntityNotFound)
		}
		return nil
	})
}
