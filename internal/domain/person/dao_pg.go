package person

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/turnero/turnero/internal/platform/db"
)

type daoPG struct {
	kind  Kind
	scope *db.Scope
}

// NewDAOPG returns the lenient DAO for one person category.
func NewDAOPG(kind Kind, scope *db.Scope) DAO {
	return &daoPG{kind: kind, scope: scope}
}

func (d *daoPG) getOne(ctx context.Context, op, where string, args ...any) (*Person, error) {
	var p *Person
	err := d.scope.Execute(ctx, op, func(ctx context.Context, q db.Querier) error {
		row := q.QueryRow(ctx, `SELECT `+personCols+` FROM `+d.kind.Table()+` WHERE `+where, args...)
		found, err := scanPerson(row, d.kind)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
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

func (d *daoPG) GetByID(ctx context.Context, id int64) (*Person, error) {
	return d.getOne(ctx, "get "+string(d.kind)+" by id", `id = $1`, id)
}

func (d *daoPG) GetByNationalID(ctx context.Context, nationalID string) (*Person, error) {
	return d.getOne(ctx, "get "+string(d.kind)+" by national id", `national_id = $1`, nationalID)
}

func (d *daoPG) GetByUsername(ctx context.Context, username string) (*Person, error) {
	return d.getOne(ctx, "get "+string(d.kind)+" by username", `username = $1`, username)
}

// Authenticate matches the stored credentials exactly. No match is a
// normal (nil, nil) outcome, not an error.
func (d *daoPG) Authenticate(ctx context.Context, username, password string) (*Person, error) {
	return d.getOne(ctx, "authenticate "+string(d.kind), `username = $1 AND password = $2`, username, password)
}

func (d *daoPG) List(ctx context.Context) ([]*Person, error) {
	out := []*Person{}
	err := d.scope.Execute(ctx, "list "+d.kind.Table(), func(ctx context.Context, q db.Querier) error {
		rows, err := q.Query(ctx, `SELECT `+personCols+` FROM `+d.kind.Table()+` ORDER BY last_name, first_name`)
		if err != nil {
			return err
		}
		found, err := collectPersons(rows, d.kind)
		if err != nil {
			return err
		}
		out = append(out, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (d *daoPG) SearchByName(ctx context.Context, fragment string) ([]*Person, error) {
	out := []*Person{}
	err := d.scope.Execute(ctx, "search "+d.kind.Table()+" by name", func(ctx context.Context, q db.Querier) error {
		pattern := "%" + fragment + "%"
		rows, err := q.Query(ctx, `SELECT `+personCols+` FROM `+d.kind.Table()+`
			WHERE first_name ILIKE $1 OR last_name ILIKE $1
			ORDER BY last_name, first_name`, pattern)
		if err != nil {
			return err
		}
		found, err := collectPersons(rows, d.kind)
		if err != nil {
			return err
		}
		out = append(out, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
