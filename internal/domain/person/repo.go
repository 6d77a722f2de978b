package person

import "context"

// Repository is the strict data-access contract. Lookups that match
// nothing fail: single-record reads return db.ErrEntityNotFound and
// collection reads return db.ErrNoDataFound. Driver failures surface
// as *db.DataAccessError.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Person, error)
	FindByCode(ctx context.Context, code string) (*Person, error)
	FindAll(ctx context.Context) ([]*Person, error)
	FindByName(ctx context.Context, fragment string) ([]*Person, error)
	Save(ctx context.Context, p *Person) error
	Delete(ctx context.Context, id int64) error
	DeleteByCode(ctx context.Context, code string) error
}

// DAO is the lenient data-access contract used by authentication and
// read paths that treat absence as a normal outcome: single-record
// lookups return (nil, nil) and collection reads return an empty slice.
// Only driver failures produce errors.
type DAO interface {
	GetByID(ctx context.Context, id int64) (*Person, error)
	List(ctx context.Context) ([]*Person, error)
	SearchByName(ctx context.Context, fragment string) ([]*Person, error)
	GetByNationalID(ctx context.Context, nationalID string) (*Person, error)
	GetByUsername(ctx context.Context, username string) (*Person, error)
	Authenticate(ctx context.Context, username, password string) (*Person, error)
}
