package integration

import (
	"context"
	"testing"

	"github.com/turnero/turnero/internal/domain/person"
)

func seedDoctor(t *testing.T, ctx context.Context, first, last, national, user, pass string) *person.Person {
	t.Helper()
	repo := person.NewRepositoryPG(person.KindDoctor, newScope())
	p := &person.Person{FirstName: first, LastName: last, NationalID: national}
	if user != "" {
		p.Username = strPtr(user)
		p.Password = strPtr(pass)
	}
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return p
}

func TestDAO_SingleRowMissesAreNilNil(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	dao := person.NewDAOPG(person.KindDoctor, newScope())

	cases := []struct {
		name string
		call func() (*person.Person, error)
	}{
		{"get by id", func() (*person.Person, error) { return dao.GetByID(ctx, 42) }},
		{"get by national id", func() (*person.Person, error) { return dao.GetByNationalID(ctx, "00000000") }},
		{"get by username", func() (*person.Person, error) { return dao.GetByUsername(ctx, "nobody") }},
		{"authenticate", func() (*person.Person, error) { return dao.Authenticate(ctx, "nobody", "nothing") }},
	}
	for _, tc := range cases {
		p, err := tc.call()
		if err != nil {
			t.Fatalf("%s: a miss must not be an error, got %v", tc.name, err)
		}
		if p != nil {
			t.Fatalf("%s: a miss must resolve to nil, got %+v", tc.name, p)
		}
	}
}

func TestDAO_EmptyCollectionsAreEmptySlices(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	dao := person.NewDAOPG(person.KindPatient, newScope())

	list, err := dao.List(ctx)
	if err != nil {
		t.Fatalf("list on an empty store must not fail: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected an empty slice, got %v", list)
	}

	matches, err := dao.SearchByName(ctx, "nobody")
	if err != nil {
		t.Fatalf("search on an empty store must not fail: %v", err)
	}
	if matches == nil || len(matches) != 0 {
		t.Fatalf("expected an empty slice, got %v", matches)
	}
}

func TestDAO_AuthenticateMatchesExactCredentials(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	seedDoctor(t, ctx, "Gregory", "House", "30111222", "ghouse", "vicodin")
	dao := person.NewDAOPG(person.KindDoctor, newScope())

	p, err := dao.Authenticate(ctx, "ghouse", "vicodin")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if p == nil || p.FullName() != "Gregory House" || p.Kind != person.KindDoctor {
		t.Fatalf("unexpected identity: %+v", p)
	}

	// Wrong password is a miss, not an error.
	p, err = dao.Authenticate(ctx, "ghouse", "VICODIN")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if p != nil {
		t.Fatalf("credential comparison must be exact, got %+v", p)
	}
}

func TestDAO_GetByUsernameAndNationalID(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	seeded := seedDoctor(t, ctx, "Gregory", "House", "30111222", "ghouse", "vicodin")
	dao := person.NewDAOPG(person.KindDoctor, newScope())

	p, err := dao.GetByUsername(ctx, "ghouse")
	if err != nil || p == nil || *p.ID != *seeded.ID {
		t.Fatalf("get by username: p=%+v err=%v", p, err)
	}

	p, err = dao.GetByNationalID(ctx, "30111222")
	if err != nil || p == nil || *p.ID != *seeded.ID {
		t.Fatalf("get by national id: p=%+v err=%v", p, err)
	}

	p, err = dao.GetByID(ctx, *seeded.ID)
	if err != nil || p == nil || p.FullName() != "Gregory House" {
		t.Fatalf("get by id: p=%+v err=%v", p, err)
	}
}

func TestDAO_SeesOnlyItsOwnTable(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	seedDoctor(t, ctx, "Gregory", "House", "30111222", "shared", "pw")
	patientDAO := person.NewDAOPG(person.KindPatient, newScope())

	p, err := patientDAO.Authenticate(ctx, "shared", "pw")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if p != nil {
		t.Fatalf("a doctor row must not authenticate through the patient DAO: %+v", p)
	}
}

func TestDAO_ListReturnsSeededRowsInOrder(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	seedDoctor(t, ctx, "Maria", "Suarez", "1", "", "")
	seedDoctor(t, ctx, "Ana", "Alba", "2", "", "")
	dao := person.NewDAOPG(person.KindDoctor, newScope())

	list, err := dao.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 || list[0].LastName != "Alba" || list[1].LastName != "Suarez" {
		t.Fatalf("unexpected listing: %+v", list)
	}

	// Rows seeded without credentials come back with nil credentials.
	if list[0].Username != nil || list[0].Password != nil {
		t.Fatalf("expected nil credentials, got %+v", list[0])
	}
}
