package person

import (
	"context"
	"fmt"
	"strings"
)

// Service holds the strict repositories for both categories and applies
// the field validation that must pass before a record is persisted.
type Service struct {
	doctors  Repository
	patients Repository
}

func NewService(doctors, patients Repository) *Service {
	return &Service{doctors: doctors, patients: patients}
}

func (s *Service) repo(kind Kind) Repository {
	if kind == KindDoctor {
		return s.doctors
	}
	return s.patients
}

func validate(p *Person) error {
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("last name is required")
	}
	if strings.TrimSpace(p.NationalID) == "" {
		return fmt.Errorf("national id is required")
	}
	return nil
}

func (s *Service) Get(ctx context.Context, kind Kind, id int64) (*Person, error) {
	return s.repo(kind).FindByID(ctx, id)
}

// GetDoctorByCode looks up a doctor by national identity number.
func (s *Service) GetDoctorByCode(ctx context.Context, code string) (*Person, error) {
	return s.doctors.FindByCode(ctx, code)
}

func (s *Service) List(ctx context.Context, kind Kind) ([]*Person, error) {
	return s.repo(kind).FindAll(ctx)
}

func (s *Service) Search(ctx context.Context, kind Kind, fragment string) ([]*Person, error) {
	return s.repo(kind).FindByName(ctx, fragment)
}

func (s *Service) Save(ctx context.Context, kind Kind, p *Person) error {
	if err := validate(p); err != nil {
		return err
	}
	p.Kind = kind
	return s.repo(kind).Save(ctx, p)
}

func (s *Service) Delete(ctx context.Context, kind Kind, id int64) error {
	return s.repo(kind).Delete(ctx, id)
}

func (s *Service) DeleteDoctorByCode(ctx context.Context, code string) error {
	return s.doctors.DeleteByCode(ctx, code)
}
