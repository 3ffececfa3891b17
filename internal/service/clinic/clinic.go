package clinic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arnicahealth/arnica_backend/internal/repo"
	entclinic "github.com/arnicahealth/arnica_backend/internal/repo/clinic"
	entmember "github.com/arnicahealth/arnica_backend/internal/repo/clinicmember"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Get(ctx context.Context, clinicID uuid.UUID) (*repo.Clinic, error)
	GetBySlug(ctx context.Context, slug string) (*repo.Clinic, error)

	ListMembers(ctx context.Context, clinicID uuid.UUID, role *string) ([]*repo.ClinicMember, error)
	GetMember(ctx context.Context, clinicID, memberID uuid.UUID) (*repo.ClinicMember, error)

	// ResolveMembership maps an authenticated user to their active
	// membership in a clinic. The tenant middleware calls this on every
	// request carrying an X-Clinic-Id header.
	ResolveMembership(ctx context.Context, clinicID, userID uuid.UUID) (*repo.ClinicMember, error)
}

type clinicService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &clinicService{db: db}
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

func (s *clinicService) Get(ctx context.Context, clinicID uuid.UUID) (*repo.Clinic, error) {
	c, err := s.db.Clinic.Query().
		Where(entclinic.ID(clinicID), entclinic.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get clinic: %w", err)
	}
	return c, nil
}

func (s *clinicService) GetBySlug(ctx context.Context, slug string) (*repo.Clinic, error) {
	c, err := s.db.Clinic.Query().
		Where(entclinic.Slug(slug), entclinic.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get clinic by slug: %w", err)
	}
	return c, nil
}

func (s *clinicService) ListMembers(ctx context.Context, clinicID uuid.UUID, role *string) ([]*repo.ClinicMember, error) {
	q := s.db.ClinicMember.Query().
		Where(entmember.ClinicID(clinicID), entmember.IsActive(true))

	if role != nil {
		q = q.Where(entmember.RoleEQ(entmember.Role(*role)))
	}

	members, err := q.Order(entmember.ByFullName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clinic members: %w", err)
	}
	return members, nil
}

func (s *clinicService) GetMember(ctx context.Context, clinicID, memberID uuid.UUID) (*repo.ClinicMember, error) {
	m, err := s.db.ClinicMember.Query().
		Where(entmember.ID(memberID), entmember.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("get clinic member: %w", err)
	}
	return m, nil
}

func (s *clinicService) ResolveMembership(ctx context.Context, clinicID, userID uuid.UUID) (*repo.ClinicMember, error) {
	m, err := s.db.ClinicMember.Query().
		Where(
			entmember.ClinicID(clinicID),
			entmember.UserID(userID),
			entmember.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotAMember
		}
		return nil, fmt.Errorf("resolve membership: %w", err)
	}
	return m, nil
}
