package patient

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/arnicahealth/arnica_backend/internal/repo"
	entpatient "github.com/arnicahealth/arnica_backend/internal/repo/patient"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	Page    int
	PerPage int
	Search  *string
	Active  *bool
}

type CreateRequest struct {
	FirstName string
	LastName  string
	Email     *string
	Phone     *string
}

type UpdateRequest struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	IsActive  *bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, clinicID uuid.UUID, req ListRequest) ([]*repo.Patient, error)
	GetByID(ctx context.Context, clinicID, patientID uuid.UUID) (*repo.Patient, error)
	Create(ctx context.Context, clinicID uuid.UUID, req CreateRequest) (*repo.Patient, error)
	Update(ctx context.Context, clinicID, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error)
	Delete(ctx context.Context, clinicID, patientID uuid.UUID) error
}

type patientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &patientService{db: db}
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

func (s *patientService) List(ctx context.Context, clinicID uuid.UUID, req ListRequest) ([]*repo.Patient, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Patient.Query().
		Where(entpatient.ClinicID(clinicID), entpatient.DeletedAtIsNil())

	if req.Search != nil && *req.Search != "" {
		q = q.Where(entpatient.Or(
			entpatient.FirstNameContainsFold(*req.Search),
			entpatient.LastNameContainsFold(*req.Search),
		))
	}
	if req.Active != nil {
		q = q.Where(entpatient.IsActive(*req.Active))
	}

	patients, err := q.
		Order(entpatient.ByLastName(), entpatient.ByFirstName(sql.OrderAsc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (s *patientService) GetByID(ctx context.Context, clinicID, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.ClinicID(clinicID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Create(ctx context.Context, clinicID uuid.UUID, req CreateRequest) (*repo.Patient, error) {
	p, err := s.db.Patient.Create().
		SetClinicID(clinicID).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetNillableEmail(req.Email).
		SetNillablePhone(req.Phone).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Update(ctx context.Context, clinicID, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error) {
	existing, err := s.GetByID(ctx, clinicID, patientID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Patient.UpdateOne(existing)
	if req.FirstName != nil {
		upd = upd.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetLastName(*req.LastName)
	}
	if req.Email != nil {
		upd = upd.SetEmail(*req.Email)
	}
	if req.Phone != nil {
		upd = upd.SetPhone(*req.Phone)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	p, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Delete(ctx context.Context, clinicID, patientID uuid.UUID) error {
	existing, err := s.GetByID(ctx, clinicID, patientID)
	if err != nil {
		return err
	}

	// Soft delete: scheduling history must stay resolvable.
	return s.db.Patient.UpdateOne(existing).
		SetDeletedAt(time.Now()).
		SetIsActive(false).
		Exec(ctx)
}
