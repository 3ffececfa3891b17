package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arnicahealth/arnica_backend/internal/service/clinic"
	pasetotoken "github.com/arnicahealth/arnica_backend/pkg/paseto"
)

const (
	LocalsClinicID   = "clinic_id"
	LocalsMemberRole = "member_role"
	LocalsMemberID   = "member_id"
)

// ClinicHeader reads the clinic ID from the X-Clinic-ID header. Every
// clinic-scoped route goes through it: it validates the clinic is active and
// that the authenticated user is an active member, then stores clinic_id,
// member_id and member_role in Locals for downstream handlers.
func ClinicHeader(clinics clinic.Service) fiber.Handler {
	return func(c fiber.Ctx) error {
		idStr := c.Get("X-Clinic-ID")
		if idStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "X-Clinic-ID header is required")
		}

		clinicID, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid X-Clinic-ID value")
		}

		cl, err := clinics.Get(c.Context(), clinicID)
		if err != nil {
			if errors.Is(err, clinic.ErrNotFound) {
				return fiber.ErrNotFound
			}
			return err
		}
		if !cl.IsActive {
			return fiber.ErrNotFound
		}

		// Require authenticated user to be an active member
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		m, err := clinics.ResolveMembership(c.Context(), clinicID, claims.UserID)
		if err != nil {
			if errors.Is(err, clinic.ErrNotAMember) {
				return fiber.ErrForbidden
			}
			return err
		}

		c.Locals(LocalsClinicID, clinicID.String())
		c.Locals(LocalsMemberRole, string(m.Role))
		c.Locals(LocalsMemberID, m.ID.String())

		return c.Next()
	}
}

// RequireRole gates a route on the member's clinic role. Admins pass every
// gate; everyone else must match one of the listed roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		role, _ := c.Locals(LocalsMemberRole).(string)
		if role == "" {
			return fiber.ErrForbidden
		}
		if role == "admin" {
			return c.Next()
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return fiber.ErrForbidden
	}
}
