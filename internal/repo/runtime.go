// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/arnicahealth/arnica_backend/internal/repo/appointment"
	"github.com/arnicahealth/arnica_backend/internal/repo/appointmentrequest"
	"github.com/arnicahealth/arnica_backend/internal/repo/clinic"
	"github.com/arnicahealth/arnica_backend/internal/repo/clinicmember"
	"github.com/arnicahealth/arnica_backend/internal/repo/notification"
	"github.com/arnicahealth/arnica_backend/internal/repo/patient"
	"github.com/arnicahealth/arnica_backend/internal/repo/workinghourspolicy"
	"github.com/arnicahealth/arnica_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescDurationMinutes is the schema descriptor for duration_minutes field.
	appointmentDescDurationMinutes := appointmentFields[4].Descriptor()
	// appointment.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	appointment.DurationMinutesValidator = appointmentDescDurationMinutes.Validators[0].(func(int) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	appointmentrequestMixin := schema.AppointmentRequest{}.Mixin()
	appointmentrequestMixinFields0 := appointmentrequestMixin[0].Fields()
	_ = appointmentrequestMixinFields0
	appointmentrequestMixinFields1 := appointmentrequestMixin[1].Fields()
	_ = appointmentrequestMixinFields1
	appointmentrequestFields := schema.AppointmentRequest{}.Fields()
	_ = appointmentrequestFields
	// appointmentrequestDescCreatedAt is the schema descriptor for created_at field.
	appointmentrequestDescCreatedAt := appointmentrequestMixinFields1[0].Descriptor()
	// appointmentrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointmentrequest.DefaultCreatedAt = appointmentrequestDescCreatedAt.Default.(func() time.Time)
	// appointmentrequestDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentrequestDescUpdatedAt := appointmentrequestMixinFields1[1].Descriptor()
	// appointmentrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointmentrequest.DefaultUpdatedAt = appointmentrequestDescUpdatedAt.Default.(func() time.Time)
	// appointmentrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointmentrequest.UpdateDefaultUpdatedAt = appointmentrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentrequestDescDurationMinutes is the schema descriptor for duration_minutes field.
	appointmentrequestDescDurationMinutes := appointmentrequestFields[4].Descriptor()
	// appointmentrequest.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	appointmentrequest.DurationMinutesValidator = appointmentrequestDescDurationMinutes.Validators[0].(func(int) error)
	// appointmentrequestDescID is the schema descriptor for id field.
	appointmentrequestDescID := appointmentrequestMixinFields0[0].Descriptor()
	// appointmentrequest.DefaultID holds the default value on creation for the id field.
	appointmentrequest.DefaultID = appointmentrequestDescID.Default.(func() uuid.UUID)
	clinicMixin := schema.Clinic{}.Mixin()
	clinicMixinFields0 := clinicMixin[0].Fields()
	_ = clinicMixinFields0
	clinicMixinFields1 := clinicMixin[1].Fields()
	_ = clinicMixinFields1
	clinicFields := schema.Clinic{}.Fields()
	_ = clinicFields
	// clinicDescCreatedAt is the schema descriptor for created_at field.
	clinicDescCreatedAt := clinicMixinFields1[0].Descriptor()
	// clinic.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinic.DefaultCreatedAt = clinicDescCreatedAt.Default.(func() time.Time)
	// clinicDescUpdatedAt is the schema descriptor for updated_at field.
	clinicDescUpdatedAt := clinicMixinFields1[1].Descriptor()
	// clinic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinic.DefaultUpdatedAt = clinicDescUpdatedAt.Default.(func() time.Time)
	// clinic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinic.UpdateDefaultUpdatedAt = clinicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clinicDescName is the schema descriptor for name field.
	clinicDescName := clinicFields[0].Descriptor()
	// clinic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	clinic.NameValidator = func() func(string) error {
		validators := clinicDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescSlug is the schema descriptor for slug field.
	clinicDescSlug := clinicFields[1].Descriptor()
	// clinic.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	clinic.SlugValidator = func() func(string) error {
		validators := clinicDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescTimezone is the schema descriptor for timezone field.
	clinicDescTimezone := clinicFields[2].Descriptor()
	// clinic.DefaultTimezone holds the default value on creation for the timezone field.
	clinic.DefaultTimezone = clinicDescTimezone.Default.(string)
	// clinic.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	clinic.TimezoneValidator = clinicDescTimezone.Validators[0].(func(string) error)
	// clinicDescPhone is the schema descriptor for phone field.
	clinicDescPhone := clinicFields[3].Descriptor()
	// clinic.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	clinic.PhoneValidator = clinicDescPhone.Validators[0].(func(string) error)
	// clinicDescIsActive is the schema descriptor for is_active field.
	clinicDescIsActive := clinicFields[5].Descriptor()
	// clinic.DefaultIsActive holds the default value on creation for the is_active field.
	clinic.DefaultIsActive = clinicDescIsActive.Default.(bool)
	// clinicDescID is the schema descriptor for id field.
	clinicDescID := clinicMixinFields0[0].Descriptor()
	// clinic.DefaultID holds the default value on creation for the id field.
	clinic.DefaultID = clinicDescID.Default.(func() uuid.UUID)
	clinicmemberMixin := schema.ClinicMember{}.Mixin()
	clinicmemberMixinFields0 := clinicmemberMixin[0].Fields()
	_ = clinicmemberMixinFields0
	clinicmemberFields := schema.ClinicMember{}.Fields()
	_ = clinicmemberFields
	// clinicmemberDescFullName is the schema descriptor for full_name field.
	clinicmemberDescFullName := clinicmemberFields[2].Descriptor()
	// clinicmember.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	clinicmember.FullNameValidator = func() func(string) error {
		validators := clinicmemberDescFullName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(full_name string) error {
			for _, fn := range fns {
				if err := fn(full_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicmemberDescEmail is the schema descriptor for email field.
	clinicmemberDescEmail := clinicmemberFields[3].Descriptor()
	// clinicmember.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	clinicmember.EmailValidator = clinicmemberDescEmail.Validators[0].(func(string) error)
	// clinicmemberDescPhone is the schema descriptor for phone field.
	clinicmemberDescPhone := clinicmemberFields[4].Descriptor()
	// clinicmember.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	clinicmember.PhoneValidator = clinicmemberDescPhone.Validators[0].(func(string) error)
	// clinicmemberDescIsActive is the schema descriptor for is_active field.
	clinicmemberDescIsActive := clinicmemberFields[6].Descriptor()
	// clinicmember.DefaultIsActive holds the default value on creation for the is_active field.
	clinicmember.DefaultIsActive = clinicmemberDescIsActive.Default.(bool)
	// clinicmemberDescJoinedAt is the schema descriptor for joined_at field.
	clinicmemberDescJoinedAt := clinicmemberFields[7].Descriptor()
	// clinicmember.DefaultJoinedAt holds the default value on creation for the joined_at field.
	clinicmember.DefaultJoinedAt = clinicmemberDescJoinedAt.Default.(func() time.Time)
	// clinicmemberDescID is the schema descriptor for id field.
	clinicmemberDescID := clinicmemberMixinFields0[0].Descriptor()
	// clinicmember.DefaultID holds the default value on creation for the id field.
	clinicmember.DefaultID = clinicmemberDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescUpdatedAt is the schema descriptor for updated_at field.
	notificationDescUpdatedAt := notificationMixinFields1[1].Descriptor()
	// notification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notification.DefaultUpdatedAt = notificationDescUpdatedAt.Default.(func() time.Time)
	// notification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notification.UpdateDefaultUpdatedAt = notificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[1].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = notificationDescType.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[5].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFirstName is the schema descriptor for first_name field.
	patientDescFirstName := patientFields[1].Descriptor()
	// patient.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	patient.FirstNameValidator = func() func(string) error {
		validators := patientDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescLastName is the schema descriptor for last_name field.
	patientDescLastName := patientFields[2].Descriptor()
	// patient.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	patient.LastNameValidator = func() func(string) error {
		validators := patientDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescEmail is the schema descriptor for email field.
	patientDescEmail := patientFields[3].Descriptor()
	// patient.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	patient.EmailValidator = patientDescEmail.Validators[0].(func(string) error)
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[4].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescIsActive is the schema descriptor for is_active field.
	patientDescIsActive := patientFields[5].Descriptor()
	// patient.DefaultIsActive holds the default value on creation for the is_active field.
	patient.DefaultIsActive = patientDescIsActive.Default.(bool)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	workinghourspolicyMixin := schema.WorkingHoursPolicy{}.Mixin()
	workinghourspolicyMixinFields0 := workinghourspolicyMixin[0].Fields()
	_ = workinghourspolicyMixinFields0
	workinghourspolicyMixinFields1 := workinghourspolicyMixin[1].Fields()
	_ = workinghourspolicyMixinFields1
	workinghourspolicyFields := schema.WorkingHoursPolicy{}.Fields()
	_ = workinghourspolicyFields
	// workinghourspolicyDescCreatedAt is the schema descriptor for created_at field.
	workinghourspolicyDescCreatedAt := workinghourspolicyMixinFields1[0].Descriptor()
	// workinghourspolicy.DefaultCreatedAt holds the default value on creation for the created_at field.
	workinghourspolicy.DefaultCreatedAt = workinghourspolicyDescCreatedAt.Default.(func() time.Time)
	// workinghourspolicyDescUpdatedAt is the schema descriptor for updated_at field.
	workinghourspolicyDescUpdatedAt := workinghourspolicyMixinFields1[1].Descriptor()
	// workinghourspolicy.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workinghourspolicy.DefaultUpdatedAt = workinghourspolicyDescUpdatedAt.Default.(func() time.Time)
	// workinghourspolicy.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workinghourspolicy.UpdateDefaultUpdatedAt = workinghourspolicyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workinghourspolicyDescBufferMinutes is the schema descriptor for buffer_minutes field.
	workinghourspolicyDescBufferMinutes := workinghourspolicyFields[3].Descriptor()
	// workinghourspolicy.DefaultBufferMinutes holds the default value on creation for the buffer_minutes field.
	workinghourspolicy.DefaultBufferMinutes = workinghourspolicyDescBufferMinutes.Default.(int)
	// workinghourspolicyDescAllowBackToBack is the schema descriptor for allow_back_to_back field.
	workinghourspolicyDescAllowBackToBack := workinghourspolicyFields[4].Descriptor()
	// workinghourspolicy.DefaultAllowBackToBack holds the default value on creation for the allow_back_to_back field.
	workinghourspolicy.DefaultAllowBackToBack = workinghourspolicyDescAllowBackToBack.Default.(bool)
	// workinghourspolicyDescID is the schema descriptor for id field.
	workinghourspolicyDescID := workinghourspolicyMixinFields0[0].Descriptor()
	// workinghourspolicy.DefaultID holds the default value on creation for the id field.
	workinghourspolicy.DefaultID = workinghourspolicyDescID.Default.(func() uuid.UUID)
}
