// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "completed", "cancelled"}, Default: "scheduled"},
		{Name: "parent_appointment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "recurrence_end_date", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancel_requested_by", Type: field.TypeEnum, Nullable: true, Enums: []string{"patient", "therapist", "clinic"}},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_clinic_id_therapist_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[4], AppointmentsColumns[6]},
			},
			{
				Name:    "appointment_clinic_id_patient_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[5]},
			},
			{
				Name:    "appointment_therapist_id_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[8], AppointmentsColumns[6]},
			},
			{
				Name:    "appointment_parent_appointment_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[9]},
			},
		},
	}
	// AppointmentRequestsColumns holds the columns for the "appointment_requests" table.
	AppointmentRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "requested_start", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "denied"}, Default: "pending"},
		{Name: "patient_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "therapist_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "appointment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentRequestsTable holds the schema information for the "appointment_requests" table.
	AppointmentRequestsTable = &schema.Table{
		Name:       "appointment_requests",
		Columns:    AppointmentRequestsColumns,
		PrimaryKey: []*schema.Column{AppointmentRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointmentrequest_clinic_id_therapist_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentRequestsColumns[3], AppointmentRequestsColumns[4], AppointmentRequestsColumns[8]},
			},
			{
				Name:    "appointmentrequest_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentRequestsColumns[5], AppointmentRequestsColumns[8]},
			},
		},
	}
	// ClinicsColumns holds the columns for the "clinics" table.
	ClinicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "timezone", Type: field.TypeString, Size: 64, Default: "UTC"},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// ClinicsTable holds the schema information for the "clinics" table.
	ClinicsTable = &schema.Table{
		Name:       "clinics",
		Columns:    ClinicsColumns,
		PrimaryKey: []*schema.Column{ClinicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clinic_slug",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[5]},
			},
		},
	}
	// ClinicMembersColumns holds the columns for the "clinic_members" table.
	ClinicMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "full_name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "therapist"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "joined_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
	}
	// ClinicMembersTable holds the schema information for the "clinic_members" table.
	ClinicMembersTable = &schema.Table{
		Name:       "clinic_members",
		Columns:    ClinicMembersColumns,
		PrimaryKey: []*schema.Column{ClinicMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "clinic_members_clinics_members",
				Columns:    []*schema.Column{ClinicMembersColumns[8]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "clinicmember_clinic_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{ClinicMembersColumns[8], ClinicMembersColumns[1]},
			},
			{
				Name:    "clinicmember_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{ClinicMembersColumns[8]},
			},
			{
				Name:    "clinicmember_user_id",
				Unique:  false,
				Columns: []*schema.Column{ClinicMembersColumns[1]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "recipient_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString, Size: 50},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_recipient_id_is_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3], NotificationsColumns[8]},
			},
			{
				Name:    "notification_recipient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3], NotificationsColumns[1]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[4]},
			},
			{
				Name:    "patient_clinic_id_last_name",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[4], PatientsColumns[6]},
			},
		},
	}
	// WorkingHoursPoliciesColumns holds the columns for the "working_hours_policies" table.
	WorkingHoursPoliciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "therapist_id", Type: field.TypeUUID, Unique: true},
		{Name: "weekly", Type: field.TypeJSON},
		{Name: "buffer_minutes", Type: field.TypeInt, Default: 0},
		{Name: "allow_back_to_back", Type: field.TypeBool, Default: true},
		{Name: "max_daily_appointments", Type: field.TypeInt, Nullable: true},
	}
	// WorkingHoursPoliciesTable holds the schema information for the "working_hours_policies" table.
	WorkingHoursPoliciesTable = &schema.Table{
		Name:       "working_hours_policies",
		Columns:    WorkingHoursPoliciesColumns,
		PrimaryKey: []*schema.Column{WorkingHoursPoliciesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workinghourspolicy_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{WorkingHoursPoliciesColumns[3]},
			},
			{
				Name:    "workinghourspolicy_therapist_id",
				Unique:  false,
				Columns: []*schema.Column{WorkingHoursPoliciesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		AppointmentRequestsTable,
		ClinicsTable,
		ClinicMembersTable,
		NotificationsTable,
		PatientsTable,
		WorkingHoursPoliciesTable,
	}
)

func init() {
	ClinicMembersTable.ForeignKeys[0].RefTable = ClinicsTable
}
