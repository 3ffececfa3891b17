package email

import (
	"strings"
	"testing"
	"time"
)

func apptData() AppointmentEmailData {
	return AppointmentEmailData{
		PatientName:   "Dana Reyes",
		PatientEmail:  "dana@example.com",
		TherapistName: "Dr. Okafor",
		ClinicName:    "Northside Therapy",
		StartTime:     time.Date(2026, time.March, 9, 14, 30, 0, 0, time.UTC),
		Duration:      50 * time.Minute,
	}
}

func TestBuildAppointmentConfirmationEmail(t *testing.T) {
	msg := BuildAppointmentConfirmationEmail(apptData())

	if len(msg.To) != 1 || msg.To[0] != "dana@example.com" {
		t.Errorf("unexpected recipients: %v", msg.To)
	}
	if !strings.Contains(msg.Subject, "Northside Therapy") {
		t.Errorf("subject missing clinic name: %q", msg.Subject)
	}
	for _, want := range []string{"Dana Reyes", "Dr. Okafor", "50 minutes", "Monday, March 9, 2026"} {
		if !strings.Contains(msg.TextBody, want) {
			t.Errorf("text body missing %q", want)
		}
		if !strings.Contains(msg.HTMLBody, want) {
			t.Errorf("html body missing %q", want)
		}
	}
}

func TestBuildAppointmentCancellationEmail_Reason(t *testing.T) {
	data := apptData()
	data.Reason = "therapist unavailable"

	msg := BuildAppointmentCancellationEmail(data)
	if !strings.Contains(msg.TextBody, "therapist unavailable") {
		t.Error("text body missing cancellation reason")
	}

	data.Reason = ""
	msg = BuildAppointmentCancellationEmail(data)
	if strings.Contains(msg.TextBody, "Reason:") {
		t.Error("text body should omit reason line when no reason given")
	}
}

func TestAppointmentEmail_Fallbacks(t *testing.T) {
	data := apptData()
	data.PatientName = ""

	msg := BuildAppointmentReminderEmail(data)
	if !strings.Contains(msg.TextBody, "Hi there,") {
		t.Error("missing patient name should fall back to a generic greeting")
	}
	if !strings.Contains(msg.TextBody, "The Arnica Team") {
		t.Error("missing app name should fall back to the default")
	}
}

func TestBuildRequestDeniedEmail_Note(t *testing.T) {
	data := RequestEmailData{
		PatientName:   "Dana Reyes",
		PatientEmail:  "dana@example.com",
		TherapistName: "Dr. Okafor",
		ClinicName:    "Northside Therapy",
		RequestedTime: time.Date(2026, time.March, 9, 14, 30, 0, 0, time.UTC),
		TherapistNote: "fully booked that week",
	}

	msg := BuildRequestDeniedEmail(data)
	if !strings.Contains(msg.TextBody, "fully booked that week") {
		t.Error("text body missing therapist note")
	}

	data.TherapistNote = ""
	msg = BuildRequestDeniedEmail(data)
	if strings.Contains(msg.TextBody, "Note from the therapist:") {
		t.Error("text body should omit note line when no note given")
	}
}
