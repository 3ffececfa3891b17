package email

import (
	"fmt"
	"time"
)

// AppointmentEmailData contains the data needed for appointment email templates.
type AppointmentEmailData struct {
	PatientName   string
	PatientEmail  string
	TherapistName string
	ClinicName    string
	StartTime     time.Time
	Duration      time.Duration
	Reason        string
	AppName       string
}

func (d AppointmentEmailData) appName() string {
	if d.AppName != "" {
		return d.AppName
	}
	return "Arnica"
}

func (d AppointmentEmailData) patientName() string {
	if d.PatientName != "" {
		return d.PatientName
	}
	return "there"
}

func (d AppointmentEmailData) when() string {
	return d.StartTime.Format("Monday, January 2, 2006 at 15:04 MST")
}

// BuildAppointmentConfirmationEmail creates a confirmation message for a newly
// booked appointment.
func BuildAppointmentConfirmationEmail(data AppointmentEmailData) Message {
	subject := fmt.Sprintf("Your appointment at %s is confirmed", data.ClinicName)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment with %s at %s is confirmed.

When: %s
Duration: %d minutes

If you need to reschedule or cancel, please contact the clinic.

Thanks,
The %s Team`,
		data.patientName(), data.TherapistName, data.ClinicName,
		data.when(), int(data.Duration.Minutes()), data.appName())

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your appointment with <strong>%s</strong> at <strong>%s</strong> is confirmed.</p>
    <p style="background-color: #f3f4f6; padding: 15px; border-radius: 6px;">
        <strong>When:</strong> %s<br>
        <strong>Duration:</strong> %d minutes
    </p>
    <p>If you need to reschedule or cancel, please contact the clinic.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.patientName(), data.TherapistName, data.ClinicName,
		data.when(), int(data.Duration.Minutes()), data.appName())

	return Message{
		To:       []string{data.PatientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentCancellationEmail creates a cancellation notice.
func BuildAppointmentCancellationEmail(data AppointmentEmailData) Message {
	subject := fmt.Sprintf("Your appointment at %s was cancelled", data.ClinicName)

	reasonText := ""
	reasonHTML := ""
	if data.Reason != "" {
		reasonText = fmt.Sprintf("\nReason: %s\n", data.Reason)
		reasonHTML = fmt.Sprintf("<p><strong>Reason:</strong> %s</p>", data.Reason)
	}

	textBody := fmt.Sprintf(`Hi %s,

Your appointment with %s at %s on %s has been cancelled.
%s
If this was unexpected, please contact the clinic to rebook.

Thanks,
The %s Team`,
		data.patientName(), data.TherapistName, data.ClinicName,
		data.when(), reasonText, data.appName())

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #dc2626;">Hi %s,</h2>
    <p>Your appointment with <strong>%s</strong> at <strong>%s</strong> on %s has been cancelled.</p>
    %s
    <p>If this was unexpected, please contact the clinic to rebook.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.patientName(), data.TherapistName, data.ClinicName,
		data.when(), reasonHTML, data.appName())

	return Message{
		To:       []string{data.PatientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentReminderEmail creates an upcoming-appointment reminder.
func BuildAppointmentReminderEmail(data AppointmentEmailData) Message {
	subject := fmt.Sprintf("Reminder: appointment at %s on %s",
		data.ClinicName, data.StartTime.Format("Jan 2"))

	textBody := fmt.Sprintf(`Hi %s,

This is a reminder of your upcoming appointment with %s at %s.

When: %s
Duration: %d minutes

See you soon,
The %s Team`,
		data.patientName(), data.TherapistName, data.ClinicName,
		data.when(), int(data.Duration.Minutes()), data.appName())

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>This is a reminder of your upcoming appointment with <strong>%s</strong> at <strong>%s</strong>.</p>
    <p style="background-color: #f3f4f6; padding: 15px; border-radius: 6px;">
        <strong>When:</strong> %s<br>
        <strong>Duration:</strong> %d minutes
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">See you soon,<br>The %s Team</p>
</body>
</html>`,
		data.patientName(), data.TherapistName, data.ClinicName,
		data.when(), int(data.Duration.Minutes()), data.appName())

	return Message{
		To:       []string{data.PatientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// RequestEmailData contains the data needed for appointment request emails.
type RequestEmailData struct {
	PatientName   string
	PatientEmail  string
	TherapistName string
	ClinicName    string
	RequestedTime time.Time
	TherapistNote string
	AppName       string
}

func (d RequestEmailData) appName() string {
	if d.AppName != "" {
		return d.AppName
	}
	return "Arnica"
}

func (d RequestEmailData) patientName() string {
	if d.PatientName != "" {
		return d.PatientName
	}
	return "there"
}

// BuildRequestApprovedEmail tells the patient their requested time was approved.
func BuildRequestApprovedEmail(data RequestEmailData) Message {
	subject := fmt.Sprintf("Your appointment request at %s was approved", data.ClinicName)

	when := data.RequestedTime.Format("Monday, January 2, 2006 at 15:04 MST")

	textBody := fmt.Sprintf(`Hi %s,

Good news! %s approved your appointment request at %s.

When: %s

A confirmation with the full details is on its way.

Thanks,
The %s Team`,
		data.patientName(), data.TherapistName, data.ClinicName, when, data.appName())

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #16a34a;">Hi %s,</h2>
    <p>Good news! <strong>%s</strong> approved your appointment request at <strong>%s</strong>.</p>
    <p style="background-color: #f3f4f6; padding: 15px; border-radius: 6px;"><strong>When:</strong> %s</p>
    <p>A confirmation with the full details is on its way.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.patientName(), data.TherapistName, data.ClinicName, when, data.appName())

	return Message{
		To:       []string{data.PatientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildRequestDeniedEmail tells the patient their requested time was denied.
func BuildRequestDeniedEmail(data RequestEmailData) Message {
	subject := fmt.Sprintf("Update on your appointment request at %s", data.ClinicName)

	when := data.RequestedTime.Format("Monday, January 2, 2006 at 15:04 MST")

	noteText := ""
	noteHTML := ""
	if data.TherapistNote != "" {
		noteText = fmt.Sprintf("\nNote from the therapist: %s\n", data.TherapistNote)
		noteHTML = fmt.Sprintf("<p><strong>Note from the therapist:</strong> %s</p>", data.TherapistNote)
	}

	textBody := fmt.Sprintf(`Hi %s,

Unfortunately %s could not accommodate your appointment request at %s for %s.
%s
Please submit a new request for another time, or contact the clinic directly.

Thanks,
The %s Team`,
		data.patientName(), data.TherapistName, data.ClinicName, when, noteText, data.appName())

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Unfortunately <strong>%s</strong> could not accommodate your appointment request at <strong>%s</strong> for %s.</p>
    %s
    <p>Please submit a new request for another time, or contact the clinic directly.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.patientName(), data.TherapistName, data.ClinicName, when, noteHTML, data.appName())

	return Message{
		To:       []string{data.PatientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
