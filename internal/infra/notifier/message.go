package notifier

import "fmt"

const clockLayout = "3:04 PM"

func EmailContent(r Reminder) (subject, body string) {
	subject = fmt.Sprintf("Time to take your %s", r.MedicationName)
	body = fmt.Sprintf("This is a reminder to take %s of %s at %s.",
		r.Dosage, r.MedicationName, r.ScheduledTime.Format(clockLayout))

	return subject, body
}

func PushContent(r Reminder) (title, body string) {
	title = fmt.Sprintf("Time to take %s", r.MedicationName)
	body = fmt.Sprintf("Reminder: Take %s at %s", r.Dosage, r.ScheduledTime.Format(clockLayout))

	return title, body
}
