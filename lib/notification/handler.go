package notification

import (
	"fmt"

	"careers-backend/config"
	"careers-backend/lib/event"
	"careers-backend/lib/smtp"
	initchecker "careers-backend/lib/utils/init-checker"
	"careers-backend/models"

	log "github.com/sirupsen/logrus"
)

// NewHandler registers the email subscribers. Send failures are logged and
// swallowed: a lost notification never fails the operation that caused it.
func NewHandler() {
	instance := impl{
		sender: smtp.Instance,
		from:   config.Conf.Smtp.From,
	}
	initchecker.CheckInit(
		"sender", instance.sender,
		"bus", event.Instance,
	)
	event.Instance.Subscribe(event.ApplicationReceived, instance.onApplicationReceived)
	event.Instance.Subscribe(event.ApplicationStatusChanged, instance.onStatusChanged)
}

type impl struct {
	sender smtp.Provider
	from   string
}

func (i impl) onApplicationReceived(e event.Event) {
	payload, ok := e.Payload.(event.ApplicationPayload)
	if !ok || payload.Email == "" {
		return
	}
	subject := "Application received"
	message := "Thank you for applying. Our team will review your application shortly."
	if payload.JobName != "" {
		message = fmt.Sprintf("Thank you for applying for the %s position. Our team will review your application shortly.", payload.JobName)
	}
	if err := i.sender.SendEMail(i.from, payload.Email, message, subject); err != nil {
		log.WithError(err).
			WithField("application_id", payload.ApplicationID).
			Error("application received notification failed")
	}
}

var statusMessages = map[models.ApplicationStatus]string{
	models.ApplicationStatusUnderReview: "Your application is now under review.",
	models.ApplicationStatusContacted:   "Our team will be in touch with you shortly.",
	models.ApplicationStatusInterview:   "You have been selected for an interview. We will contact you to schedule it.",
	models.ApplicationStatusHired:       "Congratulations! We are pleased to move forward with your hiring.",
	models.ApplicationStatusRejected:    "Thank you for your interest. We have decided to pursue other candidates at this time.",
}

func (i impl) onStatusChanged(e event.Event) {
	payload, ok := e.Payload.(event.ApplicationPayload)
	if !ok || payload.Email == "" {
		return
	}
	message, ok := statusMessages[payload.NewStatus]
	if !ok {
		return
	}
	if err := i.sender.SendEMail(i.from, payload.Email, message, "Application update"); err != nil {
		log.WithError(err).
			WithField("application_id", payload.ApplicationID).
			WithField("status", string(payload.NewStatus)).
			Error("status change notification failed")
	}
}
