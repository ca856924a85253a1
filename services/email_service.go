package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"motorent-api/config"
	"motorent-api/models"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

func (es *EmailService) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return es.dialer.DialAndSend(m)
}

// SendRentalConfirmation mails the renter after a successful booking.
func (es *EmailService) SendRentalConfirmation(email, name string, rental *models.Rental) error {
	body := fmt.Sprintf(`
		<h2>Your rental is confirmed!</h2>
		<p>Hi %s,</p>
		<p>Your motorcycle rental starts on <strong>%s</strong> and is expected back on <strong>%s</strong>.</p>
		<p>Rental reference: %s</p>
		<p>Ride safe,<br>The %s Team</p>
	`, name,
		rental.StartDate.Format(models.DateFormat),
		rental.ExpectedEndDate.Format(models.DateFormat),
		rental.ID,
		es.config.FromName)

	return es.send(email, "Rental confirmed", body)
}

// SendOverdueReminder nudges a renter whose rental has passed its expected
// end date.
func (es *EmailService) SendOverdueReminder(email, name string, rental *models.Rental, daysLate int) error {
	body := fmt.Sprintf(`
		<h2>Your rental is overdue</h2>
		<p>Hi %s,</p>
		<p>Your rental was expected back on <strong>%s</strong> and is now %d day(s) overdue.
		A late surcharge applies for each extra day, so please return the motorcycle as soon as possible.</p>
		<p>Rental reference: %s</p>
		<p>The %s Team</p>
	`, name,
		rental.ExpectedEndDate.Format(models.DateFormat),
		daysLate,
		rental.ID,
		es.config.FromName)

	return es.send(email, "Rental overdue", body)
}

// SendSettlementReceipt mails the final charge breakdown after a return.
func (es *EmailService) SendSettlementReceipt(email, name string, result *models.SettlementResult) error {
	body := fmt.Sprintf(`
		<h2>Rental receipt</h2>
		<p>Hi %s,</p>
		<p>Thanks for returning your motorcycle. Here is your final charge:</p>
		<ul>
			<li>Days used: %d</li>
			<li>Base amount: %.2f</li>
			<li>Early return penalty: %.2f</li>
			<li>Late return surcharge: %.2f</li>
			<li><strong>Total: %.2f</strong></li>
		</ul>
		<p>Rental reference: %s</p>
		<p>See you on the road,<br>The %s Team</p>
	`, name,
		result.TotalDays,
		result.BaseAmount,
		result.PenaltyAmount,
		result.ExtraAmount,
		result.TotalAmount,
		result.RentalID,
		es.config.FromName)

	return es.send(email, "Your rental receipt", body)
}
