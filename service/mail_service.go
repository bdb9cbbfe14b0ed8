package application

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Rahim00001/AuraStay-server/domain"
)

type MailService struct {
	smtpServer     string
	smtpServerPort int
	smtpEmail      string
	smtpPassword   string
}

func NewMailService(server string, port int, email, password string) *MailService {
	return &MailService{
		smtpServer:     server,
		smtpServerPort: port,
		smtpEmail:      email,
		smtpPassword:   password,
	}
}

func (service *MailService) SendBookingConfirmation(booking *domain.Booking) error {
	message := gomail.NewMessage()
	message.SetHeader("From", service.smtpEmail)
	message.SetHeader("To", booking.Guest.Email)
	message.SetHeader("Subject", "Your AuraStay booking is confirmed")

	bodyString := fmt.Sprintf("Hi %s,\n\nYour booking for %s on %s is confirmed.\nTotal charged: $%.2f\nTransaction: %s\n\nAuraStay",
		booking.Guest.Name, booking.Title, booking.Date.Format("Jan 2, 2006"), booking.Price, booking.TransactionID)
	message.SetBody("text", bodyString)

	client := gomail.NewDialer(service.smtpServer, service.smtpServerPort, service.smtpEmail, service.smtpPassword)

	if err := client.DialAndSend(message); err != nil {
		return err
	}

	return nil
}
