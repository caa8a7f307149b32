package email

import (
	"fmt"
	"net/smtp"
)

// Service handles email sending via SMTP
type Service struct {
	host string
	port string
	from string
}

// NewService creates a new email service
func NewService(host, port, from string) *Service {
	return &Service{
		host: host,
		port: port,
		from: from,
	}
}

// SendOrderConfirmation sends an order confirmation email
func (s *Service) SendOrderConfirmation(to, reference string, total float64, currency string, items []OrderItem) error {
	subject := fmt.Sprintf("Ваше замовлення %s прийнято / Ваш заказ %s принят", reference, reference)
	body := BuildOrderConfirmationBody(reference, total, currency, items)
	return s.send(to, subject, body)
}

// SendPaymentReceived sends a payment confirmation email
func (s *Service) SendPaymentReceived(to, reference string, amount float64, currency string) error {
	subject := fmt.Sprintf("Оплату за замовлення %s отримано / Оплата заказа %s получена", reference, reference)
	body := BuildPaymentReceivedBody(reference, amount, currency)
	return s.send(to, subject, body)
}

// SendPaymentProcessing sends a notice that the payment is in progress
func (s *Service) SendPaymentProcessing(to, reference string) error {
	subject := fmt.Sprintf("Оплата замовлення %s обробляється / Оплата заказа %s обрабатывается", reference, reference)
	body := BuildPaymentProcessingBody(reference)
	return s.send(to, subject, body)
}

// SendPaymentFailed sends a payment failure notice
func (s *Service) SendPaymentFailed(to, reference string) error {
	subject := fmt.Sprintf("Оплата замовлення %s не пройшла / Оплата заказа %s не прошла", reference, reference)
	body := BuildPaymentFailedBody(reference)
	return s.send(to, subject, body)
}

// SendOrderShipped sends a shipment notice with the tracking number
func (s *Service) SendOrderShipped(to, reference, trackingRef string) error {
	subject := fmt.Sprintf("Замовлення %s відправлено / Заказ %s отправлен", reference, reference)
	body := BuildOrderShippedBody(reference, trackingRef)
	return s.send(to, subject, body)
}

func (s *Service) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return smtp.SendMail(addr, nil, s.from, []string{to}, []byte(msg))
}
