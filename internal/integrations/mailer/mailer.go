package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
)

// Mailer отправляет почтовые уведомления через SMTP
// Все отправки best-effort: ошибка письма никогда не откатывает
// бизнес-операцию, вызывающий код только логирует её
type Mailer struct {
	host       string
	port       int
	username   string
	password   string
	from       string
	adminEmail string
	enabled    bool
	log        Logger
}

// Config конфигурация SMTP-отправителя
type Config struct {
	Enabled    bool
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
}

// New создает новый экземпляр отправителя уведомлений
func New(cfg Config, log Logger) *Mailer {
	return &Mailer{
		host:       cfg.Host,
		port:       cfg.Port,
		username:   cfg.Username,
		password:   cfg.Password,
		from:       cfg.From,
		adminEmail: cfg.AdminEmail,
		enabled:    cfg.Enabled,
		log:        log,
	}
}

// SendBookingConfirmation отправляет клиенту подтверждение бронирования
func (m *Mailer) SendBookingConfirmation(booking *domain.Booking) error {
	subject := "Бронирование подтверждено"
	body := fmt.Sprintf(
		"Здравствуйте, %s!\n\n"+
			"Ваше бронирование караоке-бокса подтверждено.\n\n"+
			"Дата: %s\n"+
			"Время: %s\n"+
			"Длительность: %d ч.\n"+
			"Гостей: %d\n"+
			"Сумма: %.2f\n\n"+
			"Ждем вас!",
		booking.UserName,
		booking.Date.Format(domain.DateFormat),
		booking.TimeSlot,
		booking.DurationHours,
		booking.GroupSize,
		booking.Price,
	)

	return m.send(booking.UserEmail, subject, body)
}

// SendStatusChanged уведомляет клиента об изменении статуса бронирования
func (m *Mailer) SendStatusChanged(booking *domain.Booking) error {
	var subject, lead string
	switch booking.Status {
	case domain.StatusConfirmed:
		subject = "Бронирование подтверждено"
		lead = "Ваше бронирование подтверждено."
	case domain.StatusCancelled:
		subject = "Бронирование отменено"
		lead = "Ваше бронирование отменено. Если это ошибка, свяжитесь с нами."
	default:
		subject = "Статус бронирования изменен"
		lead = fmt.Sprintf("Новый статус вашего бронирования: %s.", booking.Status)
	}

	body := fmt.Sprintf(
		"Здравствуйте, %s!\n\n%s\n\nДата: %s\nВремя: %s\n",
		booking.UserName,
		lead,
		booking.Date.Format(domain.DateFormat),
		booking.TimeSlot,
	)

	return m.send(booking.UserEmail, subject, body)
}

// SendAdminNewBooking уведомляет администратора о новом бронировании
func (m *Mailer) SendAdminNewBooking(booking *domain.Booking) error {
	if m.adminEmail == "" {
		return nil
	}

	subject := "Новое бронирование"
	body := fmt.Sprintf(
		"Новое бронирование #%s\n\n"+
			"Клиент: %s (%s, %s)\n"+
			"Дата: %s\n"+
			"Время: %s\n"+
			"Длительность: %d ч.\n"+
			"Гостей: %d\n"+
			"Сумма: %.2f\n"+
			"Статус: %s\n",
		booking.ID,
		booking.UserName,
		booking.UserEmail,
		booking.UserPhone,
		booking.Date.Format(domain.DateFormat),
		booking.TimeSlot,
		booking.DurationHours,
		booking.GroupSize,
		booking.Price,
		booking.Status,
	)

	return m.send(m.adminEmail, subject, body)
}

func (m *Mailer) send(to, subject, body string) error {
	if !m.enabled {
		m.log.Info("mailer disabled, skip email: to=%s, subject=%s", to, subject)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, to, err)
	}

	m.log.Info("email sent: to=%s, subject=%s", to, subject)
	return nil
}
