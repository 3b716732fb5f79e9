// Пакет mailer отвечает только за доставку писем по SMTP.
// Содержимое писем собирается на уровне сервисов.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"print3d-backend/pkg/config"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

type Attachment struct {
	Name string
	Data []byte
}

type Message struct {
	To         string
	Subject    string
	HTML       string
	Attachment *Attachment
}

// transportStrategy — один способ достучаться до SMTP-сервера. Стратегии
// пробуются строго по порядку, первая удачная останавливает перебор.
type transportStrategy struct {
	Name    string
	Port    int
	Options []mail.Option
}

func defaultStrategies(timeout time.Duration) []transportStrategy {
	return []transportStrategy{
		{Name: "ssl", Port: 465, Options: []mail.Option{mail.WithSSL()}},
		{Name: "starttls", Port: 587, Options: []mail.Option{mail.WithTLSPolicy(mail.TLSMandatory)}},
		{Name: "plain", Port: 25, Options: []mail.Option{mail.WithTLSPolicy(mail.NoTLS), mail.WithTimeout(timeout)}},
	}
}

type MailerInterface interface {
	// Configured сообщает, настроены ли учётные данные SMTP.
	Configured() bool
	// Send доставляет все письма одним соединением.
	Send(ctx context.Context, messages ...Message) error
}

type Mailer struct {
	cfg        config.SMTPConfig
	strategies []transportStrategy
	logger     *zap.Logger
}

func NewMailer(cfg config.SMTPConfig, logger *zap.Logger) MailerInterface {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	return &Mailer{
		cfg:        cfg,
		strategies: defaultStrategies(timeout),
		logger:     logger,
	}
}

func (m *Mailer) Configured() bool {
	return m.cfg.User != "" && m.cfg.Password != ""
}

func (m *Mailer) Send(ctx context.Context, messages ...Message) error {
	msgs, err := m.buildMessages(messages)
	if err != nil {
		return err
	}

	var lastErr error
	for _, strategy := range m.strategies {
		client, err := m.newClient(strategy)
		if err != nil {
			lastErr = err
			continue
		}

		if err := client.DialAndSendWithContext(ctx, msgs...); err != nil {
			m.logger.Warn("Mailer: доставка не удалась, пробуем следующий транспорт",
				zap.String("strategy", strategy.Name),
				zap.Int("port", strategy.Port),
				zap.Error(err),
			)
			lastErr = err
			continue
		}

		m.logger.Info("Mailer: письма отправлены",
			zap.String("strategy", strategy.Name),
			zap.Int("count", len(msgs)),
		)
		return nil
	}

	return fmt.Errorf("все SMTP-транспорты исчерпаны: %w", lastErr)
}

func (m *Mailer) newClient(strategy transportStrategy) (*mail.Client, error) {
	options := []mail.Option{
		mail.WithPort(strategy.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.User),
		mail.WithPassword(m.cfg.Password),
	}
	options = append(options, strategy.Options...)
	return mail.NewClient(m.cfg.Host, options...)
}

func (m *Mailer) buildMessages(messages []Message) ([]*mail.Msg, error) {
	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}

	msgs := make([]*mail.Msg, 0, len(messages))
	for _, message := range messages {
		msg := mail.NewMsg()
		if err := msg.From(from); err != nil {
			return nil, fmt.Errorf("неверный адрес отправителя: %w", err)
		}
		if err := msg.To(message.To); err != nil {
			return nil, fmt.Errorf("неверный адрес получателя: %w", err)
		}
		msg.Subject(message.Subject)
		msg.SetBodyString(mail.TypeTextHTML, message.HTML)

		if att := message.Attachment; att != nil {
			if err := msg.AttachReader(att.Name, bytes.NewReader(att.Data)); err != nil {
				return nil, fmt.Errorf("не удалось приложить файл %q: %w", att.Name, err)
			}
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}
