package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/config"
	"oficina_xpto/internal/usecase/interfaces"

	gomail "github.com/wneessen/go-mail"
)

// SMTPNotifier delivers the customer-facing workflow mails over SMTP.

type SMTPNotifier struct {
	client *gomail.Client
	from   string
}

var _ interfaces.INotifier = (*SMTPNotifier)(nil)

func NewSMTPNotifier(cfg config.MailConfig) (*SMTPNotifier, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.User),
			gomail.WithPassword(cfg.Password),
		)
	}
	if cfg.Port == 465 {
		opts = append(opts, gomail.WithSSL())
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return &SMTPNotifier{client: client, from: cfg.From}, nil
}

func (n *SMTPNotifier) SendBudget(ctx context.Context, b entities.Budget) error {
	subject := fmt.Sprintf("Orçamento para %s - %s", b.VehicleInfo.LicensePlate, b.BudgetID)
	body, err := renderTemplate(budgetTemplate, budgetMailData{
		Budget:   b,
		Subtotal: b.TotalAmount - b.DiscountAmount - b.TaxAmount,
	})
	if err != nil {
		return err
	}
	if err := n.send(ctx, b.CustomerEmail, subject, body); err != nil {
		return err
	}
	log.Printf("[mail][smtp] budget %s sent to %s", b.BudgetID, b.CustomerEmail)
	return nil
}

func (n *SMTPNotifier) SendPaymentConfirmation(ctx context.Context, p entities.Payment, b entities.Budget) error {
	subject := fmt.Sprintf("Confirmação de Pagamento - %s", p.PaymentID)
	body, err := renderTemplate(paymentConfirmationTemplate, paymentMailData{Payment: p, Budget: b})
	if err != nil {
		return err
	}
	if err := n.send(ctx, b.CustomerEmail, subject, body); err != nil {
		return err
	}
	log.Printf("[mail][smtp] confirmation for payment %s sent to %s", p.PaymentID, b.CustomerEmail)
	return nil
}

func (n *SMTPNotifier) SendPaymentFailure(ctx context.Context, p entities.Payment, b entities.Budget, reason string) error {
	subject := fmt.Sprintf("Falha no Pagamento - %s", p.PaymentID)
	body, err := renderTemplate(paymentFailureTemplate, paymentMailData{Payment: p, Budget: b, Reason: reason})
	if err != nil {
		return err
	}
	return n.send(ctx, b.CustomerEmail, subject, body)
}

func (n *SMTPNotifier) send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

func renderTemplate(tpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render mail template: %w", err)
	}
	return buf.String(), nil
}
