// Package email implementa el envío de correos de alerta vía SMTP.
package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
	"github.com/tu-usuario/farmacia-suite/internal/application/stock"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/pkg/config"
)

var _ stock.AlertMailer = (*Mailer)(nil)

// Mailer envía correos por SMTP plano con autenticación PLAIN.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
	from     string
}

// NewMailer construye el mailer a partir de la configuración SMTP.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		user:     cfg.User,
		password: cfg.Password,
		addr:     cfg.Addr(),
		from:     cfg.From,
	}
}

// SendStockAlerts envía un único correo con el resumen de las alertas del ciclo.
func (m *Mailer) SendStockAlerts(_ context.Context, to string, alerts []entity.Notification) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Alertas de inventario (%d)", len(alerts))
	e.Text = []byte(buildAlertBody(alerts))

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}

func buildAlertBody(alerts []entity.Notification) string {
	var b strings.Builder
	b.WriteString("Se detectaron las siguientes alertas de inventario:\n\n")
	for _, a := range alerts {
		fmt.Fprintf(&b, "[%s] %s\n", strings.ToUpper(a.Priority), a.Message)
	}
	b.WriteString("\nRevise el módulo de inventario para generar las órdenes de compra sugeridas.\n")
	return b.String()
}
