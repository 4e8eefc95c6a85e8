package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/endabelyu/nakama-api/config"
)

type OrderEmailItem struct {
	Name     string
	Quantity int
	Price    int
}

type OrderEmailData struct {
	Name        string
	OrderNumber string
	TotalPrice  int
	Items       []OrderEmailItem
}

var orderConfirmationTemplate = template.Must(template.New("order_confirmation").Parse(`
<html>
  <body>
    <p>Hi {{.Name}},</p>
    <p>Thanks for your order <strong>{{.OrderNumber}}</strong>!</p>
    <table>
      {{range .Items}}
      <tr><td>{{.Name}}</td><td>x{{.Quantity}}</td><td>{{.Price}}</td></tr>
      {{end}}
    </table>
    <p>Total: <strong>{{.TotalPrice}}</strong></p>
    <p>Your nakama at the Nakama Store</p>
  </body>
</html>`))

// SendOrderConfirmationEmail sends the post-checkout receipt. Callers treat
// failures as non-fatal.
func SendOrderConfirmationEmail(cfg *config.Config, emailTo string, data OrderEmailData) error {
	if cfg.SMTPAddr == "" {
		return fmt.Errorf("smtp is not configured")
	}

	var body bytes.Buffer
	if err := orderConfirmationTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		cfg.FromEmail,
		"Your Nakama Store order "+data.OrderNumber,
		body.String(),
	)

	auth := smtp.PlainAuth("", cfg.FromEmail, cfg.FromPass, cfg.SMTPHost)

	if err := smtp.SendMail(cfg.SMTPAddr, auth, cfg.FromEmail, []string{emailTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
