package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/Gkeerthanasilkskanchi/silks-api/config"
)

// QueryEmail is a demo/enquiry request forwarded to the shop inbox.
type QueryEmail struct {
	Name         string
	Email        string
	MobileNumber string
	RequestFor   string
	Date         string
}

// ReviewEmail is a product review forwarded to the shop inbox.
type ReviewEmail struct {
	Name         string
	Email        string
	MobileNumber string
	Review       string
	Stars        string
}

var queryTemplate = template.Must(template.New("query").Parse(`
<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2 style="color:#a4204d;">You have a new demo request for Product</h2>
  <p style="font-size: 16px; color: #555;"><strong>Name :</strong> {{.Name}}</p>
  <p style="font-size: 16px; color: #555;"><strong>Email ID :</strong> {{.Email}}</p>
  <p style="font-size: 16px; color: #555;"><strong>Mobile Number :</strong> {{.MobileNumber}}</p>
  <p style="font-size: 16px; color: #555;"><strong>Request For :</strong> {{.RequestFor}}</p>
  <p style="font-size: 16px; color: #555;"><strong>Time and Date :</strong> {{.Date}}</p>
  <hr style="border: 1px solid #ddd; margin: 20px 0;"/>
</div>`))

var reviewTemplate = template.Must(template.New("review").Parse(`
<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2 style="color:#a4204d;">You have a new review about Product</h2>
  <p style="font-size: 16px; color: #555;"><strong>Name :</strong> {{.Name}}</p>
  <p style="font-size: 16px; color: #555;"><strong>Email ID :</strong> {{.Email}}</p>
  <p style="font-size: 16px; color: #555;"><strong>Mobile Number :</strong> {{.MobileNumber}}</p>
  <p style="font-size: 16px; color: #555;"><strong>Review :</strong> {{.Review}}</p>
  <p style="font-size: 16px; color: #555;"><strong>Stars :</strong> {{.Stars}}</p>
  <hr style="border: 1px solid #ddd; margin: 20px 0;"/>
</div>`))

var subscriptionTemplate = template.Must(template.New("subscription").Parse(`
<p>You have a new user:</p>
<p>EmailId: {{.}}</p>`))

func RenderQueryEmail(data QueryEmail) (string, error) {
	return render(queryTemplate, data)
}

func RenderReviewEmail(data ReviewEmail) (string, error) {
	return render(reviewTemplate, data)
}

func RenderSubscriptionEmail(email string) (string, error) {
	return render(subscriptionTemplate, email)
}

func render(tmpl *template.Template, data any) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}
	return body.String(), nil
}

// SendEmail delivers an HTML message to the shop's own inbox over SMTP.
func SendEmail(cfg config.SMTP, subject, htmlBody string) error {
	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		cfg.Email,
		cfg.Email,
		subject,
		htmlBody,
	)

	auth := smtp.PlainAuth("", cfg.Email, cfg.Password, cfg.Host)

	if err := smtp.SendMail(cfg.Address, auth, cfg.Email, []string{cfg.Email}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
