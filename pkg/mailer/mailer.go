package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
)

// Config holds SMTP configuration
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

// Mailer handles sending emails
type Mailer struct {
	config Config
}

// New creates a new Mailer instance
func New(cfg Config) *Mailer {
	return &Mailer{config: cfg}
}

// SendPasswordReset sends a password reset code email
func (m *Mailer) SendPasswordReset(toEmail, fullName, code string, expiryMinutes int) error {
	subject := "GoTask - Reset your password"

	body, err := renderCodeTemplate(resetTemplate, fullName, code, expiryMinutes)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return m.send(toEmail, subject, body)
}

// SendVerificationCode sends an account verification code email
func (m *Mailer) SendVerificationCode(toEmail, fullName, code string, expiryMinutes int) error {
	subject := "GoTask - Verify your account"

	body, err := renderCodeTemplate(verifyTemplate, fullName, code, expiryMinutes)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return m.send(toEmail, subject, body)
}

// send delivers an email via SMTP
func (m *Mailer) send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", m.config.FromName, m.config.From),
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"utf-8\"",
	}

	var msg bytes.Buffer
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	var auth smtp.Auth
	if m.config.Username != "" && m.config.Password != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, msg.Bytes()); err != nil {
		log.Printf("❌ Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("📧 Email sent to %s: %s", to, subject)
	return nil
}

func renderCodeTemplate(tmpl codeTemplate, fullName, code string, expiryMinutes int) (string, error) {
	t, err := template.New("code").Parse(codeTemplateHTML)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = t.Execute(&buf, map[string]interface{}{
		"Heading":  tmpl.Heading,
		"Intro":    tmpl.Intro,
		"Outro":    tmpl.Outro,
		"FullName": fullName,
		"Code":     code,
		"Expiry":   expiryMinutes,
	})
	return buf.String(), err
}

type codeTemplate struct {
	Heading string
	Intro   string
	Outro   string
}

var resetTemplate = codeTemplate{
	Heading: "Password Reset",
	Intro:   "We received a request to reset your password. Use this code:",
	Outro:   "If you didn't request a password reset, please ignore this email and your password will remain unchanged.",
}

var verifyTemplate = codeTemplate{
	Heading: "Account Verification",
	Intro:   "Your verification code is:",
	Outro:   "If you didn't create a GoTask account, please ignore this email.",
}

const codeTemplateHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background-color:#f1f5f9;font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;">
    <div style="max-width:500px;margin:40px auto;background:#ffffff;border-radius:12px;overflow:hidden;border:1px solid #e2e8f0;">
        <div style="background:#0f766e;padding:28px;text-align:center;">
            <h1 style="color:#fff;margin:0;font-size:26px;font-weight:700;">✅ GoTask</h1>
            <p style="color:rgba(255,255,255,0.85);margin:8px 0 0;font-size:14px;">{{.Heading}}</p>
        </div>

        <div style="padding:32px;">
            <p style="color:#1e293b;font-size:16px;line-height:1.6;margin:0 0 24px;">
                Hi <strong>{{.FullName}}</strong>,
            </p>
            <p style="color:#475569;font-size:14px;line-height:1.6;margin:0 0 24px;">
                {{.Intro}}
            </p>

            <div style="background:#f0fdfa;border:2px dashed #99f6e4;border-radius:10px;padding:22px;text-align:center;margin:0 0 24px;">
                <span style="font-size:34px;font-weight:800;letter-spacing:8px;color:#0f766e;font-family:'Courier New',monospace;">{{.Code}}</span>
            </div>

            <p style="color:#64748b;font-size:13px;line-height:1.5;margin:0 0 8px;">
                ⏰ This code expires in <strong>{{.Expiry}} minutes</strong>.
            </p>
            <p style="color:#64748b;font-size:13px;line-height:1.5;margin:0;">
                {{.Outro}}
            </p>
        </div>

        <div style="padding:16px 32px;border-top:1px solid #e2e8f0;text-align:center;">
            <p style="color:#94a3b8;font-size:12px;margin:0;">© 2026 GoTask. All rights reserved.</p>
        </div>
    </div>
</body>
</html>`
