package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type EmailSender struct {
	apiKey      string
	senderEmail string
	senderName  string
	frontend    string
}

func NewEmailSender(apiKey, senderEmail, frontend string) *EmailSender {
	return &EmailSender{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  "CourseMarket Support",
		frontend:    frontend,
	}
}

// SendGrid request format
type sgEmail struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
type sgRequest struct {
	Personalizations []struct {
		To []sgEmail `json:"to"`
	} `json:"personalizations"`
	From    sgEmail     `json:"from"`
	Subject string      `json:"subject"`
	Content []sgContent `json:"content"`
}

func (s *EmailSender) SendResetEmail(toEmail string, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontend, token)

	body := fmt.Sprintf(`
		<html>
		<body>
			<h3>Password reset</h3>
			<p>Click the link below to set a new password. The link is valid for 15 minutes.</p>
			<p><a href="%s">Reset password</a></p>
			<p>If you did not request this, just ignore this message.</p>
		</body>
		</html>`, resetLink)

	return s.send(toEmail, "Password reset", "text/html", body)
}

// SendContactNotification пересылает сообщение с формы контактов на почту поддержки.
func (s *EmailSender) SendContactNotification(toEmail, name, fromEmail, message string) error {
	body := fmt.Sprintf("New contact message\n\nFrom: %s <%s>\n\n%s", name, fromEmail, message)
	return s.send(toEmail, "Contact form: "+name, "text/plain", body)
}

func (s *EmailSender) send(toEmail, subject, contentType, body string) error {
	req := sgRequest{
		Personalizations: []struct {
			To []sgEmail `json:"to"`
		}{
			{To: []sgEmail{{Email: toEmail}}},
		},
		From: sgEmail{
			Email: s.senderEmail,
			Name:  s.senderName,
		},
		Subject: subject,
		Content: []sgContent{{Type: contentType, Value: body}},
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequest(http.MethodPost, "https://api.sendgrid.com/v3/mail/send", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
