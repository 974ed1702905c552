package mail

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/config"
	worker_task "github.com/Bharani-dharan-k/civic-main-sub000/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

type Mailer interface {
	SendResolutionEmail(to string, reportTitle string, points int) error
	SendAssignmentEmail(to string, payload *worker_task.AssignmentNotifyPayload) error
}

type MailService struct {
	DomainSender string
	MailtrapUrl  string
	MailAPI      string
}

func NewMailer(cfg *config.AppConfig) Mailer {
	if cfg.APP.State == "prod" {
		return &MailService{
			DomainSender: cfg.MAILTRAP.API.MailtrapDomain,
			MailtrapUrl:  cfg.MAILTRAP.API.MailtrapURL,
			MailAPI:      cfg.MAILTRAP.API.MailtrapTokenAPI,
		}
	}
	return &MailService{
		DomainSender: cfg.MAILTRAP.Sandbox.SandboxDomain,
		MailtrapUrl:  cfg.MAILTRAP.Sandbox.SandboxURL,
		MailAPI:      cfg.MAILTRAP.Sandbox.SandboxAPI,
	}
}

func (m *MailService) send(payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Error when marshalling payload body.")
		return err
	}

	req, err := http.NewRequest(http.MethodPost, m.MailtrapUrl, bytes.NewBuffer(body))
	if err != nil {
		log.Error().Err(err).Msg("Error when send the request.")
		return err
	}

	req.Header.Set("Authorization", "Bearer "+m.MailAPI)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Error when get response from server.")
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailtrap send failed: status=%d body=%s",
			resp.StatusCode,
			string(respBody))
	}

	return nil
}

func (m *MailService) SendResolutionEmail(to string, reportTitle string, points int) error {
	log.Info().Msg("Mailer: Send resolution email hit.")
	payload := map[string]any{
		"from": map[string]string{
			"email": m.DomainSender,
			"name":  "Civic Connect - Report Resolved",
		},
		"to": []map[string]string{
			{
				"email": to,
			},
		},
		"subject": fmt.Sprintf("Your report \"%s\" has been resolved", reportTitle),
		"text": fmt.Sprintf(`
		Hi,

		Good news! Your report has been marked as resolved by the responsible team.

		Report	: %s
		Points	: +%d

		The points have been credited to your civic account. Thank you for helping
		keep your neighbourhood in shape. If the issue is not actually fixed, you
		can reopen it from your dashboard.

		— Civic Connect
		`, reportTitle, points),
		"category": "Report Resolution",
	}

	return m.send(payload)
}

func (m *MailService) SendAssignmentEmail(to string, p *worker_task.AssignmentNotifyPayload) error {
	log.Info().Msg("Mailer: Send assignment email hit.")
	payload := map[string]any{
		"from": map[string]string{
			"email": m.DomainSender,
			"name":  "Civic Connect - New Assignment",
		},
		"to": []map[string]string{
			{
				"email": to,
			},
		},
		"subject": fmt.Sprintf("New %s assigned: %s", p.ItemKind, p.ItemTitle),
		"text": fmt.Sprintf(`
		Hi,

		A work item has been assigned to you.

		Item	: %s
		Kind	: %s
		Priority: %s

		Please acknowledge it from your dashboard and start working on it when
		you can. Keeping the status up to date helps citizens follow along.

		— Civic Connect
		`, p.ItemTitle, p.ItemKind, p.Priority),
		"category": "Assignment",
	}

	return m.send(payload)
}
