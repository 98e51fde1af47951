package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"setu/config"
)

// SendModuleApprovedEmail notifies the configured admin address that a module
// was approved and exported. Best effort: a failure here is logged and never
// affects the approval itself.
func SendModuleApprovedEmail(moduleTitle, clusterName, language, pdfFilename string) {
	cfg := config.AppConfig
	if cfg.SendGridApiKey == "" || cfg.AdminEmail == "" {
		return
	}

	subject := "Module Approved: " + moduleTitle
	htmlBody := fmt.Sprintf(`
		<p>The training module <strong>%s</strong> has been approved.</p>
		<ul>
			<li><strong>Cluster:</strong> %s</li>
			<li><strong>Language:</strong> %s</li>
			<li><strong>Exported PDF:</strong> %s</li>
		</ul>
		<p>The PDF is ready for WhatsApp delivery to the cluster's registered teachers.</p>
	`, moduleTitle, clusterName, language, pdfFilename)

	from := mail.NewEmail("Shiksha Setu", cfg.EmailSender)
	to := mail.NewEmail("Admin", cfg.AdminEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(cfg.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending approval email: %v", err)
		return
	}
	if resp.StatusCode >= 300 {
		log.Printf("Approval email rejected with status %d: %s", resp.StatusCode, resp.Body)
		return
	}
	log.Printf("Approval email sent for module '%s'", moduleTitle)
}
