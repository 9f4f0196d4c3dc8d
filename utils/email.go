package utils

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/miikeyanderson/AMED-Referrals-sub000/config"
	"github.com/miikeyanderson/AMED-Referrals-sub000/logging"
)

var mailCfg *config.Config

// InitMailer stores the SMTP settings used for outbound notifications.
func InitMailer(cfg *config.Config) {
	mailCfg = cfg
}

// SendStatusEmail notifies the referring clinician that a candidate moved
// stages. Delivery is best effort; failures are logged and ignored.
func SendStatusEmail(email, candidateName, newStage string) {
	if mailCfg == nil || mailCfg.SMTPHost == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", mailCfg.SMTPSender)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Referral update: %s", candidateName))
	m.SetBody("text/plain", fmt.Sprintf("Your referral %s is now %s.", candidateName, newStage))

	d := gomail.NewDialer(mailCfg.SMTPHost, mailCfg.SMTPPort, mailCfg.SMTPUser, mailCfg.SMTPPass)

	if err := d.DialAndSend(m); err != nil {
		logging.Logger.Warn("failed to send referral status email",
			zap.String("email", email),
			zap.Error(err),
		)
		return
	}

	logging.Logger.Info("referral status email sent", zap.String("email", email))
}
