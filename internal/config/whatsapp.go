package config

type WhatsAppConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

func loadWhatsAppConfig() *WhatsAppConfig {
	return &WhatsAppConfig{
		AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		FromNumber: getEnv("TWILIO_WHATSAPP_FROM", ""),
	}
}
