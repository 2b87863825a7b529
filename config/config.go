package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort       string
	MetricsPort       string
	Environment       string
	AppBaseURL        string
	CookieSecure      bool
	MySQLConfig       MySQLConfig
	JWTSecret         string
	GoogleOAuthConfig GoogleOAuthConfig
	SMTPConfig        SMTPConfig
	KafkaConfig       KafkaConfig
	TracingConfig     TracingConfig
	UploadConfig      UploadConfig
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort:  getenv("SERVICE_PORT", "8080"),
		MetricsPort:  getenv("METRICS_PORT", "9090"),
		Environment:  getenv("ENVIRONMENT", "development"),
		AppBaseURL:   getenv("APP_BASE_URL", "http://localhost:8080"),
		CookieSecure: os.Getenv("COOKIE_SECURE") == "true",
		MySQLConfig: MySQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     getenv("DB_PORT", "3306"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		GoogleOAuthConfig: GoogleOAuthConfig{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURI:  os.Getenv("GOOGLE_REDIRECT_URI"),
		},
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		UploadConfig: UploadConfig{
			Dir:     getenv("UPLOAD_DIR", "./uploads"),
			BaseURL: getenv("UPLOAD_BASE_URL", "/uploads"),
		},
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	smtpPort, err := strconv.Atoi(getenv("SMTP_PORT", "587"))
	if err == nil {
		conf.SMTPConfig.Port = smtpPort
	}

	return &conf
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
