package config

type MySQLConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUsername string
	DBPassword string
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type TracingConfig struct {
	CollectorHost string
}

// UploadConfig says where barang images are written and the URL prefix they are served under.
type UploadConfig struct {
	Dir     string
	BaseURL string
}
