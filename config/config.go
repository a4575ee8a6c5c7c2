package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort    string
	MetricsPort    string
	Environment    string
	FrontendURL    string
	BackendURL     string
	UploadDir      string
	JWTSecret      string
	GoogleClientID string
	MongoDBConfig  MongoDBConfig
	KafkaConfig    KafkaConfig
	MidtransConfig MidtransConfig
	SMSConfig      SMSConfig
	SMTPConfig     SMTPConfig
	TracingConfig  TracingConfig
	PaymentEnabled bool
	// Unpaid pending orders older than this many hours get cancelled
	// by the background job and their stock restored.
	UnpaidOrderTTLHours int
}

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type MidtransConfig struct {
	ServerKey string
}

type SMSConfig struct {
	GatewayURL string
	APIKey     string
	SenderID   string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort:    os.Getenv("SERVICE_PORT"),
		MetricsPort:    os.Getenv("METRICS_PORT"),
		Environment:    os.Getenv("ENVIRONMENT"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),
		BackendURL:     os.Getenv("BACKEND_URL"),
		UploadDir:      os.Getenv("UPLOAD_DIR"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: os.Getenv("DB_PORT"),
			DBName: os.Getenv("DB_NAME"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		MidtransConfig: MidtransConfig{
			ServerKey: os.Getenv("MIDTRANS_SERVER_KEY"),
		},
		SMSConfig: SMSConfig{
			GatewayURL: os.Getenv("SMS_GATEWAY_URL"),
			APIKey:     os.Getenv("SMS_API_KEY"),
			SenderID:   os.Getenv("SMS_SENDER_ID"),
		},
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.FrontendURL == "" {
		conf.FrontendURL = "http://localhost:3000"
	}

	if conf.BackendURL == "" {
		conf.BackendURL = "http://localhost:8000"
	}

	if conf.UploadDir == "" {
		conf.UploadDir = "uploads"
	}

	if conf.MongoDBConfig.DBName == "" {
		conf.MongoDBConfig.DBName = "storefront"
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err == nil {
		conf.SMTPConfig.Port = smtpPort
	}

	conf.PaymentEnabled = os.Getenv("PAYMENT_ENABLED") == "true"

	conf.UnpaidOrderTTLHours = 24
	ttl, err := strconv.Atoi(os.Getenv("UNPAID_ORDER_TTL_HOURS"))
	if err == nil && ttl > 0 {
		conf.UnpaidOrderTTLHours = ttl
	}

	return &conf
}
