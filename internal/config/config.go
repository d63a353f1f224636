package config

import (
	"os"
	"strconv"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Server  Server  `yaml:"server"`
	Auth    Auth    `yaml:"auth"`
	Storage Storage `yaml:"storage"`
	Email   Email   `yaml:"email"`
}

type Server struct {
	ListenAddr    string `yaml:"listenAddr"`
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	DataDir       string `yaml:"dataDir"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Auth struct {
	TokenSecret     string `yaml:"tokenSecret"`
	TokenTTLMinutes int    `yaml:"tokenTTLMinutes"`
	RefreshTTLDays  int    `yaml:"refreshTTLDays"`
}

type Storage struct {
	UploadDir string `yaml:"uploadDir"`
	S3        S3     `yaml:"s3"`
}

type S3 struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"accessKeyID"`
	SecretAccessKey string `yaml:"secretAccessKey"`
}

type Email struct {
	ResendAPIKey string `yaml:"resendApiKey"`
	FromAddress  string `yaml:"fromAddress"`
}

// Load reads the yaml config at path (optional), then applies environment
// overrides and defaults. Absence of a postgres DSN selects the file-backed
// store; absence of an S3 bucket selects local upload storage; absence of a
// Resend key disables certificate email.
func Load(path string) (Config, error) {

	var config Config

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return Config{}, err
		}
		defer file.Close()

		err = yaml.NewDecoder(file).Decode(&config)
		if err != nil {
			return Config{}, err
		}
	}

	applyEnv(&config)
	applyDefaults(&config)

	return config, nil
}

func applyEnv(c *Config) {
	setString(&c.Server.ListenAddr, "SACRISTY_LISTEN_ADDR")
	setString(&c.Server.PostgresDsn, "POSTGRES_DSN")
	setString(&c.Server.RedisAddr, "REDIS_ADDR")
	setInt(&c.Server.RedisDB, "REDIS_DB")
	setString(&c.Server.DataDir, "SACRISTY_DATA_DIR")
	setString(&c.Server.TraceEndpoint, "OTLP_ENDPOINT")

	setString(&c.Auth.TokenSecret, "SACRISTY_TOKEN_SECRET")

	setString(&c.Storage.UploadDir, "SACRISTY_UPLOAD_DIR")
	setString(&c.Storage.S3.Bucket, "S3_BUCKET")
	setString(&c.Storage.S3.Region, "S3_REGION")
	setString(&c.Storage.S3.Endpoint, "S3_ENDPOINT")
	setString(&c.Storage.S3.AccessKeyID, "S3_ACCESS_KEY_ID")
	setString(&c.Storage.S3.SecretAccessKey, "S3_SECRET_ACCESS_KEY")

	setString(&c.Email.ResendAPIKey, "RESEND_API_KEY")
	setString(&c.Email.FromAddress, "MAIL_FROM_ADDRESS")
}

func applyDefaults(c *Config) {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = ":8000"
	}
	if c.Server.DataDir == "" {
		c.Server.DataDir = "data"
	}
	if c.Storage.UploadDir == "" {
		c.Storage.UploadDir = "uploads"
	}
	if c.Auth.TokenSecret == "" {
		// mock auth; a fixed development secret keeps the server bootable
		c.Auth.TokenSecret = "sacristy-dev-secret"
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		c.Auth.TokenTTLMinutes = 60
	}
	if c.Auth.RefreshTTLDays <= 0 {
		c.Auth.RefreshTTLDays = 30
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
