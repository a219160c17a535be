// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name        string `mapstructure:"name"`
		FrontendURL string `mapstructure:"frontend_url"`
		// モジュールごとに取得する外部リソース(動画/リポジトリ)の上限
		ResourceLimit int `mapstructure:"resource_limit"`
		// 決済成功時に付与するプレミアム期間 (日数)
		PremiumDays int `mapstructure:"premium_days"`
		// コミュニティ一覧の1ページあたり最大件数
		CommunityPageLimit int `mapstructure:"community_page_limit"`
	} `mapstructure:"app"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"` // debug | info | warn | error
	} `mapstructure:"log"`
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	JWT struct {
		SecretKey      string        `mapstructure:"secret_key"`
		AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
	} `mapstructure:"jwt"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	OpenAI struct {
		APIKey      string  `mapstructure:"api_key"`
		Model       string  `mapstructure:"model"`
		Temperature float32 `mapstructure:"temperature"`
	} `mapstructure:"openai"`
	YouTube struct {
		APIKey string `mapstructure:"api_key"`
	} `mapstructure:"youtube"`
	GitHub struct {
		Token string `mapstructure:"token"`
	} `mapstructure:"github"`
	Razorpay struct {
		KeyID         string `mapstructure:"key_id"`
		KeySecret     string `mapstructure:"key_secret"`
		WebhookSecret string `mapstructure:"webhook_secret"`
	} `mapstructure:"razorpay"`
	Mailer struct {
		Type string `mapstructure:"type"` // "log" | "smtp" | "ses"
	} `mapstructure:"mailer"`
	SMTP SMTPConfig `mapstructure:"smtp"`
	SES  SESConfig  `mapstructure:"ses"`
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" | "iam_role"
	Region          string `mapstructure:"region"`
	From            string `mapstructure:"from"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数からの上書き (例: APP_DATABASE_URL, APP_OPENAI_API_KEY)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "APP_DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "APP_JWT_SECRET_KEY")
	viper.BindEnv("openai.api_key", "APP_OPENAI_API_KEY")
	viper.BindEnv("youtube.api_key", "APP_YOUTUBE_API_KEY")
	viper.BindEnv("github.token", "APP_GITHUB_TOKEN")
	viper.BindEnv("razorpay.key_id", "APP_RAZORPAY_KEY_ID")
	viper.BindEnv("razorpay.key_secret", "APP_RAZORPAY_KEY_SECRET")
	viper.BindEnv("razorpay.webhook_secret", "APP_RAZORPAY_WEBHOOK_SECRET")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.App.Name == "" {
		Cfg.App.Name = AppName
	}
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.App.ResourceLimit <= 0 {
		Cfg.App.ResourceLimit = DefaultResourceLimit
	}
	if Cfg.App.PremiumDays <= 0 {
		Cfg.App.PremiumDays = DefaultPremiumDays
	}
	if Cfg.App.CommunityPageLimit <= 0 {
		Cfg.App.CommunityPageLimit = DefaultCommunityPageLimit
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.JWT.AccessTokenTTL <= 0 {
		Cfg.JWT.AccessTokenTTL = 24 * time.Hour
	}
	if Cfg.OpenAI.Model == "" {
		Cfg.OpenAI.Model = DefaultOpenAIModel
	}
	if Cfg.OpenAI.Temperature <= 0 {
		Cfg.OpenAI.Temperature = 0.7
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Resource Limit: %d", Cfg.App.ResourceLimit)
	log.Printf("Mailer Type: %s", Cfg.Mailer.Type)

	return nil
}
