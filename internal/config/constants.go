// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "Shirube"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort         = ":8080"
	DefaultLogLevel           = "info"
	DefaultResourceLimit      = 3
	DefaultPremiumDays        = 30
	DefaultCommunityPageLimit = 20
	DefaultOpenAIModel        = "gpt-4o-mini"
)
