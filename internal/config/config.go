package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 应用配置
// 来源优先级: 环境变量 > .env 文件 > 默认值
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Audit    AuditConfig
	Log      LogConfig
	Public   PublicConfig
	RateMsgs time.Duration // 联系表单提交间隔
}

type ServerConfig struct {
	Port        string
	Mode        string // gin 模式: debug / release / test
	CORSOrigins []string
}

type DBConfig struct {
	Driver          string // postgres / sqlite
	DSN             string
	LogLevel        string // silent / error / warn / info
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret       string
	AccessTTL    time.Duration
	Issuer       string
	CookieSecure bool
}

type StorageConfig struct {
	Provider  string // s3 / local
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
	CDNDomain string
	BasePath  string
	LocalDir  string
	LocalURL  string
}

type AuditConfig struct {
	QueueSize    int
	WriteTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string // json / console
}

type PublicConfig struct {
	BaseURL string
}

// 默认值
var defaults = map[string]interface{}{
	"SERVER_PORT":           "8080",
	"GIN_MODE":              "debug",
	"CORS_ALLOW_ORIGINS":    "http://localhost:3000",
	"DB_DRIVER":             "postgres",
	"DB_DSN":                "host=localhost user=postgres password=postgres dbname=oneweb port=5432 sslmode=disable TimeZone=UTC",
	"DB_LOG_LEVEL":          "warn",
	"DB_MAX_IDLE_CONNS":     10,
	"DB_MAX_OPEN_CONNS":     100,
	"DB_CONN_MAX_LIFETIME":  "1h",
	"JWT_SECRET":            "",
	"JWT_ACCESS_TTL":        "24h",
	"JWT_ISSUER":            "oneweb",
	"JWT_COOKIE_SECURE":     false,
	"STORAGE_PROVIDER":      "local",
	"AWS_BUCKET":            "",
	"AWS_REGION":            "",
	"AWS_ACCESS_KEY_ID":     "",
	"AWS_SECRET_ACCESS_KEY": "",
	"AWS_ENDPOINT":          "",
	"AWS_CDN_DOMAIN":        "",
	"STORAGE_BASE_PATH":     "oneweb",
	"LOCAL_STORAGE_DIR":     "./uploads",
	"LOCAL_STORAGE_URL":     "/uploads",
	"PUBLIC_BASE_URL":       "http://localhost:3000",
	"AUDIT_QUEUE_SIZE":      1024,
	"AUDIT_WRITE_TIMEOUT":   "5s",
	"MESSAGE_RATE_INTERVAL": "30s",
	"LOG_LEVEL":             "info",
	"LOG_FORMAT":            "console",
}

// Load 读取配置
// envFiles 为空时尝试加载当前目录的 .env，文件不存在不报错
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("加载 env 文件失败: %w", err)
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        v.GetString("SERVER_PORT"),
			Mode:        v.GetString("GIN_MODE"),
			CORSOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		},
		DB: DBConfig{
			Driver:          strings.ToLower(v.GetString("DB_DRIVER")),
			DSN:             v.GetString("DB_DSN"),
			LogLevel:        strings.ToLower(v.GetString("DB_LOG_LEVEL")),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessTTL:    v.GetDuration("JWT_ACCESS_TTL"),
			Issuer:       v.GetString("JWT_ISSUER"),
			CookieSecure: v.GetBool("JWT_COOKIE_SECURE"),
		},
		Storage: StorageConfig{
			Provider:  strings.ToLower(v.GetString("STORAGE_PROVIDER")),
			Bucket:    v.GetString("AWS_BUCKET"),
			Region:    v.GetString("AWS_REGION"),
			AccessKey: v.GetString("AWS_ACCESS_KEY_ID"),
			SecretKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Endpoint:  v.GetString("AWS_ENDPOINT"),
			CDNDomain: v.GetString("AWS_CDN_DOMAIN"),
			BasePath:  v.GetString("STORAGE_BASE_PATH"),
			LocalDir:  v.GetString("LOCAL_STORAGE_DIR"),
			LocalURL:  v.GetString("LOCAL_STORAGE_URL"),
		},
		Audit: AuditConfig{
			QueueSize:    v.GetInt("AUDIT_QUEUE_SIZE"),
			WriteTimeout: v.GetDuration("AUDIT_WRITE_TIMEOUT"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		Public: PublicConfig{
			BaseURL: strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
		},
		RateMsgs: v.GetDuration("MESSAGE_RATE_INTERVAL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验必填项
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET 未配置")
	}
	if len(c.JWT.Secret) < 16 {
		return fmt.Errorf("JWT_SECRET 长度不能少于 16 位")
	}
	if c.JWT.AccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL 必须大于 0")
	}
	switch c.DB.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", c.DB.Driver)
	}
	if c.DB.DSN == "" {
		return fmt.Errorf("DB_DSN 未配置")
	}
	switch c.Storage.Provider {
	case "local":
	case "s3":
		if c.Storage.Bucket == "" || c.Storage.Region == "" {
			return fmt.Errorf("S3 存储需要 AWS_BUCKET 和 AWS_REGION")
		}
	default:
		return fmt.Errorf("不支持的存储提供者: %s", c.Storage.Provider)
	}
	return nil
}

// splitList 逗号分隔的列表
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
