package config

import (
	"github.com/feinheit/zipfelchappe/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Funding   FundingConfig   `mapstructure:"funding"`
	Mail      MailConfig      `mapstructure:"mail"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// FundingConfig 众筹业务配置
type FundingConfig struct {
	Currencies      []string `mapstructure:"currencies"`        // 可选货币列表
	DefaultCurrency string   `mapstructure:"default_currency"`  // 默认货币
	MaxDurationDays int      `mapstructure:"max_duration_days"` // 众筹周期上限（天）
	DefaultLanguage string   `mapstructure:"default_language"`  // 默认语言
}

// MailConfig 邮件配置
type MailConfig struct {
	Enabled bool   `mapstructure:"enabled"` // 是否发送邮件
	From    string `mapstructure:"from"`    // 发件人地址
	Workers int    `mapstructure:"workers"` // 发送协程池大小
}

type SchedulerConfig struct {
	Interval int `mapstructure:"interval"` // 秒
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // 输出目标: stdout, stderr, file
	File   string `mapstructure:"file"`   // 日志文件路径（当output为file时使用）
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/zipfelchappe")

	// 设置默认值
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "zipfelchappe")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("funding.currencies", []string{"CHF", "EUR", "USD"})
	viper.SetDefault("funding.default_currency", "CHF")
	viper.SetDefault("funding.max_duration_days", 120)
	viper.SetDefault("funding.default_language", "de")
	viper.SetDefault("mail.enabled", false)
	viper.SetDefault("mail.from", "noreply@zipfelchappe.ch")
	viper.SetDefault("mail.workers", 4)
	viper.SetDefault("scheduler.interval", 300)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	// 自动读取环境变量
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}

// HasCurrency 判断货币是否在可选列表中
func (f FundingConfig) HasCurrency(currency string) bool {
	for _, c := range f.Currencies {
		if c == currency {
			return true
		}
	}
	return false
}
