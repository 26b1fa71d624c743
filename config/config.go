package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Refresh RefreshConfig `mapstructure:"refresh"`
	Storage StorageConfig `mapstructure:"storage"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Log     LogConfig     `mapstructure:"log"`
}

// APIConfig 后端 REST API 配置
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// Timeout 为 0 时不设置请求超时，沿用传输层默认行为
	Timeout time.Duration `mapstructure:"timeout"`
}

// RefreshConfig 后台轮询刷新配置
type RefreshConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

// StorageConfig 本地持久化存储配置
// Backend 支持 file（默认，单进程 JSON 文件）与 redis（多实例共享）
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
}

// RedisConfig Redis 存储后端配置
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ThemeConfig 主题配置
// PreferDark 对应平台级色彩偏好，仅在本地无已存偏好时作为种子值
type ThemeConfig struct {
	PreferDark bool `mapstructure:"prefer_dark"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("api.base_url", "http://127.0.0.1:8000/api")
	v.SetDefault("api.timeout", "0s")

	v.SetDefault("refresh.enabled", false)
	v.SetDefault("refresh.interval", "30s")

	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.dir", "./data")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("theme.prefer_dark", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("KANBAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("配置校验失败: api.base_url 不能为空")
	}
	if c.Refresh.Interval <= 0 {
		return fmt.Errorf("配置校验失败: refresh.interval 必须大于 0")
	}
	switch c.Storage.Backend {
	case "file", "redis":
	default:
		return fmt.Errorf("配置校验失败: storage.backend 仅支持 file 或 redis，当前为 %q", c.Storage.Backend)
	}
	return nil
}
