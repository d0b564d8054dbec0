package dailypage

import (
	"fmt"
)

// Config 每日论文页面源的配置
type Config struct {
	BaseURL   string `mapstructure:"base_url" yaml:"base_url"`     // 页面基础地址
	Timeout   int    `mapstructure:"timeout" yaml:"timeout"`       // 超时时间（秒）
	Proxy     string `mapstructure:"proxy" yaml:"proxy"`           // 代理地址，如 "http://127.0.0.1:7890"
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"` // 请求 UA
	Schema    string `mapstructure:"schema" yaml:"schema"`         // 强制使用的页面结构版本，留空自动探测
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:   "https://bku12345.github.io/daily-arXiv-ai-enhanced",
		Timeout:   15,
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36",
	}
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url cannot be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", c.Timeout)
	}
	if c.Schema != "" {
		if _, ok := SchemaByName(c.Schema); !ok {
			return fmt.Errorf("unknown page schema: %s", c.Schema)
		}
	}
	return nil
}
