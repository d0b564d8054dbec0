package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"ArxivWeekly/internal/category"
	"ArxivWeekly/internal/dailypage"
	"ArxivWeekly/pkg/logger"
)

// ReportConfig 周报内容配置
type ReportConfig struct {
	Language   string `mapstructure:"language" yaml:"language"`       // 周报生成语言
	Categories string `mapstructure:"categories" yaml:"categories"`   // 逗号分隔的目标分类标签
	WindowDays int    `mapstructure:"window_days" yaml:"window_days"` // 聚合窗口天数
	Unmatched  string `mapstructure:"unmatched" yaml:"unmatched"`     // 未命中分类的处理：other/drop
	MaxTokens  int    `mapstructure:"max_tokens" yaml:"max_tokens"`   // LLM 输出 token 上限
}

// CategorySet 解析配置的目标分类列表，标签在这里统一去空白
func (rc ReportConfig) CategorySet() category.Set {
	return category.Parse(rc.Categories)
}

// UnmatchedPolicy 未命中分类的记录的处理策略
func (rc ReportConfig) UnmatchedPolicy() category.Policy {
	return category.ParsePolicy(rc.Unmatched)
}

func (rc ReportConfig) Validate() error {
	if rc.WindowDays <= 0 {
		return fmt.Errorf("window_days must be positive, got %d", rc.WindowDays)
	}
	return nil
}

// LLMConfig LLM 配置
type LLMConfig struct {
	BaseURL   string `mapstructure:"base_url" yaml:"base_url"` // API 地址，支持 OpenAI 兼容的 API
	ModelName string `mapstructure:"model" yaml:"model"`       // 模型名称
	APIKey    string `mapstructure:"api_key" yaml:"api_key"`   // API Key
}

// OutputConfig 产物输出路径配置
type OutputConfig struct {
	RecordsPath string `mapstructure:"records_path" yaml:"records_path"` // 论文记录 JSON
	ReportPath  string `mapstructure:"report_path" yaml:"report_path"`   // 周报 Markdown
	CSVPath     string `mapstructure:"csv_path" yaml:"csv_path"`         // 可选 CSV 导出，留空关闭
}

// ArchiveConfig 本地留档配置
type ArchiveConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"` // 数据库文件路径
}

// FeishuConfig 飞书推送配置，app_id 和 receive_id 都配置了才启用
type FeishuConfig struct {
	AppID         string `mapstructure:"app_id" yaml:"app_id"`
	AppSecret     string `mapstructure:"app_secret" yaml:"app_secret"`
	ReceiveID     string `mapstructure:"receive_id" yaml:"receive_id"`
	ReceiveIDType string `mapstructure:"receive_id_type" yaml:"receive_id_type"`
}

// Enabled 是否启用推送
func (fc FeishuConfig) Enabled() bool {
	return fc.AppID != "" && fc.ReceiveID != ""
}

// AppConfig 应用总配置
type AppConfig struct {
	Env     string           `mapstructure:"env" yaml:"env"` // 运行环境:dev/prod
	Page    dailypage.Config `mapstructure:"page" yaml:"page"`
	Report  ReportConfig     `mapstructure:"report" yaml:"report"`
	LLM     LLMConfig        `mapstructure:"agent" yaml:"agent"` // 与 yaml 中的 agent 键对应
	Output  OutputConfig     `mapstructure:"output" yaml:"output"`
	Archive ArchiveConfig    `mapstructure:"archive" yaml:"archive"`
	Feishu  FeishuConfig     `mapstructure:"feishu" yaml:"feishu"`
}

var (
	global     *AppConfig
	once       sync.Once
	globalErr  error
	configPath string // 当前使用的配置文件路径
)

func setDefaults(v *viper.Viper) {
	homedir, _ := os.UserHomeDir()
	archivePath := filepath.Join(homedir, ".arxivweekly", "data", "papers.db")

	v.SetDefault("env", "prod")

	page := dailypage.DefaultConfig()
	v.SetDefault("page.base_url", page.BaseURL)
	v.SetDefault("page.timeout", page.Timeout)
	v.SetDefault("page.proxy", "")
	v.SetDefault("page.user_agent", page.UserAgent)
	v.SetDefault("page.schema", "")

	v.SetDefault("report.language", "Chinese or English")
	v.SetDefault("report.categories", "cs.AI,cs.CL,cs.CV,cs.LG")
	v.SetDefault("report.window_days", 7)
	v.SetDefault("report.unmatched", "other")
	v.SetDefault("report.max_tokens", 2000)

	v.SetDefault("agent.base_url", "https://api.siliconflow.cn/v1")
	v.SetDefault("agent.model", "deepseek-ai/DeepSeek-V3")
	v.SetDefault("agent.api_key", "")

	v.SetDefault("output.records_path", "weekly_papers.json")
	v.SetDefault("output.report_path", "weekly_report.md")
	v.SetDefault("output.csv_path", "")

	v.SetDefault("archive.enabled", false)
	v.SetDefault("archive.path", archivePath)

	v.SetDefault("feishu.app_id", "")
	v.SetDefault("feishu.app_secret", "")
	v.SetDefault("feishu.receive_id", "")
	v.SetDefault("feishu.receive_id_type", "open_id")
}

// bindLegacyEnv 兼容旧脚本的环境变量名，AXW_ 前缀的优先
func bindLegacyEnv(v *viper.Viper) {
	v.BindEnv("agent.api_key", "AXW_AGENT_API_KEY", "OPENAI_API_KEY")
	v.BindEnv("agent.base_url", "AXW_AGENT_BASE_URL", "OPENAI_BASE_URL")
	v.BindEnv("agent.model", "AXW_AGENT_MODEL", "MODEL_NAME")
	v.BindEnv("report.language", "AXW_REPORT_LANGUAGE", "LANGUAGE")
}

// Init 初始化配置，可额外传入目录或具体文件路径
func Init(configPaths ...string) (*AppConfig, error) {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		homedir, _ := os.UserHomeDir()
		configDir := filepath.Join(homedir, ".arxivweekly", "config")
		os.MkdirAll(configDir, 0755)

		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath(configDir)

		for _, p := range configPaths {
			if p == "" {
				continue
			}
			if strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml") {
				v.SetConfigFile(p)
			} else {
				v.AddConfigPath(p)
			}
		}

		v.SetEnvPrefix("AXW")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		setDefaults(v)
		bindLegacyEnv(v)

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				globalErr = fmt.Errorf("读取配置文件失败: %w", err)
				return
			}
			// 配置文件不存在，创建示例配置文件
			if err := CreateExampleConfig(); err != nil {
				globalErr = fmt.Errorf("创建示例配置文件失败: %w", err)
				return
			}
		} else {
			configPath = v.ConfigFileUsed()
		}

		cfg := &AppConfig{}
		if err := v.Unmarshal(&cfg); err != nil {
			globalErr = fmt.Errorf("配置解析失败: %w", err)
			return
		}

		if err := cfg.Page.Validate(); err != nil {
			globalErr = fmt.Errorf("page 配置不合法: %w", err)
			return
		}

		if err := cfg.Report.Validate(); err != nil {
			globalErr = fmt.Errorf("report 配置不合法: %w", err)
			return
		}

		global = cfg
	})
	return global, globalErr
}

func MustInit(configPaths ...string) *AppConfig {
	cfg, err := Init(configPaths...)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Get() *AppConfig {
	if global == nil {
		_, _ = Init()
	}
	return global
}

func GetConfigPath() string {
	if configPath == "" {
		_, _ = Init()
	}
	if configPath == "" {
		homedir, _ := os.UserHomeDir()
		return filepath.Join(homedir, ".arxivweekly", "config", "config.yaml")
	}
	return configPath
}

func CreateExampleConfig() error {
	homedir, _ := os.UserHomeDir()
	configDir := filepath.Join(homedir, ".arxivweekly", "config")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}

	configFile := filepath.Join(configDir, "config.yaml")

	_, err := os.Stat(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			exampleContent := `# ArxivWeekly 配置文件
# 所有配置都可以用 AXW_ 前缀的环境变量覆盖，如 AXW_AGENT_API_KEY

# 每日论文页面源
page:
  base_url: "https://bku12345.github.io/daily-arXiv-ai-enhanced"
  timeout: 15      # 单次请求超时（秒）
  proxy: ""        # 代理设置，如: "http://127.0.0.1:7890"
  schema: ""       # 强制页面结构版本（card-grid/card-list/paper-list），留空自动探测

# 周报内容
report:
  language: "Chinese or English"          # 周报生成语言
  categories: "cs.AI,cs.CL,cs.CV,cs.LG"   # 目标分类，逗号分隔
  window_days: 7                          # 聚合最近几天
  unmatched: "other"                      # 未命中分类的论文：other 归入 Other / drop 丢弃
  max_tokens: 2000

# LLM 配置
agent:
  base_url: "https://api.siliconflow.cn/v1"  # API 地址，支持 OpenAI 兼容的 API
  model: "deepseek-ai/DeepSeek-V3"           # 模型名称
  api_key: ""                                # API Key（留空则周报用兜底模板）

# 输出文件
output:
  records_path: "weekly_papers.json"
  report_path: "weekly_report.md"
  csv_path: ""       # 配置后额外导出 CSV

# 本地留档（可选）
archive:
  enabled: false
  path: ""           # 留空使用 ~/.arxivweekly/data/papers.db

# 飞书推送（可选，app_id 和 receive_id 都配置才启用）
feishu:
  app_id: ""
  app_secret: ""
  receive_id: ""
  receive_id_type: "open_id"
`

			if err := os.WriteFile(configFile, []byte(exampleContent), 0644); err != nil {
				return fmt.Errorf("写入配置文件失败: %w", err)
			}
			logger.Info("已在 %s 中创建配置文件", configFile)
			fmt.Printf("已创建示例配置文件: %s\n", configFile)
			fmt.Println("请编辑配置文件，设置你的 API Key 和其他配置")
			return nil
		}
		// 其他错误（权限问题、路径问题等）
		return fmt.Errorf("检查配置文件时出错: %w", err)
	}

	logger.Warn("home 目录下已存在配置文件，请前往编辑即可")
	return nil
}
