package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ArxivWeekly/config"
	"ArxivWeekly/internal/category"
	"ArxivWeekly/pkg/logger"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Synthesizer 周报生成器：优先调用 LLM，失败时退回确定性的兜底模板
// 持有接口而不是具体客户端，测试时可以注入假后端
type Synthesizer struct {
	model    model.BaseChatModel
	language string
	now      func() time.Time
}

// New 构建周报生成器
// API Key 未配置不算错误：返回的生成器没有模型，Generate 会直接走兜底模板，
// 保证配置残缺时整条流水线照样跑完
func New(cfg config.LLMConfig, rc config.ReportConfig, now func() time.Time) (*Synthesizer, error) {
	if now == nil {
		now = time.Now
	}
	s := &Synthesizer{
		language: rc.Language,
		now:      now,
	}

	if cfg.APIKey == "" {
		logger.Warn("LLM API Key 未配置，周报将直接使用兜底模板")
		return s, nil
	}

	ctx := context.Background()
	temp := float32(0.3) // 降低随机性，保证总结准确
	maxTokens := rc.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 2000
	}

	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      cfg.APIKey,
		Model:       cfg.ModelName,
		BaseURL:     cfg.BaseURL,
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 LLM 客户端失败: %w", err)
	}

	s.model = cm
	return s, nil
}

// Generate 生成周报文本，任何失败都有内容返回，不会让整次运行挂掉
// 整周没有论文时直接出空周报，不调用 LLM
func (s *Synthesizer) Generate(ctx context.Context, idx *category.Index) string {
	date := s.now().Format("2006-01-02")

	if idx.Total() == 0 {
		logger.Warn("⚠️  未爬取到任何论文，生成空周报")
		return emptyReport(idx, date)
	}

	if s.model == nil {
		return fallbackReport(idx, date, fmt.Errorf("未配置 API Key"))
	}

	messages := []*schema.Message{
		{
			Role:    schema.System,
			Content: systemPrompt,
		},
		{
			Role:    schema.User,
			Content: buildPrompt(idx, s.language),
		},
	}

	logger.Info("📝 开始生成周报...")
	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		logger.Error("❌ 大模型生成周报失败：%v", err)
		return fallbackReport(idx, date, err)
	}

	var content string
	if resp != nil {
		content = strings.TrimSpace(resp.Content)
	}
	if content == "" {
		logger.Error("❌ 大模型返回空响应")
		return fallbackReport(idx, date, fmt.Errorf("LLM 返回空响应"))
	}

	return composeReport(content, date)
}

// composeReport 给模型输出补上带日期的大标题
// 模型自己输出了同款标题就去掉那一行，保证标题只出现一次
func composeReport(content, date string) string {
	if strings.HasPrefix(content, reportTitle) {
		if i := strings.Index(content, "\n"); i >= 0 {
			content = strings.TrimSpace(content[i+1:])
		} else {
			content = ""
		}
	}
	return fmt.Sprintf("%s (%s)\n\n%s", reportTitle, date, content)
}
