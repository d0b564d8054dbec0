package dailypage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ArxivWeekly/internal/core"
	"ArxivWeekly/pkg/logger"
)

// FetchStatus 单日页面抓取的结果状态
type FetchStatus int

const (
	// FetchOK 页面存在且抓取成功
	FetchOK FetchStatus = iota
	// FetchNoData 页面返回非 200，当天还没发布或没有存档，属于正常情况
	FetchNoData
	// FetchFailed 传输层失败（超时、连接拒绝等），与"无数据"区分开便于排查
	FetchFailed
)

// FetchResult 单日抓取的显式结果，三种状态都不向上抛错误
// Err 只在 FetchFailed 时有值
type FetchResult struct {
	Status FetchStatus
	Body   string
	Err    error
}

// Adapter 每日论文页面源，负责抓取和解析
type Adapter struct {
	config     *Config
	httpClient *http.Client
}

func NewAdapter(config *Config) (*Adapter, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Adapter{
		config:     config,
		httpClient: core.NewHTTPClient(config.Timeout, config.Proxy),
	}, nil
}

// DayURL 拼出某天页面的地址：<base>/<YYYY-MM-DD>.html
func (a *Adapter) DayURL(date string) string {
	return strings.TrimRight(a.config.BaseURL, "/") + "/" + date + ".html"
}

// FetchDay 抓取某天的页面，只请求一次，不重试
// 单日失败不影响其他日期，所以这里只记日志，把状态留给调用方分类统计
func (a *Adapter) FetchDay(ctx context.Context, date string) FetchResult {
	pageURL := a.DayURL(date)

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		logger.Warn("❌ 构建 %s 请求失败：%v", date, err)
		return FetchResult{Status: FetchFailed, Err: err}
	}
	req.Header.Set("User-Agent", a.config.UserAgent)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		logger.Warn("❌ 爬取 %s 失败：%v", date, err)
		return FetchResult{Status: FetchFailed, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("⚠️  %s 页面无法访问，状态码：%d", date, resp.StatusCode)
		return FetchResult{Status: FetchNoData}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn("❌ 读取 %s 响应失败：%v", date, err)
		return FetchResult{Status: FetchFailed, Err: err}
	}

	return FetchResult{Status: FetchOK, Body: string(body)}
}
