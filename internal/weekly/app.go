package weekly

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"ArxivWeekly/config"
	"ArxivWeekly/internal/archive"
	"ArxivWeekly/internal/dailypage"
	exporter "ArxivWeekly/internal/export"
	csv "ArxivWeekly/internal/export/csv"
	json "ArxivWeekly/internal/export/json"
	"ArxivWeekly/internal/export/markdown"
	"ArxivWeekly/internal/models"
	"ArxivWeekly/internal/report"
	"ArxivWeekly/pkg/logger"
	"ArxivWeekly/pkg/notify/feishu"
)

// App 周报流水线：窗口聚合 -> 生成周报 -> 落盘 -> 可选留档和推送
type App struct {
	cfg         *config.AppConfig
	aggregator  *Aggregator
	synthesizer *report.Synthesizer
	records     exporter.Exporter
	reportSink  exporter.ReportWriter
}

// NewApp 按配置组装全部组件，任一环节配置非法立即失败
func NewApp(cfg *config.AppConfig) (*App, error) {
	pages, err := dailypage.NewAdapter(&cfg.Page)
	if err != nil {
		return nil, fmt.Errorf("初始化页面源失败: %w", err)
	}

	synthesizer, err := report.New(cfg.LLM, cfg.Report, nil)
	if err != nil {
		return nil, fmt.Errorf("初始化周报生成器失败: %w", err)
	}

	return &App{
		cfg:         cfg,
		aggregator:  NewAggregator(pages, cfg.Report.CategorySet(), cfg.Report.UnmatchedPolicy(), cfg.Report.WindowDays),
		synthesizer: synthesizer,
		records:     json.NewRecordsExporter(),
		reportSink:  markdown.NewReportWriter(),
	}, nil
}

// Run 执行一次完整的周报生成
// 抓取缺失和大模型失败都走降级路径，只有两份产物写不出去才返回错误
func (a *App) Run(ctx context.Context) error {
	logger.Info("===== 开始生成 arXiv 每周论文周报 =====")

	papers, idx := a.aggregator.CollectWeek(ctx)

	reportText := a.synthesizer.Generate(ctx, idx)

	if err := a.records.Export(papers, a.cfg.Output.RecordsPath); err != nil {
		return fmt.Errorf("保存论文数据失败: %w", err)
	}
	if err := a.reportSink.Write(reportText, a.cfg.Output.ReportPath); err != nil {
		return fmt.Errorf("保存周报失败: %w", err)
	}
	logger.Info("✅ 文件保存成功：%s（%d 条数据）、%s", a.cfg.Output.RecordsPath, len(papers), a.cfg.Output.ReportPath)

	if a.cfg.Output.CSVPath != "" {
		if err := csv.NewRecordsExporter().Export(papers, a.cfg.Output.CSVPath); err != nil {
			logger.Warn("CSV 导出失败: %v", err)
		} else {
			logger.Info("✅ CSV 导出成功：%s", a.cfg.Output.CSVPath)
		}
	}

	a.archivePapers(papers)
	a.pushReport(ctx, reportText)

	logger.Info("===== 周报生成流程结束 =====")
	return nil
}

// archivePapers 可选的 SQLite 留档，失败只告警不影响产物
func (a *App) archivePapers(papers []*models.Paper) {
	if !a.cfg.Archive.Enabled {
		return
	}

	path := a.cfg.Archive.Path
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			logger.Warn("获取用户目录失败，跳过留档: %v", err)
			return
		}
		path = filepath.Join(homeDir, ".arxivweekly", "data", "papers.db")
	}

	store, err := archive.New(path)
	if err != nil {
		logger.Warn("打开留档数据库失败: %v", err)
		return
	}
	defer store.Close()

	saved, err := store.SaveAll(papers)
	if err != nil {
		logger.Warn("留档不完整: %v", err)
	}
	logger.Info("已留档 %d 条记录 -> %s", saved, path)
}

// pushReport 可选的飞书推送，失败只告警不影响产物
func (a *App) pushReport(ctx context.Context, reportText string) {
	if !a.cfg.Feishu.Enabled() {
		return
	}

	client := feishu.NewClient(a.cfg.Feishu.AppID, a.cfg.Feishu.AppSecret,
		a.cfg.Feishu.ReceiveID, a.cfg.Feishu.ReceiveIDType)
	if err := client.SendReport(ctx, reportText); err != nil {
		logger.Warn("飞书推送失败: %v", err)
		return
	}
	logger.Info("✅ 周报已推送到飞书")
}
