package weekly

import (
	"context"
	"time"

	"ArxivWeekly/internal/category"
	"ArxivWeekly/internal/dailypage"
	"ArxivWeekly/internal/models"
	"ArxivWeekly/pkg/logger"
)

// Aggregator 驱动窗口期内逐日的抓取、解析和分类
type Aggregator struct {
	pages  *dailypage.Adapter
	cats   category.Set
	policy category.Policy
	days   int
	now    func() time.Time
}

func NewAggregator(pages *dailypage.Adapter, cats category.Set, policy category.Policy, days int) *Aggregator {
	if days <= 0 {
		days = 7
	}
	return &Aggregator{
		pages:  pages,
		cats:   cats,
		policy: policy,
		days:   days,
		now:    time.Now,
	}
}

// CollectWeek 从今天开始往前逐日收集，返回平铺记录列表和分类索引
// 日期窗口以进入函数那一刻为基准；单日失败只计数，不中断后面的日期
func (a *Aggregator) CollectWeek(ctx context.Context) ([]*models.Paper, *category.Index) {
	var all []*models.Paper
	idx := category.NewIndex(a.cats, a.policy)

	base := a.now()
	okDays, emptyDays, failedDays := 0, 0, 0

	for i := 0; i < a.days; i++ {
		date := base.AddDate(0, 0, -i).Format("2006-01-02")

		result := a.pages.FetchDay(ctx, date)
		switch result.Status {
		case dailypage.FetchNoData:
			emptyDays++
			continue
		case dailypage.FetchFailed:
			failedDays++
			continue
		}

		papers := a.pages.Extract(result.Body, date, a.cats)
		logger.Info("✅ %s 爬取到 %d 篇目标论文", date, len(papers))
		okDays++

		for _, p := range papers {
			all = append(all, p)
			idx.Add(p)
		}
	}

	logger.Info("📊 本周共爬取到 %d 篇目标论文（成功 %d 天，无数据 %d 天，失败 %d 天）",
		len(all), okDays, emptyDays, failedDays)

	return all, idx
}
