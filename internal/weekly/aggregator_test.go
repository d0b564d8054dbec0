package weekly

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"ArxivWeekly/internal/category"
	"ArxivWeekly/internal/dailypage"
)

// dayPage 渲染一张卡片网格版式的测试页面
func dayPage(cards ...[4]string) string {
	body := ""
	for _, c := range cards {
		body += fmt.Sprintf(`
<div class="col-md-6 col-lg-4 mb-4">
  <div class="card">
    <h5 class="card-title"><a href="%s">%s</a></h5>
    <div class="card-text">%s</div>
    <small>%s</small>
  </div>
</div>`, c[1], c[0], c[2], c[3])
	}
	return `<html><body><div class="row">` + body + `</div></body></html>`
}

type dayResponse struct {
	status int
	body   string
}

// newDayServer 按 /<date>.html 路由返回预置响应，未配置的日期一律 404
func newDayServer(t *testing.T, days map[string]dayResponse) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Path
		date = date[1 : len(date)-len(".html")]
		resp, ok := days[date]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(resp.status)
		fmt.Fprint(w, resp.body)
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestAggregator(t *testing.T, baseURL string, cats []string, days int, base time.Time) *Aggregator {
	t.Helper()
	pageCfg := dailypage.DefaultConfig()
	pageCfg.BaseURL = baseURL
	pages, err := dailypage.NewAdapter(pageCfg)
	if err != nil {
		t.Fatalf("NewAdapter() error = %v", err)
	}
	agg := NewAggregator(pages, category.Set(cats), category.PolicyOther, days)
	agg.now = func() time.Time { return base }
	return agg
}

func TestAggregator_CollectWeek(t *testing.T) {
	// 2025-01-06 往前 7 天：混合成功、404、500、空结果页
	days := map[string]dayResponse{
		"2025-01-06": {http.StatusOK, dayPage(
			[4]string{"Paper A", "https://arxiv.org/abs/2501.00001", "Abstract A", "Alice, cs.AI"},
			[4]string{"Paper B", "https://arxiv.org/abs/2501.00002", "Abstract B", "Bob, cs.CV"},
		)},
		"2025-01-04": {http.StatusOK, dayPage(
			[4]string{"Paper C", "https://arxiv.org/abs/2501.00003", "Abstract C", "Carol, cs.AI"},
			[4]string{"Paper D", "https://arxiv.org/abs/2501.00004", "Abstract D", "Dave, q-bio.NC"},
		)},
		"2025-01-03": {http.StatusInternalServerError, "oops"},
		"2025-01-02": {http.StatusOK, `<html><body><p>维护中</p></body></html>`},
		"2025-01-01": {http.StatusOK, dayPage(
			[4]string{"Paper E", "https://arxiv.org/abs/2501.00005", "Abstract E", "Eve, cs.CL"},
		)},
	}
	server := newDayServer(t, days)

	base := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	agg := newTestAggregator(t, server.URL, []string{"cs.AI", "cs.CV"}, 7, base)

	papers, idx := agg.CollectWeek(context.Background())

	// 日期降序、同日按页面出现顺序；q-bio 和 cs.CL 在抽取阶段就被过滤
	wantTitles := []string{"Paper A", "Paper B", "Paper C"}
	if len(papers) != len(wantTitles) {
		t.Fatalf("CollectWeek() returned %d papers, want %d", len(papers), len(wantTitles))
	}
	for i, want := range wantTitles {
		if papers[i].Title != want {
			t.Errorf("papers[%d].Title = %q, want %q", i, papers[i].Title, want)
		}
	}
	if papers[0].Date != "2025-01-06" || papers[2].Date != "2025-01-04" {
		t.Errorf("dates = %q/%q, want 2025-01-06/2025-01-04", papers[0].Date, papers[2].Date)
	}

	if got := idx.Total(); got != 3 {
		t.Errorf("idx.Total() = %d, want 3", got)
	}
	if got := idx.Count("cs.AI"); got != 2 {
		t.Errorf(`idx.Count("cs.AI") = %d, want 2`, got)
	}
	if got := idx.Count("cs.CV"); got != 1 {
		t.Errorf(`idx.Count("cs.CV") = %d, want 1`, got)
	}
	// 抽取阶段已过滤，索引里不会出现兜底分组
	if got := idx.Count(category.Other); got != 0 {
		t.Errorf("idx.Count(Other) = %d, want 0", got)
	}
}

func TestAggregator_CollectWeek_FailureIsolation(t *testing.T) {
	// 窗口中间一天 500，其余日期照常收集
	days := map[string]dayResponse{
		"2025-01-06": {http.StatusOK, dayPage([4]string{"Paper A", "https://example.com/a", "A", "cs.AI"})},
		"2025-01-05": {http.StatusInternalServerError, "boom"},
		"2025-01-04": {http.StatusOK, dayPage([4]string{"Paper B", "https://example.com/b", "B", "cs.AI"})},
	}
	server := newDayServer(t, days)

	base := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	agg := newTestAggregator(t, server.URL, []string{"cs.AI"}, 3, base)

	papers, _ := agg.CollectWeek(context.Background())
	if len(papers) != 2 {
		t.Fatalf("CollectWeek() returned %d papers, want 2", len(papers))
	}
	if papers[0].Title != "Paper A" || papers[1].Title != "Paper B" {
		t.Errorf("titles = %q/%q, want Paper A/Paper B", papers[0].Title, papers[1].Title)
	}
}

func TestAggregator_CollectWeek_Deterministic(t *testing.T) {
	days := map[string]dayResponse{
		"2025-01-06": {http.StatusOK, dayPage(
			[4]string{"Paper A", "https://example.com/a", "A", "cs.AI"},
			[4]string{"Paper B", "https://example.com/b", "B", "cs.CV"},
		)},
		"2025-01-05": {http.StatusOK, dayPage(
			[4]string{"Paper C", "https://example.com/c", "C", "cs.AI"},
		)},
	}
	server := newDayServer(t, days)

	base := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	agg := newTestAggregator(t, server.URL, []string{"cs.AI", "cs.CV"}, 2, base)

	papers1, idx1 := agg.CollectWeek(context.Background())
	papers2, idx2 := agg.CollectWeek(context.Background())

	if !reflect.DeepEqual(papers1, papers2) {
		t.Errorf("two runs over the same pages diverged:\n%+v\n%+v", papers1, papers2)
	}
	if !reflect.DeepEqual(idx1.Order, idx2.Order) {
		t.Errorf("bucket order diverged: %v vs %v", idx1.Order, idx2.Order)
	}
	if idx1.Total() != idx2.Total() {
		t.Errorf("totals diverged: %d vs %d", idx1.Total(), idx2.Total())
	}
}

func TestAggregator_CollectWeek_EmptyWindow(t *testing.T) {
	server := newDayServer(t, nil)

	base := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	agg := newTestAggregator(t, server.URL, []string{"cs.AI"}, 7, base)

	papers, idx := agg.CollectWeek(context.Background())
	if len(papers) != 0 {
		t.Errorf("CollectWeek() returned %d papers, want 0", len(papers))
	}
	if got := idx.Total(); got != 0 {
		t.Errorf("idx.Total() = %d, want 0", got)
	}
}

func TestAggregator_CollectWeek_ContextCanceled(t *testing.T) {
	server := newDayServer(t, map[string]dayResponse{
		"2025-01-06": {http.StatusOK, dayPage([4]string{"Paper A", "https://example.com/a", "A", "cs.AI"})},
	})

	base := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	agg := newTestAggregator(t, server.URL, []string{"cs.AI"}, 3, base)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	papers, idx := agg.CollectWeek(ctx)
	if len(papers) != 0 || idx.Total() != 0 {
		t.Errorf("canceled context still collected %d papers", len(papers))
	}
}

func TestAggregator_CollectWeek_SinglePaper(t *testing.T) {
	// 单篇命中：记录进平铺列表，同时落入对应分组
	server := newDayServer(t, map[string]dayResponse{
		"2025-01-06": {http.StatusOK, dayPage(
			[4]string{"Neural Nets Revisited", "https://arxiv.org/abs/2501.01000", "We revisit neural nets.", "Jane Doe, cs.AI"},
		)},
	})

	base := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	agg := newTestAggregator(t, server.URL, []string{"cs.AI", "cs.CV"}, 1, base)

	papers, idx := agg.CollectWeek(context.Background())
	if len(papers) != 1 {
		t.Fatalf("CollectWeek() returned %d papers, want 1", len(papers))
	}
	p := papers[0]
	if p.Title != "Neural Nets Revisited" || p.Date != "2025-01-06" || p.Meta != "Jane Doe, cs.AI" {
		t.Errorf("unexpected paper: %+v", p)
	}
	if got := len(idx.Buckets["cs.AI"]); got != 1 {
		t.Errorf(`len(Buckets["cs.AI"]) = %d, want 1`, got)
	}
	if got := idx.Count("cs.CV"); got != 0 {
		t.Errorf(`idx.Count("cs.CV") = %d, want 0`, got)
	}
}

func TestNewAggregator_DefaultWindow(t *testing.T) {
	pages, err := dailypage.NewAdapter(dailypage.DefaultConfig())
	if err != nil {
		t.Fatalf("NewAdapter() error = %v", err)
	}
	agg := NewAggregator(pages, category.Set{"cs.AI"}, category.PolicyOther, 0)
	if agg.days != 7 {
		t.Errorf("days = %d, want 7", agg.days)
	}
}
