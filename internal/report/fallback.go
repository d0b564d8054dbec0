package report

import (
	"fmt"
	"strings"

	"ArxivWeekly/internal/category"
)

// fallbackReport LLM 调用失败后的兜底周报
// 只依赖 Index 里的分类计数，同一份 Index 必然渲染出同一份文本
func fallbackReport(idx *category.Index, date string, reason error) string {
	details := make([]string, 0, len(idx.Order))
	for _, cat := range idx.Order {
		details = append(details, fmt.Sprintf("### %s\n- 本周共%d篇相关论文", cat, idx.Count(cat)))
	}

	return fmt.Sprintf(`%s (%s)

## 整体总结
本周未成功生成AI领域研究趋势总结（原因：%v）。

## 分类详情
%s

## 值得关注的论文
暂无（生成失败）
`, reportTitle, date, reason, strings.Join(details, "\n"))
}

// emptyReport 整周一篇论文都没拿到时的空周报，附排查清单
// 分类行来自配置的分类集合，不写死
func emptyReport(idx *category.Index, date string) string {
	lines := make([]string, 0, len(idx.Order))
	for _, cat := range idx.Order {
		lines = append(lines, fmt.Sprintf("- %s：0篇", cat))
	}

	return fmt.Sprintf(`%s (%s)

## 整体总结
本周未爬取到 %s 分类的相关论文，请检查：
1. 每日论文页面是否正常访问；
2. 目标分类是否正确；
3. 网络是否能访问arXiv相关页面。

## 分类详情
%s

## 值得关注的论文
暂无
`, reportTitle, date, strings.Join(idx.Order, "/"), strings.Join(lines, "\n"))
}
