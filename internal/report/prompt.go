package report

import (
	"fmt"
	"strings"

	"ArxivWeekly/internal/category"
)

const systemPrompt = "你是专业的AI领域研究员，擅长总结arXiv论文周报"

// reportTitle 周报大标题，后面拼上生成日期
const reportTitle = "# arXiv 每周论文汇总"

// buildPrompt 组织提示词：四点固定要求 + 按分类展开的论文数据
// 分类和论文的顺序完全由 Index 决定，同一份输入必然拼出同一份提示词
func buildPrompt(idx *category.Index, language string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `请你作为AI领域研究员，用%s生成arXiv每周论文周报，要求如下：
1. 整体总结：本周AI/机器学习领域的核心研究趋势（150字左右）；
2. 分类详情：按[%s]分别总结，每类突出3-5个核心创新点；
3. 值得关注的论文：从所有论文中选3-5篇，列出标题+核心贡献（50字/篇）；
4. 语言简洁专业，符合学术周报风格，不要冗余内容。

论文数据：
`, language, strings.Join(idx.Order, ", "))

	b.WriteString(renderDataset(idx))
	return b.String()
}

// renderDataset 把分类好的论文渲染成分节文本，空分类也保留标题行
func renderDataset(idx *category.Index) string {
	var b strings.Builder
	for _, cat := range idx.Order {
		papers := idx.Buckets[cat]
		fmt.Fprintf(&b, "\n### %s（%d 篇）\n", cat, len(papers))
		for _, p := range papers {
			fmt.Fprintf(&b, "- 标题：%s\n", p.Title)
			fmt.Fprintf(&b, "  日期：%s\n", p.Date)
			if p.Meta != "" {
				fmt.Fprintf(&b, "  作者/分类：%s\n", p.Meta)
			}
			if p.URL != "" {
				fmt.Fprintf(&b, "  链接：%s\n", p.URL)
			}
			if p.Abstract != "" {
				fmt.Fprintf(&b, "  摘要：%s\n", p.Abstract)
			}
		}
	}
	return b.String()
}
