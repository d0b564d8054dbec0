package category

import (
	"strings"

	"ArxivWeekly/internal/models"
)

// Other 未命中任何配置分类的记录的兜底分组名
const Other = "Other"

// Policy 未命中分类的记录如何处理
// 历史版本里两种行为都出现过，这里做成显式配置，默认归入 Other
type Policy string

const (
	PolicyOther Policy = "other"
	PolicyDrop  Policy = "drop"
)

func ParsePolicy(s string) Policy {
	if strings.EqualFold(strings.TrimSpace(s), string(PolicyDrop)) {
		return PolicyDrop
	}
	return PolicyOther
}

// Index 按分类分组的论文集合
// 不变式：每条记录只出现在一个分组里（配置顺序上第一个命中的分类，或 Other）
type Index struct {
	Order   []string // 分组顺序：配置顺序在前，Other 固定最后
	Buckets map[string][]*models.Paper

	set    Set
	policy Policy
}

// NewIndex 预创建所有配置分类的空分组，0 篇的分类在报告里也要有一行
func NewIndex(set Set, policy Policy) *Index {
	idx := &Index{
		Order:   make([]string, 0, len(set)+1),
		Buckets: make(map[string][]*models.Paper, len(set)+1),
		set:     set,
		policy:  policy,
	}
	for _, c := range set {
		idx.Order = append(idx.Order, c)
		idx.Buckets[c] = []*models.Paper{}
	}
	return idx
}

// Add 把记录放进第一个命中的分类分组
// 返回实际归入的分组名；策略为 drop 且未命中时返回 ("", false)
func (idx *Index) Add(p *models.Paper) (string, bool) {
	if p == nil {
		return "", false
	}

	if cat, ok := idx.set.Categorize(p.Meta); ok {
		idx.Buckets[cat] = append(idx.Buckets[cat], p)
		return cat, true
	}

	if idx.policy == PolicyDrop {
		return "", false
	}

	if _, ok := idx.Buckets[Other]; !ok {
		idx.Order = append(idx.Order, Other)
		idx.Buckets[Other] = []*models.Paper{}
	}
	idx.Buckets[Other] = append(idx.Buckets[Other], p)
	return Other, true
}

// Total 全部分组的论文总数
func (idx *Index) Total() int {
	n := 0
	for _, papers := range idx.Buckets {
		n += len(papers)
	}
	return n
}

// Count 指定分组的论文数
func (idx *Index) Count(cat string) int {
	return len(idx.Buckets[cat])
}
