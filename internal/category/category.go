package category

import (
	"strings"
)

// Set 配置的目标分类标签集合，保持配置顺序
type Set []string

// Parse 解析逗号分隔的分类列表，标签两侧空白在这里统一去掉（匹配时不再处理）
func Parse(raw string) Set {
	var out Set
	for _, c := range strings.Split(raw, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Matches 判断 meta 文本是否命中任一分类标签
// 大小写敏感的子串匹配，不做分词和归一化："AI" 也会命中 "XAI" 这样的长词，
// 这是已知的精度取舍，刻意保持宽松
func (s Set) Matches(meta string) bool {
	for _, c := range s {
		if strings.Contains(meta, c) {
			return true
		}
	}
	return false
}

// Categorize 按配置顺序返回第一个命中的分类标签，未命中返回 ("", false)
func (s Set) Categorize(meta string) (string, bool) {
	for _, c := range s {
		if strings.Contains(meta, c) {
			return c, true
		}
	}
	return "", false
}
