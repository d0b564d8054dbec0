package dailypage

import (
	"github.com/PuerkitoBio/goquery"
)

// Schema 描述一个历史版本的页面结构：卡片容器和标题、摘要、元信息各自的选择器
// 页面改版过几次，旧日期的存档还停留在旧结构上，所以按版本各留一份选择器
type Schema struct {
	Name      string // 版本名，配置里可以用它强制指定
	Container string // 单篇论文的卡片容器
	Title     string // 标题元素
	TitleLink string // 标题里的链接 <a>
	Abstract  string // 摘要元素
	Meta      string // 作者 + 分类的小字元素
}

// schemas 按新到旧排列，自动探测时新版优先命中
var schemas = []Schema{
	{
		Name:      "card-grid",
		Container: "div.col-md-6.col-lg-4.mb-4",
		Title:     "h5.card-title",
		TitleLink: "h5.card-title a",
		Abstract:  "div.card-text",
		Meta:      "small",
	},
	{
		Name:      "card-list",
		Container: "div.col-md-6.mb-4",
		Title:     "h5.card-title",
		TitleLink: "h5.card-title a",
		Abstract:  "p.card-text",
		Meta:      "small.text-muted",
	},
	{
		Name:      "paper-list",
		Container: "div.paper-item",
		Title:     "h4.paper-title",
		TitleLink: "h4.paper-title a",
		Abstract:  "div.paper-abstract",
		Meta:      "small.paper-meta",
	},
}

// SchemaByName 按版本名查找页面结构
func SchemaByName(name string) (Schema, bool) {
	for _, s := range schemas {
		if s.Name == name {
			return s, true
		}
	}
	return Schema{}, false
}

// SchemaNames 返回所有已知版本名，顺序和探测顺序一致
func SchemaNames() []string {
	names := make([]string, 0, len(schemas))
	for _, s := range schemas {
		names = append(names, s.Name)
	}
	return names
}

// probeSchema 返回第一个能在文档里找到卡片容器的版本
// 都找不到说明页面结构不认识（或者根本不是论文页面），交给调用方按空结果处理
func probeSchema(doc *goquery.Document) (Schema, bool) {
	for _, s := range schemas {
		if doc.Find(s.Container).Length() > 0 {
			return s, true
		}
	}
	return Schema{}, false
}
