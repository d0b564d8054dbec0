package models

// Paper 每日页面中的一条论文记录
// 字段声明顺序即 JSON 导出的字段顺序：date, title, abstract, meta, url
type Paper struct {
	Date     string `json:"date"` // 页面日期，格式 YYYY-MM-DD
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
	Meta     string `json:"meta"` // 作者 + 分类信息的自由文本
	URL      string `json:"url"`
}
