package dailypage

import (
	"regexp"
	"strings"

	"ArxivWeekly/internal/category"
	"ArxivWeekly/internal/models"
	"ArxivWeekly/pkg/logger"

	"github.com/PuerkitoBio/goquery"
)

// ParsePapers 自动探测页面结构版本并解析出论文记录，只保留命中目标分类的条目
// 整页解析失败和结构不认识都退化成空结果，不向上抛错
func ParsePapers(body, date string, cats category.Set) []*models.Paper {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		logger.Warn("⚠️  解析 %s 页面失败：%v", date, err)
		return nil
	}

	schema, ok := probeSchema(doc)
	if !ok {
		logger.Warn("⚠️  %s 页面结构不在已知版本里（%s），按无数据处理", date, strings.Join(SchemaNames(), "/"))
		return nil
	}

	return extractPapers(doc, schema, date, cats)
}

// ParsePapersWithSchema 用指定的结构版本解析，跳过自动探测
func ParsePapersWithSchema(body, date string, cats category.Set, schema Schema) []*models.Paper {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		logger.Warn("⚠️  解析 %s 页面失败：%v", date, err)
		return nil
	}

	return extractPapers(doc, schema, date, cats)
}

// Extract 按配置解析某天的页面正文：配置了 schema 就用指定版本，否则自动探测
func (a *Adapter) Extract(body, date string, cats category.Set) []*models.Paper {
	if a.config.Schema != "" {
		if schema, ok := SchemaByName(a.config.Schema); ok {
			return ParsePapersWithSchema(body, date, cats, schema)
		}
	}
	return ParsePapers(body, date, cats)
}

func extractPapers(doc *goquery.Document, schema Schema, date string, cats category.Set) []*models.Paper {
	var papers []*models.Paper
	doc.Find(schema.Container).Each(func(i int, s *goquery.Selection) {
		paper := parsePaperCard(s, schema, date)
		if paper == nil {
			return
		}
		// 分类匹配看 meta 的原始文本，未命中的直接丢掉
		if !cats.Matches(paper.Meta) {
			return
		}
		papers = append(papers, paper)
	})
	return papers
}

// parsePaperCard 解析单张论文卡片
// 没有标题的卡片算残缺，整条跳过；摘要和元信息缺了只留空串，不影响别的字段
func parsePaperCard(s *goquery.Selection, schema Schema, date string) *models.Paper {
	paper := &models.Paper{
		Date: date,
	}

	title := s.Find(schema.Title).First()
	if title.Length() == 0 {
		return nil
	}
	paper.Title = cleanText(title.Text())
	if paper.Title == "" {
		return nil
	}

	if link := s.Find(schema.TitleLink).First(); link.Length() > 0 {
		// 链接保持页面原样，相对路径不做补全
		paper.URL, _ = link.Attr("href")
	}

	if abstract := s.Find(schema.Abstract).First(); abstract.Length() > 0 {
		paper.Abstract = cleanText(abstract.Text())
	}

	if meta := s.Find(schema.Meta).First(); meta.Length() > 0 {
		paper.Meta = cleanText(meta.Text())
	}

	return paper
}

func cleanText(text string) string {
	text = regexp.MustCompile(`\s+`).ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
