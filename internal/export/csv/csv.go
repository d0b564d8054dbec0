package csv

import (
	"encoding/csv"
	"fmt"
	"os"

	"ArxivWeekly/internal/models"
)

// RecordsExporter 把一周的论文记录导出成 CSV，方便表格工具二次筛选
type RecordsExporter struct{}

func NewRecordsExporter() *RecordsExporter {
	return &RecordsExporter{}
}

func (e *RecordsExporter) Export(papers []*models.Paper, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("创建文件失败: %w", err)
	}
	defer file.Close()

	// BOM 让 Excel 正确识别 UTF-8
	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("写入 BOM 失败: %w", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"日期", "标题", "摘要", "作者/分类", "URL"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("写入表头失败: %w", err)
	}

	for _, p := range papers {
		record := []string{
			p.Date,
			p.Title,
			truncate(p.Abstract, 500),
			p.Meta,
			p.URL,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("写入数据失败: %w", err)
		}
	}

	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
