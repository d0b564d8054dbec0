package export

import (
	"ArxivWeekly/internal/models"
)

// Exporter 论文记录导出器接口
type Exporter interface {
	// Export 导出论文记录到指定文件
	Export(papers []*models.Paper, outputPath string) error
}

// ReportWriter 周报文本落盘接口
type ReportWriter interface {
	// Write 把周报写到指定文件，整体覆盖
	Write(report string, outputPath string) error
}
