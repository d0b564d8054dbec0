package markdown

import (
	"fmt"
	"os"
	"strings"
)

// ReportWriter 把周报文本写成 Markdown 文件
type ReportWriter struct{}

func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Write 整体覆盖写入，保证文件以换行结尾
func (w *ReportWriter) Write(report string, outputPath string) error {
	if !strings.HasSuffix(report, "\n") {
		report += "\n"
	}

	if err := os.WriteFile(outputPath, []byte(report), 0644); err != nil {
		return fmt.Errorf("写入周报失败: %w", err)
	}

	return nil
}
