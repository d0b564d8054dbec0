package json

import (
	"encoding/json"
	"fmt"
	"os"

	"ArxivWeekly/internal/models"
)

// RecordsExporter 把一周的论文记录导出成 JSON 数组
type RecordsExporter struct{}

func NewRecordsExporter() *RecordsExporter {
	return &RecordsExporter{}
}

// Export 整体覆盖写入：裸数组、两空格缩进、不转义非 ASCII
// 没有记录时写出 []，不写 null，消费方可以无条件按数组读
func (e *RecordsExporter) Export(papers []*models.Paper, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("创建文件失败: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")  // 格式化输出
	encoder.SetEscapeHTML(false) // 不转义 HTML 字符

	if papers == nil {
		papers = []*models.Paper{}
	}

	if err := encoder.Encode(papers); err != nil {
		return fmt.Errorf("写入 JSON 失败: %w", err)
	}

	return nil
}
