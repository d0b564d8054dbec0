package archive

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"ArxivWeekly/internal/models"
	"ArxivWeekly/pkg/logger"

	_ "github.com/mattn/go-sqlite3"
)

// Archive 每次周报运行的可选留档
// 同一篇论文跨周重复出现时按 (date, url) 更新，不会越积越多
type Archive struct {
	db *sql.DB
}

func New(path string) (*Archive, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("无法创建目录，请检查权限问题: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("无法打开数据库，请检查权限问题: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("无法连接到数据库: %w", err)
	}

	a := &Archive{db: db}
	if err := a.initTable(); err != nil {
		a.Close()
		return nil, fmt.Errorf("数据库创建失败: %w", err)
	}

	return a, nil
}

func (a *Archive) Close() error { return a.db.Close() }

func (a *Archive) initTable() error {
	schema := `
CREATE TABLE IF NOT EXISTS weekly_papers (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  date TEXT NOT NULL,
  title TEXT NOT NULL,
  abstract TEXT,
  meta TEXT,
  url TEXT NOT NULL,
  created_at DATETIME DEFAULT CURRENT_TIMESTAMP,

  UNIQUE(date, url)
);

CREATE INDEX IF NOT EXISTS idx_weekly_papers_date ON weekly_papers(date);
`

	_, err := a.db.Exec(schema)
	return err
}

// Upsert 单条留档，按 (date, url) 冲突更新，返回行 id
func (a *Archive) Upsert(p *models.Paper) (int64, error) {
	query := `
	INSERT INTO weekly_papers (date, title, abstract, meta, url, created_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(date, url) DO UPDATE SET
		title = excluded.title,
		abstract = excluded.abstract,
		meta = excluded.meta
	RETURNING id
	`

	var id int64
	err := a.db.QueryRow(query, p.Date, p.Title, p.Abstract, p.Meta, p.URL).Scan(&id)
	return id, err
}

// SaveAll 留档一批记录，返回成功条数
// 单条失败只记日志继续写后面的，最后汇总成一个错误
func (a *Archive) SaveAll(papers []*models.Paper) (int, error) {
	saved := 0
	failed := 0
	for _, p := range papers {
		if _, err := a.Upsert(p); err != nil {
			failed++
			logger.Warn("留档失败 [%s] %s: %v", p.Date, p.Title, err)
			continue
		}
		saved++
	}

	if failed > 0 {
		return saved, fmt.Errorf("%d 条记录留档失败", failed)
	}
	return saved, nil
}

// GetByDate 按页面日期取留档记录，插入顺序返回
func (a *Archive) GetByDate(date string) ([]*models.Paper, error) {
	query := `
	SELECT date, title, abstract, meta, url
	FROM weekly_papers
	WHERE date = ?
	ORDER BY id
	`

	rows, err := a.db.Query(query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var papers []*models.Paper
	for rows.Next() {
		var p models.Paper
		if err := rows.Scan(&p.Date, &p.Title, &p.Abstract, &p.Meta, &p.URL); err != nil {
			return nil, err
		}
		papers = append(papers, &p)
	}

	return papers, rows.Err()
}

// CountByDate 某天留档的记录数
func (a *Archive) CountByDate(date string) (int, error) {
	var count int
	err := a.db.QueryRow("SELECT COUNT(*) FROM weekly_papers WHERE date = ?", date).Scan(&count)
	return count, err
}
