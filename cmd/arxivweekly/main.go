package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"ArxivWeekly/config"
	"ArxivWeekly/internal/weekly"
	"ArxivWeekly/pkg/logger"
)

var (
	configPath string
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "arxivweekly",
	Short: "arXiv 论文周报生成器",
	Long: `arxivweekly 聚合最近一周的 arXiv 每日论文页面，
按目标分类过滤后调用大模型生成周报，
并把论文数据（JSON）和周报（Markdown）写入本地文件。

直接运行等价于 arxivweekly generate。`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logFile != "" {
			logger.InitWithFile(logLevel, logFile)
		} else {
			logger.Init(logLevel, true)
		}
	},
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "抓取本周论文并生成周报",
	RunE:  runGenerate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径（默认按 ./config、当前目录、~/.arxivweekly/config 查找）")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "日志级别：DEBUG/INFO/WARN/ERROR")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "日志输出文件，留空打到终端")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	// .env 不存在就用进程环境变量，不报错
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn("收到退出信号，停止抓取")
		cancel()
	}()

	app, err := weekly.NewApp(cfg)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}

func loadConfig() (*config.AppConfig, error) {
	var paths []string
	if configPath != "" {
		paths = append(paths, configPath)
	}
	cfg, err := config.Init(paths...)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	return cfg, nil
}
