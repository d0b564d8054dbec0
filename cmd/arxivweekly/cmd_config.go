package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"ArxivWeekly/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "配置文件相关命令",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "在用户目录生成带注释的示例配置",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.CreateExampleConfig(); err != nil {
			return fmt.Errorf("生成示例配置失败: %w", err)
		}
		fmt.Printf("示例配置已生成：%s\n", config.GetConfigPath())
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "打印当前生效的配置文件路径",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.GetConfigPath())
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "打印合并环境变量后的生效配置（密钥打码）",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// 打码后再输出，避免密钥进终端记录
		masked := *cfg
		masked.LLM.APIKey = maskSecret(masked.LLM.APIKey)
		masked.Feishu.AppSecret = maskSecret(masked.Feishu.AppSecret)

		out, err := yaml.Marshal(masked)
		if err != nil {
			return fmt.Errorf("序列化配置失败: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "******"
	}
	return s[:4] + "******" + s[len(s)-4:]
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}
