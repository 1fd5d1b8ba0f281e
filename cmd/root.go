// Package cmd 提供 codeclean 的命令行入口与子命令编排。
package cmd

import (
	"codeclean/internal/languages"

	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	registry := languages.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string, registry *languages.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "codeclean",
		Short: "多语言源码清理工具",
		Long: "codeclean 基于逐字符状态机对源码做无损清理：\n" +
			"剥离注释（字符串字面量内容绝不改动）、合并多余空行、统一行尾，\n" +
			"JSON/XML 走结构化重排。默认只做预览，--write 才会写回磁盘。",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(registry))
	rootCmd.AddCommand(newCleanCmd(registry))

	return rootCmd
}
