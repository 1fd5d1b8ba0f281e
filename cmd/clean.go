package cmd

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"codeclean/internal/languages"
	"codeclean/internal/model"
	"codeclean/internal/report"
	"codeclean/internal/scanner"

	"github.com/spf13/cobra"
)

// cleanOptions 存放 clean 命令的可配置参数。
type cleanOptions struct {
	comments   bool
	blankLines bool
	eol        string
	ignore     []string
	workers    int
	format     string
	output     string
	showDiff   bool
	write      bool
}

// newCleanCmd 创建 clean 子命令。
// 示例：
//
//	codeclean clean .
//	codeclean clean ./project --eol lf --diff
//	codeclean clean ./project --format json --output result.json
//	codeclean clean ./project --write
func newCleanCmd(registry *languages.Registry) *cobra.Command {
	options := cleanOptions{
		comments:   true,
		blankLines: true,
		eol:        "keep",
		workers:    runtime.NumCPU(),
		format:     "table",
		output:     "output.json",
	}

	cleanCmd := &cobra.Command{
		Use:   "clean [path]",
		Short: "清理目录或文件并输出差异摘要",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(strings.TrimSpace(options.format))
			if format != "table" && format != "json" {
				return errors.New("unsupported format, allowed values: table, json")
			}

			eolTarget, err := parseEOL(options.eol)
			if err != nil {
				return err
			}

			if options.workers <= 0 {
				return errors.New("workers must be greater than 0")
			}

			cleanOpts := model.Options{
				RemoveComments:     options.comments,
				CollapseBlankLines: options.blankLines,
				EOL:                eolTarget,
			}

			// --ignore 一旦给出即整体替换默认忽略清单。
			var patterns []string
			if len(options.ignore) > 0 {
				patterns = options.ignore
			}

			service := scanner.NewService(registry, cleanOpts, options.workers, patterns)
			result, err := service.CleanPath(args[0])
			if err != nil {
				return err
			}

			switch format {
			case "table":
				report.PrintTable(cmd.OutOrStdout(), result)
			case "json":
				if err := report.PrintJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}

				outputPath := strings.TrimSpace(options.output)
				if outputPath == "" {
					outputPath = "output.json"
				}
				if err := report.WriteJSONFile(outputPath, result); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nJSON exported to %s\n", outputPath)
			}

			if options.showDiff {
				for _, item := range result.Files {
					if !item.Changed() {
						continue
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n--- %s\n", item.Path)
					report.PrintDiff(cmd.OutOrStdout(), item)
				}
			}

			if options.write {
				saved, failures := service.Apply(result)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nsaved %d file(s)\n", saved)
				for _, failure := range failures {
					cmd.PrintErrf("save failed: %s: %s\n", failure.Path, failure.Error)
				}
				if len(failures) > 0 {
					return fmt.Errorf("failed to save %d file(s)", len(failures))
				}
			}

			return nil
		},
	}

	cleanCmd.Flags().BoolVar(&options.comments, "comments", options.comments, "剥离注释")
	cleanCmd.Flags().BoolVar(&options.blankLines, "blank-lines", options.blankLines, "合并连续空白行")
	cleanCmd.Flags().StringVar(&options.eol, "eol", options.eol, "行尾目标: lf、crlf 或 keep")
	cleanCmd.Flags().StringSliceVar(&options.ignore, "ignore", nil, "忽略模式（fnmatch 风格，可重复；给出后替换默认清单）")
	cleanCmd.Flags().IntVar(&options.workers, "workers", options.workers, "并发 worker 数量")
	cleanCmd.Flags().StringVar(&options.format, "format", options.format, "输出格式: table 或 json")
	cleanCmd.Flags().StringVar(&options.output, "output", options.output, "json 导出文件路径，默认 output.json")
	cleanCmd.Flags().BoolVar(&options.showDiff, "diff", options.showDiff, "输出逐文件红绿差异预览")
	cleanCmd.Flags().BoolVar(&options.write, "write", options.write, "把清理结果写回原文件（默认只预览）")

	return cleanCmd
}

// parseEOL 解析 --eol 取值。
func parseEOL(value string) (model.EOLTarget, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "lf":
		return model.EOLLF, nil
	case "crlf":
		return model.EOLCRLF, nil
	case "", "keep":
		return model.EOLUnchanged, nil
	default:
		return model.EOLUnchanged, errors.New("unsupported eol, allowed values: lf, crlf, keep")
	}
}
