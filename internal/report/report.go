// Package report 提供批量清理结果的输出能力。
// 支持表格控制台格式、JSON 格式（含文件导出）和红绿差异预览。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"codeclean/internal/model"
)

// PrintTable 使用表格展示批量清理结果。
func PrintTable(writer io.Writer, result model.BatchResult) {
	fmt.Fprintf(writer, "SCANNED PATH  %s\n\n", result.ScannedPath)

	files := table.NewWriter()
	files.SetOutputMirror(writer)
	files.SetStyle(table.StyleLight)
	files.AppendHeader(table.Row{"FILE", "LANGUAGE", "-LINES", "+LINES", "REFORMATTED", "WARNINGS"})
	for _, item := range result.Files {
		files.AppendRow(table.Row{
			item.Path,
			item.Language,
			item.LinesRemoved(),
			item.LinesAdded(),
			yesNo(item.Reformatted),
			strings.Join(item.Warnings, "; "),
		})
	}
	files.AppendFooter(table.Row{
		fmt.Sprintf("TOTAL %d", result.Total.Files),
		fmt.Sprintf("changed %d", result.Total.Changed),
		result.Total.LinesRemoved,
		result.Total.LinesAdded,
		result.Total.Reformatted,
		result.Total.Warned,
	})
	files.Render()

	if result.Total.Skipped > 0 {
		fmt.Fprintf(writer, "\nskipped %d binary-looking file(s)\n", result.Total.Skipped)
	}

	if len(result.Errors) > 0 {
		failures := table.NewWriter()
		failures.SetOutputMirror(writer)
		failures.SetStyle(table.StyleLight)
		failures.AppendHeader(table.Row{"ERROR FILE", "MESSAGE"})
		for _, item := range result.Errors {
			failures.AppendRow(table.Row{item.Path, item.Error})
		}
		fmt.Fprintln(writer)
		failures.Render()
	}
}

// yesNo 把布尔值转成表格友好的展示文本。
func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return ""
}

// PrintJSON 把批量结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, result model.BatchResult) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 结果导出到指定路径。
// 如果目录不存在会自动创建。
func WriteJSONFile(path string, result model.BatchResult) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}
