package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"codeclean/internal/diffline"
	"codeclean/internal/model"
)

// contextFold 控制未变化区间的折叠阈值：超过该行数的区间只展示首尾各两行。
const contextFold = 6

// PrintDiff 按结果自带的差异区间渲染单文件红绿预览。
// 渲染完全由 CleanResult 驱动，不重新计算差异。
func PrintDiff(writer io.Writer, result model.CleanResult) {
	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)

	originalLines := diffline.SplitLines(result.Original)
	cleanedLines := diffline.SplitLines(result.Cleaned)

	for _, item := range result.Changes {
		switch item.Kind {
		case model.RangeRemoved:
			for _, text := range sliceLines(originalLines, item) {
				removed.Fprintf(writer, "- %s\n", text)
			}
		case model.RangeAdded:
			for _, text := range sliceLines(cleanedLines, item) {
				added.Fprintf(writer, "+ %s\n", text)
			}
		default:
			printContext(writer, sliceLines(originalLines, item))
		}
	}
}

// sliceLines 取出区间覆盖的行，区间行号为 1 起始闭区间。
func sliceLines(lines []string, item model.ChangedRange) []string {
	start := item.Start - 1
	end := item.End
	if start < 0 || start >= len(lines) {
		return nil
	}
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start:end]
}

// printContext 输出未变化的上下文行，过长的区间折叠为首尾片段。
func printContext(writer io.Writer, lines []string) {
	if len(lines) <= contextFold {
		for _, text := range lines {
			fmt.Fprintf(writer, "  %s\n", text)
		}
		return
	}

	for _, text := range lines[:2] {
		fmt.Fprintf(writer, "  %s\n", text)
	}
	fmt.Fprintf(writer, "  ... (%d lines)\n", len(lines)-4)
	for _, text := range lines[len(lines)-2:] {
		fmt.Fprintf(writer, "  %s\n", text)
	}
}
