// Package stripper 实现基于语言 Profile 的单遍注释剥离扫描器。
// 扫描器逐字节从左到右走一遍输入，在 CODE、字符串、行注释、块注释
// 四种状态之间切换，字符串/字符字面量内容保持逐字节不变。
package stripper

import (
	"fmt"
	"strings"

	"codeclean/internal/languages"
)

// Strip 删除 profile 描述的注释并返回清理后的文本。
//
// 匹配优先级：引号先于注释标记，同类标记按注册时排好的“最长优先”命中。
// TagScopedQuotes 的语言只在 < 与 > 之间识别引号（属性值），
// 正文里的引号字符按普通字节处理。
// 行注释连同其前方的行内空白一起删除，行终止符保留，
// 让空行合并阶段看到一个真实的空行。
// 块注释的定界符与正文被删除，正文里的行终止符保留，保证行号稳定。
// 未闭合的块注释或字符串不报错，扫描进行到输入结束为止，
// 以告警形式返回给调用方。
func Strip(text string, profile *languages.Profile) (string, []string) {
	if profile == nil || !profile.HasMarkers() {
		return text, nil
	}

	out := make([]byte, 0, len(text))
	var warnings []string
	i := 0
	inTag := false

	for i < len(text) {
		if !profile.TagScopedQuotes || inTag {
			if quote := matchQuote(text, i, profile.Quotes); quote != nil {
				var closed bool
				out, i, closed = copyString(out, text, i, quote)
				if !closed && !quote.Lenient {
					warnings = append(warnings, fmt.Sprintf("unterminated string literal (line %d)", lineAt(text, i)))
				}
				continue
			}
		}

		if block := matchBlock(text, i, profile.BlockMarkers); block != nil {
			start := i
			var closed bool
			out, i, closed = skipBlock(out, text, i, block)
			if !closed {
				warnings = append(warnings, fmt.Sprintf("unterminated block comment (line %d)", lineAt(text, start)))
			}
			continue
		}

		if marker := matchLine(text, i, profile.LineMarkers); marker != "" {
			out = trimTrailingSpace(out)
			i += len(marker)
			for i < len(text) && text[i] != '\n' && text[i] != '\r' {
				i++
			}
			continue
		}

		// 标签边界判定在块注释匹配之后，<!-- 的 < 不会误开一个标签。
		if profile.TagScopedQuotes {
			switch text[i] {
			case '<':
				inTag = true
			case '>':
				inTag = false
			}
		}

		out = append(out, text[i])
		i++
	}

	return string(out), warnings
}

// matchQuote 在当前位置尝试命中一个开引号。
func matchQuote(text string, i int, quotes []languages.Quote) *languages.Quote {
	for idx := range quotes {
		if strings.HasPrefix(text[i:], quotes[idx].Open) {
			return &quotes[idx]
		}
	}
	return nil
}

// matchBlock 在当前位置尝试命中一个块注释开定界符。
func matchBlock(text string, i int, blocks []languages.BlockMarker) *languages.BlockMarker {
	for idx := range blocks {
		if strings.HasPrefix(text[i:], blocks[idx].Open) {
			return &blocks[idx]
		}
	}
	return nil
}

// matchLine 在当前位置尝试命中一个行注释标记。
func matchLine(text string, i int, markers []string) string {
	for _, marker := range markers {
		if strings.HasPrefix(text[i:], marker) {
			return marker
		}
	}
	return ""
}

// copyString 原样复制一个字符串字面量（含前后引号）。
// 支持转义的引号把反斜杠与其后一个字节作为整体消费，
// 不跨行的引号遇到行终止符即返回 CODE 状态（终止符交还主循环）。
func copyString(out []byte, text string, i int, quote *languages.Quote) ([]byte, int, bool) {
	out = append(out, quote.Open...)
	i += len(quote.Open)

	for i < len(text) {
		if quote.Escape && text[i] == '\\' && i+1 < len(text) {
			out = append(out, text[i], text[i+1])
			i += 2
			continue
		}
		if strings.HasPrefix(text[i:], quote.Close) {
			out = append(out, quote.Close...)
			return out, i + len(quote.Close), true
		}
		if !quote.Multiline && (text[i] == '\n' || text[i] == '\r') {
			return out, i, false
		}
		out = append(out, text[i])
		i++
	}

	return out, i, false
}

// skipBlock 丢弃一个块注释的定界符与正文，保留正文中的行终止符。
// Nested 为真时按深度计数匹配闭定界符。
func skipBlock(out []byte, text string, i int, block *languages.BlockMarker) ([]byte, int, bool) {
	i += len(block.Open)
	depth := 1

	for i < len(text) {
		if block.Nested && strings.HasPrefix(text[i:], block.Open) {
			depth++
			i += len(block.Open)
			continue
		}
		if strings.HasPrefix(text[i:], block.Close) {
			depth--
			i += len(block.Close)
			if depth == 0 {
				return out, i, true
			}
			continue
		}
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				out = append(out, '\r', '\n')
				i += 2
				continue
			}
			out = append(out, '\r')
			i++
		case '\n':
			out = append(out, '\n')
			i++
		default:
			i++
		}
	}

	return out, i, false
}

// trimTrailingSpace 去掉输出末尾的行内空白，用于行注释前的空白清理。
// 只回退空格与制表符，绝不越过行终止符。
func trimTrailingSpace(out []byte) []byte {
	for len(out) > 0 {
		last := out[len(out)-1]
		if last != ' ' && last != '\t' {
			break
		}
		out = out[:len(out)-1]
	}
	return out
}

// lineAt 返回字节偏移 offset 所在的 1 起始行号，仅用于告警信息。
func lineAt(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	return 1 + strings.Count(text[:offset], "\n")
}
