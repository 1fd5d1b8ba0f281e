package normalize

import "strings"

// line 表示一条保留了原始终止符的物理行。
type line struct {
	content string
	eol     string
}

// isBlank 判断一行是否只含空白字符。
func (l line) isBlank() bool {
	return strings.TrimSpace(l.content) == ""
}

// splitLines 按终止符切分文本，终止符跟随所属行保留。
// 文本以终止符结尾时不会产生多余的空尾行。
func splitLines(text string) []line {
	var lines []line
	start := 0

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, line{content: text[start:i], eol: "\n"})
			start = i + 1
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				lines = append(lines, line{content: text[start:i], eol: "\r\n"})
				i++
			} else {
				lines = append(lines, line{content: text[start:i], eol: "\r"})
			}
			start = i + 1
		}
	}

	if start < len(text) {
		lines = append(lines, line{content: text[start:]})
	}

	return lines
}

// CollapseBlank 把两行及以上的连续空白行压缩为一个空行。
// 单独出现的空白行保持原样（包括其中的空白字符），
// 首尾的空白行序列整体移除。
func CollapseBlank(text string) string {
	lines := splitLines(text)
	kept := make([]line, 0, len(lines))

	i := 0
	for i < len(lines) {
		if !lines[i].isBlank() {
			kept = append(kept, lines[i])
			i++
			continue
		}

		j := i
		for j < len(lines) && lines[j].isBlank() {
			j++
		}

		switch {
		case i == 0 || j == len(lines):
			// 首尾空白行序列直接丢弃
		case j-i == 1:
			kept = append(kept, lines[i])
		default:
			kept = append(kept, line{eol: lines[i].eol})
		}
		i = j
	}

	var builder strings.Builder
	builder.Grow(len(text))
	for _, item := range kept {
		builder.WriteString(item.content)
		builder.WriteString(item.eol)
	}
	return builder.String()
}
