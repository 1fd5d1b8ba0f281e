// Package normalize 提供行尾归一化与空行合并能力。
// 两个操作都只做逐行文本变换，均满足幂等性：重复应用结果不变。
package normalize

import (
	"strings"

	"codeclean/internal/model"
)

// EOL 把文本中的行终止符统一重写为 target 约定。
// CRLF 作为一个整体识别，不会被拆成 CR、LF 二次转换；
// 同时识别 LF 与孤立的 CR。target 为空时原样返回。
func EOL(text string, target model.EOLTarget) string {
	var eol string
	switch target {
	case model.EOLLF:
		eol = "\n"
	case model.EOLCRLF:
		eol = "\r\n"
	default:
		return text
	}

	var builder strings.Builder
	builder.Grow(len(text) + len(text)/8)

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			builder.WriteString(eol)
		case '\n':
			builder.WriteString(eol)
		default:
			builder.WriteByte(text[i])
		}
	}

	return builder.String()
}
