// Package pretty 提供 JSON 与 XML 的结构化重排能力。
// 重排是这两种格式唯一的清理方式：解析成通用树后以固定缩进重新输出，
// 解析失败返回带位置提示的 ParseError，由上层回退为纯文本处理。
package pretty

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ParseError 描述结构化解析失败的位置信息。
type ParseError struct {
	Format string
	Line   int
	Column int
	Err    error
}

// Error 输出人类可读的位置提示。
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s parse error at line %d, column %d: %v", e.Format, e.Line, e.Column, e.Err)
}

// Unwrap 暴露底层解析错误。
func (e *ParseError) Unwrap() error {
	return e.Err
}

// locate 把字节偏移换算为 1 起始的行列号。
func locate(text string, offset int64) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(text)) {
		offset = int64(len(text))
	}

	prefix := text[:offset]
	line := 1 + strings.Count(prefix, "\n")
	column := int(offset) - strings.LastIndex(prefix, "\n")
	return line, column
}

// JSON 解析文本并以 2 空格缩进重新序列化。
// 对象键按字典序输出，数字保持原始字面量精度，顶层值之后不允许出现残余数据。
func JSON(text string) (string, error) {
	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return "", jsonError(text, decoder, err)
	}
	if decoder.More() {
		line, column := locate(text, decoder.InputOffset())
		return "", &ParseError{
			Format: "json",
			Line:   line,
			Column: column,
			Err:    errors.New("trailing data after top-level value"),
		}
	}

	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}

	return buffer.String(), nil
}

// jsonError 把解码错误包装为带行列号的 ParseError。
func jsonError(text string, decoder *json.Decoder, err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, column := locate(text, syntaxErr.Offset)
		return &ParseError{Format: "json", Line: line, Column: column, Err: err}
	}

	line, column := locate(text, decoder.InputOffset())
	return &ParseError{Format: "json", Line: line, Column: column, Err: err}
}
