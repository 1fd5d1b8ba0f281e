package pretty

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// XML 以流式 token 解析文本并以 2 空格缩进重新输出。
// <!-- --> 注释在这一遍解析中被剥离（而不是交给通用剥离器，
// 注释删除必须尊重标签/属性结构）；XML 声明与元素间的纯空白文本同样丢弃，
// 混合内容的文本节点去除首尾空白后输出，
// DOCTYPE 指令与 xml 声明之外的处理指令原样保留。
func XML(text string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(text))

	var buffer bytes.Buffer
	encoder := xml.NewEncoder(&buffer)
	encoder.Indent("", "  ")

	sawElement := false
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", xmlError(text, decoder, err)
		}

		switch typed := token.(type) {
		case xml.Comment:
			continue
		case xml.ProcInst:
			// 只丢弃 <?xml ...?> 声明，其他处理指令（如 xml-stylesheet）保留。
			if typed.Target == "xml" {
				continue
			}
			if err := encoder.EncodeToken(xml.CopyToken(typed)); err != nil {
				return "", xmlError(text, decoder, err)
			}
		case xml.CharData:
			trimmed := strings.TrimSpace(string(typed))
			if trimmed == "" {
				continue
			}
			if err := encoder.EncodeToken(xml.CharData(trimmed)); err != nil {
				return "", xmlError(text, decoder, err)
			}
		case xml.StartElement:
			sawElement = true
			if err := encoder.EncodeToken(xml.CopyToken(typed)); err != nil {
				return "", xmlError(text, decoder, err)
			}
		default:
			if err := encoder.EncodeToken(xml.CopyToken(token)); err != nil {
				return "", xmlError(text, decoder, err)
			}
		}
	}

	if err := encoder.Flush(); err != nil {
		return "", xmlError(text, decoder, err)
	}
	if !sawElement {
		return "", &ParseError{
			Format: "xml",
			Line:   1,
			Column: 1,
			Err:    errors.New("no root element"),
		}
	}

	output := buffer.String()
	if !strings.HasSuffix(output, "\n") {
		output += "\n"
	}
	return output, nil
}

// xmlError 把解析/编码错误包装为带行列号的 ParseError。
func xmlError(text string, decoder *xml.Decoder, err error) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ParseError{Format: "xml", Line: syntaxErr.Line, Column: 1, Err: err}
	}

	line, column := locate(text, decoder.InputOffset())
	return &ParseError{Format: "xml", Line: line, Column: column, Err: err}
}
