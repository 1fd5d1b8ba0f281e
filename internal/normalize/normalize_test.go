package normalize

import (
	"testing"

	"codeclean/internal/model"
)

// TestEOLMixedToLF 验证混合行尾统一为 LF，孤立 CR 同样被识别。
func TestEOLMixedToLF(t *testing.T) {
	if got := EOL("a\r\nb\nc\r", model.EOLLF); got != "a\nb\nc\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestEOLToCRLF 验证 LF 与孤立 CR 统一为 CRLF，已有 CRLF 不被二次转换。
func TestEOLToCRLF(t *testing.T) {
	if got := EOL("a\nb\r\nc\r", model.EOLCRLF); got != "a\r\nb\r\nc\r\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestEOLUnchanged 验证空目标原样返回。
func TestEOLUnchanged(t *testing.T) {
	content := "a\r\nb\n"
	if got := EOL(content, model.EOLUnchanged); got != content {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestEOLIdempotent 验证行尾归一化的幂等性。
func TestEOLIdempotent(t *testing.T) {
	inputs := []string{"a\r\nb\nc\r", "x", "", "\r\r\n\n"}
	targets := []model.EOLTarget{model.EOLLF, model.EOLCRLF}

	for _, input := range inputs {
		for _, target := range targets {
			once := EOL(input, target)
			twice := EOL(once, target)
			if once != twice {
				t.Fatalf("not idempotent for %q/%s: %q vs %q", input, target, once, twice)
			}
		}
	}
}

// TestCollapseBlankInterior 验证两行及以上的连续空白行压缩为一个空行。
func TestCollapseBlankInterior(t *testing.T) {
	if got := CollapseBlank("foo();\n\n\n\nbar();\n"); got != "foo();\n\nbar();\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestCollapseBlankSingleUntouched 验证单独的空白行原样保留（包括其中的空白字符）。
func TestCollapseBlankSingleUntouched(t *testing.T) {
	content := "a\n \t\nb\n"
	if got := CollapseBlank(content); got != content {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestCollapseBlankEdges 验证首尾的空白行序列被整体移除。
func TestCollapseBlankEdges(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"\nfoo();\n", "foo();\n"},
		{"\n\n\nfoo();\n", "foo();\n"},
		{"a\n\n\n", "a\n"},
		{"a\n  ", "a\n"},
		{"\n\n\n", ""},
		{"", ""},
	}

	for _, item := range cases {
		if got := CollapseBlank(item.input); got != item.want {
			t.Fatalf("CollapseBlank(%q) = %q, want %q", item.input, got, item.want)
		}
	}
}

// TestCollapseBlankKeepsCRLF 验证压缩后的空行沿用原有的行终止符。
func TestCollapseBlankKeepsCRLF(t *testing.T) {
	if got := CollapseBlank("a\r\n\r\n\r\nb\r\n"); got != "a\r\n\r\nb\r\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestCollapseBlankIdempotent 验证空行合并的幂等性。
func TestCollapseBlankIdempotent(t *testing.T) {
	inputs := []string{
		"foo();\n\n\n\nbar();\n",
		"\n\na\n\nb\n\n\n",
		"a\r\n\r\n\r\nb",
		"",
	}

	for _, input := range inputs {
		once := CollapseBlank(input)
		twice := CollapseBlank(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q vs %q", input, once, twice)
		}
	}
}
