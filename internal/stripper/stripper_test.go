package stripper

import (
	"strings"
	"testing"

	"codeclean/internal/languages"
)

// profileFor 是测试辅助函数，按文件名从注册中心取语言描述。
func profileFor(t *testing.T, filename string) *languages.Profile {
	t.Helper()

	profile, ok := languages.NewRegistry().ProfileForFile(filename)
	if !ok {
		t.Fatalf("missing profile for %s", filename)
	}
	return profile
}

// TestStripCLikeLineComments 验证行注释连同行内前置空白一起删除，行终止符保留。
func TestStripCLikeLineComments(t *testing.T) {
	content := "// a\nfoo();\n\n\n\nbar(); // b\n"

	cleaned, warnings := Strip(content, profileFor(t, "x.c"))

	if cleaned != "\nfoo();\n\n\n\nbar();\n" {
		t.Fatalf("unexpected output: %q", cleaned)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

// TestStripKeepsStringContent 验证字符串里的注释标记不会被误删。
func TestStripKeepsStringContent(t *testing.T) {
	cases := []struct {
		filename string
		content  string
	}{
		{"x.go", "s := \"hello // world\"\n"},
		{"x.py", "x = \"# not a comment\"\n"},
		{"x.go", "s := `raw // text`\n"},
		{"x.js", "s = `multi\n// line`\n"},
	}

	for _, item := range cases {
		cleaned, warnings := Strip(item.content, profileFor(t, item.filename))
		if cleaned != item.content {
			t.Fatalf("string content altered: %q -> %q", item.content, cleaned)
		}
		if len(warnings) != 0 {
			t.Fatalf("unexpected warnings for %q: %v", item.content, warnings)
		}
	}
}

// TestStripNoCommentsRoundTrip 验证无注释输入原样返回。
func TestStripNoCommentsRoundTrip(t *testing.T) {
	content := "x := 1\ny := \"plain\"\n"

	cleaned, warnings := Strip(content, profileFor(t, "x.go"))

	if cleaned != content {
		t.Fatalf("round trip changed text: %q", cleaned)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

// TestStripEscapedQuote 验证转义引号不会提前结束字符串。
func TestStripEscapedQuote(t *testing.T) {
	content := "s := \"a \\\" // b\"\nx := 1 // done\n"

	cleaned, _ := Strip(content, profileFor(t, "x.go"))

	if cleaned != "s := \"a \\\" // b\"\nx := 1\n" {
		t.Fatalf("unexpected output: %q", cleaned)
	}
}

// TestStripBlockCommentKeepsNewlines 验证块注释正文被丢弃但行终止符保留。
func TestStripBlockCommentKeepsNewlines(t *testing.T) {
	content := "a /* x\ny */ b\n"

	cleaned, warnings := Strip(content, profileFor(t, "x.c"))

	if cleaned != "a \n b\n" {
		t.Fatalf("unexpected output: %q", cleaned)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

// TestStripUnterminatedBlockComment 验证未闭合块注释吞到文件尾并产生告警。
func TestStripUnterminatedBlockComment(t *testing.T) {
	content := "keep(); /* never closed\nmore"

	cleaned, warnings := Strip(content, profileFor(t, "x.c"))

	if cleaned != "keep(); \n" {
		t.Fatalf("unexpected output: %q", cleaned)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "unterminated block comment (line 1)") {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

// TestStripUnterminatedString 验证单行字符串缺少闭引号时回到 CODE 状态并告警。
func TestStripUnterminatedString(t *testing.T) {
	content := "s = \"abc\nnext = 1\n"

	cleaned, warnings := Strip(content, profileFor(t, "x.py"))

	if cleaned != content {
		t.Fatalf("unterminated string must not lose text: %q", cleaned)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "unterminated string literal") {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

// TestStripPythonTripleQuote 验证三引号字符串跨行保留，其中的 # 不算注释。
func TestStripPythonTripleQuote(t *testing.T) {
	content := "s = '''line1 # x\nline2'''\n# real\n"

	cleaned, _ := Strip(content, profileFor(t, "x.py"))

	if cleaned != "s = '''line1 # x\nline2'''\n\n" {
		t.Fatalf("unexpected output: %q", cleaned)
	}
}

// TestStripHTMLAttributeGuard 验证属性值里的 --> 不会被误认为注释闭合。
func TestStripHTMLAttributeGuard(t *testing.T) {
	content := `<p title="-->">text</p><!-- note --><b>x</b>`

	cleaned, warnings := Strip(content, profileFor(t, "x.html"))

	if cleaned != `<p title="-->">text</p><b>x</b>` {
		t.Fatalf("unexpected output: %q", cleaned)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

// TestStripHTMLTextApostrophe 验证正文里的撇号不开启字符串，其后的注释照常剥离。
func TestStripHTMLTextApostrophe(t *testing.T) {
	content := "<p>It's here</p><!-- remove me --><p>done</p>"

	cleaned, warnings := Strip(content, profileFor(t, "x.html"))

	if cleaned != "<p>It's here</p><p>done</p>" {
		t.Fatalf("unexpected output: %q", cleaned)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

// TestStripHTMLQuoteScopedToTag 验证引号只在标签内部生效：
// 属性值里的 --> 受保护，正文引号不影响注释识别。
func TestStripHTMLQuoteScopedToTag(t *testing.T) {
	content := `<p title="-->">a 'quoted' word</p><!-- x --><i>y</i>`

	cleaned, warnings := Strip(content, profileFor(t, "x.html"))

	if cleaned != `<p title="-->">a 'quoted' word</p><i>y</i>` {
		t.Fatalf("unexpected output: %q", cleaned)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

// TestStripYAMLApostropheSilent 验证普通标量里的撇号不产生未闭合字符串告警。
func TestStripYAMLApostropheSilent(t *testing.T) {
	content := "note: don't panic\n# gone\n"

	cleaned, warnings := Strip(content, profileFor(t, "x.yml"))

	if cleaned != "note: don't panic\n\n" {
		t.Fatalf("unexpected output: %q", cleaned)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

// TestStripYAMLQuotedHash 验证单引号标量里的 # 仍然受字符串保护。
func TestStripYAMLQuotedHash(t *testing.T) {
	content := "key: 'a # b'\n"

	cleaned, warnings := Strip(content, profileFor(t, "x.yaml"))

	if cleaned != content {
		t.Fatalf("unexpected output: %q", cleaned)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

// TestStripPHPTwoLineMarkers 验证同一语言多种行注释标记按最长优先匹配。
func TestStripPHPTwoLineMarkers(t *testing.T) {
	content := "$a = 1; // x\n$b = 2; # y\n"

	cleaned, _ := Strip(content, profileFor(t, "x.php"))

	if cleaned != "$a = 1;\n$b = 2;\n" {
		t.Fatalf("unexpected output: %q", cleaned)
	}
}

// TestStripNestedBlockOption 验证 Nested 标记开启时按深度匹配闭定界符。
func TestStripNestedBlockOption(t *testing.T) {
	profile := &languages.Profile{
		Name:         "nested",
		BlockMarkers: []languages.BlockMarker{{Open: "/*", Close: "*/", Nested: true}},
	}

	cleaned, warnings := Strip("/* a /* b */ c */ x", profile)

	if cleaned != " x" {
		t.Fatalf("unexpected output: %q", cleaned)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

// TestStripMarkerlessProfile 验证没有任何标记的语言原样透传。
func TestStripMarkerlessProfile(t *testing.T) {
	content := "# looks like a comment but markdown keeps it\n"

	cleaned, warnings := Strip(content, profileFor(t, "x.md"))

	if cleaned != content || len(warnings) != 0 {
		t.Fatalf("markdown must pass through unchanged: %q %v", cleaned, warnings)
	}
}
