package languages

import "testing"

// TestRegistryClassification 验证后缀分类的大小写不敏感与未知后缀降级。
func TestRegistryClassification(t *testing.T) {
	registry := NewRegistry()

	profile, ok := registry.ProfileForFile("script.PY")
	if !ok {
		t.Fatalf("expected profile for .PY")
	}
	if profile.Name != "Python" {
		t.Fatalf("expected Python, got %s", profile.Name)
	}

	if _, ok := registry.ProfileForFile("data.zzz"); ok {
		t.Fatalf("expected unknown extension to miss")
	}
}

// TestRegistryStructuralKinds 确认 JSON/XML 走结构化重排分支。
func TestRegistryStructuralKinds(t *testing.T) {
	registry := NewRegistry()

	jsonProfile, ok := registry.ProfileForFile("config.json")
	if !ok || jsonProfile.Structural != StructuralJSON {
		t.Fatalf("expected structural json profile, got %+v", jsonProfile)
	}

	xmlProfile, ok := registry.ProfileForFile("layout.xml")
	if !ok || xmlProfile.Structural != StructuralXML {
		t.Fatalf("expected structural xml profile, got %+v", xmlProfile)
	}

	htmlProfile, ok := registry.ProfileForFile("index.html")
	if !ok || htmlProfile.Structural != StructuralNone {
		t.Fatalf("expected html to use the generic stripper, got %+v", htmlProfile)
	}
}

// TestRegistryMarkerOrdering 验证“最长优先”排序：三引号先于普通引号命中。
func TestRegistryMarkerOrdering(t *testing.T) {
	registry := NewRegistry()

	python, ok := registry.ProfileForFile("app.py")
	if !ok {
		t.Fatalf("missing python profile")
	}
	if len(python.Quotes) == 0 || len(python.Quotes[0].Open) != 3 {
		t.Fatalf("expected triple quote first, got %+v", python.Quotes)
	}

	php, ok := registry.ProfileForFile("index.php")
	if !ok {
		t.Fatalf("missing php profile")
	}
	if php.LineMarkers[0] != "//" {
		t.Fatalf("expected // before #, got %v", php.LineMarkers)
	}
}

// TestRegistryLanguages 确认注册中心覆盖原工具支持的全部后缀。
func TestRegistryLanguages(t *testing.T) {
	registry := NewRegistry()

	if count := len(registry.Languages()); count != 16 {
		t.Fatalf("unexpected language count: %d", count)
	}

	requiredExtensions := []string{
		".py", ".c", ".h", ".html", ".css", ".scss", ".less",
		".js", ".jsx", ".ts", ".tsx", ".php", ".cs", ".cpp",
		".java", ".json", ".xml", ".yaml", ".yml", ".md", ".go",
	}
	for _, extension := range requiredExtensions {
		if _, ok := registry.ProfileForFile("x" + extension); !ok {
			t.Fatalf("missing profile for extension %s", extension)
		}
	}
}

// TestMarkdownHasNoMarkers 验证 Markdown 是纯透传行。
func TestMarkdownHasNoMarkers(t *testing.T) {
	registry := NewRegistry()

	markdown, ok := registry.ProfileForFile("README.md")
	if !ok {
		t.Fatalf("missing markdown profile")
	}
	if markdown.HasMarkers() {
		t.Fatalf("markdown must not declare comment markers")
	}
}
