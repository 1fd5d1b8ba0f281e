package languages

import (
	"path/filepath"
	"sort"
	"strings"
)

// LanguageDescriptor 用于对外展示语言、后缀及注释标记信息。
type LanguageDescriptor struct {
	Name       string
	Extensions []string
	Markers    []string
}

// Registry 管理语言描述注册与后缀映射。
type Registry struct {
	profiles     []*Profile
	profileByExt map[string]*Profile
}

// cLikeQuotes 是 C 家族语言共享的引号规则：双引号与单引号均支持转义、不跨行。
func cLikeQuotes() []Quote {
	return []Quote{
		{Open: `"`, Close: `"`, Escape: true},
		{Open: `'`, Close: `'`, Escape: true},
	}
}

// cLikeProfile 构造一个使用 // 与 /* */ 的 C 家族语言描述。
func cLikeProfile(name string, extensions ...string) *Profile {
	return &Profile{
		Name:         name,
		Extensions:   extensions,
		LineMarkers:  []string{"//"},
		BlockMarkers: []BlockMarker{{Open: "/*", Close: "*/"}},
		Quotes:       cLikeQuotes(),
	}
}

// jsLikeProfile 在 C 家族规则上追加反引号模板字面量（可跨行、支持转义）。
func jsLikeProfile(name string, extensions ...string) *Profile {
	profile := cLikeProfile(name, extensions...)
	profile.Quotes = append(profile.Quotes, Quote{Open: "`", Close: "`", Escape: true, Multiline: true})
	return profile
}

// NewRegistry 创建并注册所有内置语言描述。
func NewRegistry() *Registry {
	profiles := []*Profile{
		{
			Name:         "Go",
			Extensions:   []string{".go"},
			LineMarkers:  []string{"//"},
			BlockMarkers: []BlockMarker{{Open: "/*", Close: "*/"}},
			Quotes: []Quote{
				{Open: "`", Close: "`", Multiline: true},
				{Open: `"`, Close: `"`, Escape: true},
				{Open: `'`, Close: `'`, Escape: true},
			},
		},
		cLikeProfile("C/C++", ".c", ".cc", ".cpp", ".cxx", ".h", ".hh", ".hpp", ".hxx"),
		cLikeProfile("C#", ".cs"),
		cLikeProfile("Java", ".java"),
		jsLikeProfile("JavaScript", ".js", ".jsx"),
		jsLikeProfile("TypeScript", ".ts", ".tsx"),
		{
			Name:         "PHP",
			Extensions:   []string{".php"},
			LineMarkers:  []string{"//", "#"},
			BlockMarkers: []BlockMarker{{Open: "/*", Close: "*/"}},
			Quotes:       cLikeQuotes(),
		},
		{
			Name:        "Python",
			Extensions:  []string{".py"},
			LineMarkers: []string{"#"},
			Quotes: []Quote{
				{Open: `'''`, Close: `'''`, Escape: true, Multiline: true},
				{Open: `"""`, Close: `"""`, Escape: true, Multiline: true},
				{Open: `"`, Close: `"`, Escape: true},
				{Open: `'`, Close: `'`, Escape: true},
			},
		},
		{
			Name:        "Shell",
			Extensions:  []string{".sh", ".bash"},
			LineMarkers: []string{"#"},
			Quotes: []Quote{
				{Open: `"`, Close: `"`, Escape: true, Multiline: true},
				{Open: `'`, Close: `'`, Multiline: true},
			},
		},
		{
			Name:         "CSS",
			Extensions:   []string{".css"},
			BlockMarkers: []BlockMarker{{Open: "/*", Close: "*/"}},
			Quotes:       cLikeQuotes(),
		},
		{
			Name:         "SCSS/LESS",
			Extensions:   []string{".scss", ".less"},
			LineMarkers:  []string{"//"},
			BlockMarkers: []BlockMarker{{Open: "/*", Close: "*/"}},
			Quotes:       cLikeQuotes(),
		},
		{
			// HTML 只有 <!-- --> 块注释；属性值引号沿用字符串机制，
			// 避免属性里出现的 --> 被误认为注释闭合。
			// 引号只在标签内部生效，正文里的撇号是普通字符。
			Name:         "HTML",
			Extensions:   []string{".html", ".htm"},
			BlockMarkers: []BlockMarker{{Open: "<!--", Close: "-->"}},
			Quotes: []Quote{
				{Open: `"`, Close: `"`, Multiline: true},
				{Open: `'`, Close: `'`, Multiline: true},
			},
			TagScopedQuotes: true,
		},
		{
			Name:        "YAML",
			Extensions:  []string{".yaml", ".yml"},
			LineMarkers: []string{"#"},
			Quotes: []Quote{
				{Open: `"`, Close: `"`, Escape: true},
				// 普通标量里的撇号很常见，未闭合时静默回到 CODE 状态。
				{Open: `'`, Close: `'`, Lenient: true},
			},
		},
		{
			// Markdown 没有注释标记，注册仅为了让批量扫描覆盖到它：
			// 剥离阶段原样通过，空行合并与行尾归一化仍然生效。
			Name:       "Markdown",
			Extensions: []string{".md"},
		},
		{
			Name:       "JSON",
			Extensions: []string{".json"},
			Structural: StructuralJSON,
		},
		{
			Name:       "XML",
			Extensions: []string{".xml"},
			Structural: StructuralXML,
		},
	}

	registry := &Registry{
		profiles:     profiles,
		profileByExt: make(map[string]*Profile),
	}

	for _, profile := range profiles {
		sortMarkers(profile)
		for _, ext := range profile.Extensions {
			registry.profileByExt[strings.ToLower(ext)] = profile
		}
	}

	return registry
}

// sortMarkers 把各类标记按长度降序稳定排序，保证“最长优先”匹配。
func sortMarkers(profile *Profile) {
	sort.SliceStable(profile.LineMarkers, func(i int, j int) bool {
		return len(profile.LineMarkers[i]) > len(profile.LineMarkers[j])
	})
	sort.SliceStable(profile.BlockMarkers, func(i int, j int) bool {
		return len(profile.BlockMarkers[i].Open) > len(profile.BlockMarkers[j].Open)
	})
	sort.SliceStable(profile.Quotes, func(i int, j int) bool {
		return len(profile.Quotes[i].Open) > len(profile.Quotes[j].Open)
	})
}

// ProfileForFile 根据文件后缀（大小写不敏感）查找语言描述。
// 未注册的后缀返回 false，调用方应降级为原样透传。
func (r *Registry) ProfileForFile(path string) (*Profile, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	profile, ok := r.profileByExt[ext]
	return profile, ok
}

// Languages 返回已注册语言清单。
func (r *Registry) Languages() []LanguageDescriptor {
	result := make([]LanguageDescriptor, 0, len(r.profiles))
	for _, profile := range r.profiles {
		extensions := append([]string(nil), profile.Extensions...)
		sort.Strings(extensions)

		markers := make([]string, 0, len(profile.LineMarkers)+len(profile.BlockMarkers)+1)
		markers = append(markers, profile.LineMarkers...)
		for _, block := range profile.BlockMarkers {
			markers = append(markers, block.Open+" "+block.Close)
		}
		switch profile.Structural {
		case StructuralJSON:
			markers = append(markers, "(json reformat)")
		case StructuralXML:
			markers = append(markers, "(xml reformat)")
		}

		result = append(result, LanguageDescriptor{
			Name:       profile.Name,
			Extensions: extensions,
			Markers:    markers,
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}
