// Package languages 定义语言语法描述与扩展名注册中心。
// 每种语言的注释/字符串规则以不可变配置数据表达，
// 新增语言只需要在注册中心添加一行描述，不需要新的代码路径。
package languages

// BlockMarker 描述一对块注释定界符。
type BlockMarker struct {
	Open  string
	Close string
	// Nested 表示该块注释是否允许嵌套。
	// 当前注册的语言均不嵌套，保留该字段以保证模型完整。
	Nested bool
}

// Quote 描述一种字符串/字符字面量的引号规则。
type Quote struct {
	Open  string
	Close string
	// Escape 表示引号内是否支持反斜杠转义。
	Escape bool
	// Multiline 表示字面量是否允许跨行。
	Multiline bool
	// Lenient 表示未闭合时不产生告警：
	// 该引号字符经常作为普通正文出现（如 YAML 标量里的撇号）。
	Lenient bool
}

// Structural 标识需要整树重排而非逐字符剥离的结构化格式。
type Structural int

const (
	// StructuralNone 表示走通用的逐字符剥离流程。
	StructuralNone Structural = iota
	// StructuralJSON 表示走 JSON 结构化重排分支。
	StructuralJSON
	// StructuralXML 表示走 XML 结构化重排分支。
	StructuralXML
)

// Profile 是单一语言的不可变语法描述。
// 注册中心在启动时统一构造并排序，之后只读。
type Profile struct {
	Name       string
	Extensions []string
	// LineMarkers 按“最长优先”排序，避免共享前缀的标记被错误切分。
	LineMarkers []string
	// BlockMarkers 按开定界符“最长优先”排序。
	BlockMarkers []BlockMarker
	// Quotes 按开引号“最长优先”排序，三引号先于普通引号命中。
	Quotes []Quote
	// TagScopedQuotes 表示引号规则仅在标签内部（< 与 > 之间）生效。
	// 标记语言的 IN_STRING 只覆盖带引号的属性值，
	// 正文里的撇号不能被当成字符串开头。
	TagScopedQuotes bool
	Structural      Structural
}

// HasMarkers 报告该语言是否存在任何注释语法。
// 没有任何标记的语言（例如 Markdown）在剥离阶段原样通过。
func (p *Profile) HasMarkers() bool {
	return len(p.LineMarkers) > 0 || len(p.BlockMarkers) > 0
}
