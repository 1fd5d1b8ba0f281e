// Package model 定义 codeclean 的核心数据模型。
// 这些结构会被清理管线、批量扫描器、输出层和命令层共同使用。
package model

// EOLTarget 表示行终止符的目标约定。
type EOLTarget string

const (
	// EOLUnchanged 表示保持原有行终止符不变。
	EOLUnchanged EOLTarget = ""
	// EOLLF 表示统一转换为 \n。
	EOLLF EOLTarget = "lf"
	// EOLCRLF 表示统一转换为 \r\n。
	EOLCRLF EOLTarget = "crlf"
)

// Options 存放单文件清理的开关配置。
type Options struct {
	// RemoveComments 控制是否剥离注释（JSON/XML 走结构化重排，不受此开关影响）。
	RemoveComments bool
	// CollapseBlankLines 控制是否把连续空白行压缩为单个空行。
	CollapseBlankLines bool
	// EOL 为空时保持原有行终止符。
	EOL EOLTarget
}

// RangeKind 标识一段行区间在清理前后文本之间的变化类型。
type RangeKind string

const (
	// RangeUnchanged 表示区间在两份文本中内容一致。
	RangeUnchanged RangeKind = "unchanged"
	// RangeRemoved 表示区间只存在于原始文本。
	RangeRemoved RangeKind = "removed"
	// RangeAdded 表示区间只存在于清理后文本。
	RangeAdded RangeKind = "added"
)

// ChangedRange 表示一段连续的行区间。
//
// Start/End 为 1 起始的闭区间行号：
// removed 与 unchanged 区间以原始文本行号计，added 区间以清理后文本行号计。
// 区间按出现顺序排列，预览层无需重新计算差异即可渲染红绿高亮。
type ChangedRange struct {
	Kind  RangeKind `json:"kind"`
	Start int       `json:"start"`
	End   int       `json:"end"`
}

// Lines 返回区间覆盖的行数。
func (r ChangedRange) Lines() int {
	return r.End - r.Start + 1
}

// CleanResult 表示单文件清理结果。
// 结果一旦产出即视为只读，由调用方（预览/持久化层）自行持有。
type CleanResult struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	// AbsolutePath 供写回层使用，不参与 JSON 导出。
	AbsolutePath string `json:"-"`
	// Original/Cleaned 保留完整文本供预览与写回，JSON 导出只携带差异摘要。
	Original    string         `json:"-"`
	Cleaned     string         `json:"-"`
	Changes     []ChangedRange `json:"changes"`
	Reformatted bool           `json:"reformatted"`
	Warnings    []string       `json:"warnings,omitempty"`
}

// Changed 报告清理是否产生了实际文本变化。
func (r *CleanResult) Changed() bool {
	return r.Original != r.Cleaned
}

// LinesRemoved 返回被删除的行数合计。
func (r *CleanResult) LinesRemoved() int {
	total := 0
	for _, item := range r.Changes {
		if item.Kind == RangeRemoved {
			total += item.Lines()
		}
	}
	return total
}

// LinesAdded 返回新增的行数合计。
func (r *CleanResult) LinesAdded() int {
	total := 0
	for _, item := range r.Changes {
		if item.Kind == RangeAdded {
			total += item.Lines()
		}
	}
	return total
}

// FileError 记录单文件处理失败信息。
// 设计为“错误不阻断全量清理”，便于大目录批量处理时容错。
type FileError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// BatchTotal 表示批量清理的总计信息。
type BatchTotal struct {
	Files        int64 `json:"files"`
	Changed      int64 `json:"changed"`
	Reformatted  int64 `json:"reformatted"`
	Warned       int64 `json:"warned"`
	Skipped      int64 `json:"skipped"`
	LinesRemoved int64 `json:"lines_removed"`
	LinesAdded   int64 `json:"lines_added"`
}

// AddResult 累加一个文件的清理结果到总计中。
func (t *BatchTotal) AddResult(result CleanResult) {
	t.Files++
	if result.Changed() {
		t.Changed++
	}
	if result.Reformatted {
		t.Reformatted++
	}
	if len(result.Warnings) > 0 {
		t.Warned++
	}
	t.LinesRemoved += int64(result.LinesRemoved())
	t.LinesAdded += int64(result.LinesAdded())
}

// BatchResult 是一次批量清理的完整输出模型。
// 包含文件级明细、全局总计和错误列表。
type BatchResult struct {
	ScannedPath string        `json:"scanned_path"`
	Files       []CleanResult `json:"files"`
	Errors      []FileError   `json:"errors"`
	Total       BatchTotal    `json:"total"`
}
