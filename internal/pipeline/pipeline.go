// Package pipeline 按选项编排单文件清理流程。
// 流程为：语言分类 → JSON/XML 结构化重排（或通用注释剥离 + 空行合并）
// → 行尾归一化 → 行级差异计算。
package pipeline

import (
	"codeclean/internal/diffline"
	"codeclean/internal/languages"
	"codeclean/internal/model"
	"codeclean/internal/normalize"
	"codeclean/internal/pretty"
	"codeclean/internal/stripper"
)

// Processor 是无状态的单文件清理器。
// 每次 Process 调用只依赖入参，可以被任意多个 worker 并发使用。
type Processor struct {
	registry *languages.Registry
}

// NewProcessor 创建清理器。
func NewProcessor(registry *languages.Registry) *Processor {
	return &Processor{registry: registry}
}

// Process 对一份已解码文本执行清理并返回只读结果。
//
// JSON/XML 始终走结构化重排（这是这两种格式唯一的清理方式），
// 不经过注释剥离与空行合并；解析失败回退为原文并记录告警，绝不中断批量任务。
// 未注册的语言跳过注释剥离，空行合并与行尾归一化仍然生效。
func (p *Processor) Process(path string, raw string, opts model.Options) model.CleanResult {
	result := model.CleanResult{
		Path:     path,
		Language: "unknown",
		Original: raw,
	}

	profile, known := p.registry.ProfileForFile(path)
	if known {
		result.Language = profile.Name
	}

	cleaned := raw
	structural := languages.StructuralNone
	if known {
		structural = profile.Structural
	}

	switch structural {
	case languages.StructuralJSON:
		formatted, err := pretty.JSON(cleaned)
		if err != nil {
			result.Warnings = append(result.Warnings, err.Error())
		} else {
			cleaned = formatted
			result.Reformatted = true
		}
	case languages.StructuralXML:
		formatted, err := pretty.XML(cleaned)
		if err != nil {
			result.Warnings = append(result.Warnings, err.Error())
		} else {
			cleaned = formatted
			result.Reformatted = true
		}
	default:
		if opts.RemoveComments && known {
			stripped, warnings := stripper.Strip(cleaned, profile)
			cleaned = stripped
			result.Warnings = append(result.Warnings, warnings...)
		}
		if opts.CollapseBlankLines {
			cleaned = normalize.CollapseBlank(cleaned)
		}
	}

	cleaned = normalize.EOL(cleaned, opts.EOL)

	result.Cleaned = cleaned
	result.Changes = diffline.Compute(raw, cleaned)
	return result
}
