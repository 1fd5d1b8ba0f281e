// Package diffline 计算清理前后文本的行级差异区间，
// 为预览层的红绿高亮提供现成数据，渲染方无需重新计算差异。
package diffline

import "codeclean/internal/model"

// SplitLines 把文本切分为不含终止符的逻辑行，CRLF、LF、孤立 CR 均被识别。
// 差异以行内容为准，单纯的行尾风格变化不会产生差异区间。
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	start := 0

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}

	if start < len(text) {
		lines = append(lines, text[start:])
	}

	return lines
}

// Compute 比较原始文本与清理后文本，产出按出现顺序排列的差异区间。
// 同一位置的删除区间先于新增区间输出；相邻同类区间会被合并。
func Compute(original string, cleaned string) []model.ChangedRange {
	a := SplitLines(original)
	b := SplitLines(cleaned)

	// 先掐掉公共前后缀，缩小 LCS 动态规划的规模。
	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix &&
		a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}

	builder := rangeBuilder{aLine: prefix, bLine: prefix}
	if prefix > 0 {
		builder.ranges = append(builder.ranges, model.ChangedRange{
			Kind:  model.RangeUnchanged,
			Start: 1,
			End:   prefix,
		})
	}

	for _, kind := range lcsOps(a[prefix:len(a)-suffix], b[prefix:len(b)-suffix]) {
		builder.push(kind)
	}

	for i := 0; i < suffix; i++ {
		builder.push(model.RangeUnchanged)
	}

	return builder.ranges
}

// rangeBuilder 把逐行差异操作折叠为连续区间。
type rangeBuilder struct {
	ranges []model.ChangedRange
	aLine  int
	bLine  int
}

// push 追加一个逐行操作，必要时延长末尾区间。
func (b *rangeBuilder) push(kind model.RangeKind) {
	var lineNo int
	switch kind {
	case model.RangeAdded:
		b.bLine++
		lineNo = b.bLine
	case model.RangeRemoved:
		b.aLine++
		lineNo = b.aLine
	default:
		b.aLine++
		b.bLine++
		lineNo = b.aLine
	}

	if n := len(b.ranges); n > 0 {
		last := &b.ranges[n-1]
		if last.Kind == kind && last.End == lineNo-1 {
			last.End = lineNo
			return
		}
	}

	b.ranges = append(b.ranges, model.ChangedRange{Kind: kind, Start: lineNo, End: lineNo})
}

// lcsOps 以后缀 LCS 表对中段做逐行比对，正向回放即可得到有序操作序列。
// 平局时优先消费删除，保证同一位置“先删后增”的稳定输出。
func lcsOps(a []string, b []string) []model.RangeKind {
	m, n := len(a), len(b)
	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}

	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else if table[i+1][j] >= table[i][j+1] {
				table[i][j] = table[i+1][j]
			} else {
				table[i][j] = table[i][j+1]
			}
		}
	}

	ops := make([]model.RangeKind, 0, m+n)
	i, j := 0, 0
	for i < m && j < n {
		switch {
		case a[i] == b[j]:
			ops = append(ops, model.RangeUnchanged)
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			ops = append(ops, model.RangeRemoved)
			i++
		default:
			ops = append(ops, model.RangeAdded)
			j++
		}
	}
	for ; i < m; i++ {
		ops = append(ops, model.RangeRemoved)
	}
	for ; j < n; j++ {
		ops = append(ops, model.RangeAdded)
	}

	return ops
}
