package scanner

// binarySniffLimit 是二进制嗅探读取的最大字节数。
const binarySniffLimit = 1024

// looksBinary 用启发式规则判断内容是否疑似二进制：
// 头部 1 KiB 内出现 NUL 字节，或非文本字节占比超过 30%。
// 误判时文件被跳过而不是损坏，阈值取保守值。
func looksBinary(content []byte) bool {
	chunk := content
	if len(chunk) > binarySniffLimit {
		chunk = chunk[:binarySniffLimit]
	}
	if len(chunk) == 0 {
		return false
	}

	nonText := 0
	for _, b := range chunk {
		if b == 0 {
			return true
		}
		if !isTextByte(b) {
			nonText++
		}
	}

	return float64(nonText)/float64(len(chunk)) > 0.3
}

// isTextByte 判断单字节是否属于常见文本字节。
// 多字节 UTF-8 序列的延续字节也会被计入文本，避免非 ASCII 源码被误判。
func isTextByte(b byte) bool {
	if b >= 32 && b < 127 {
		return true
	}
	if b >= 0x80 {
		return true
	}
	switch b {
	case '\n', '\r', '\t', '\f', '\b':
		return true
	}
	return false
}
