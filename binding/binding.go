package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var placeholder = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将文本中的 ${path.to[0].value} 替换为 data 中对应的值。
// data 为 nil 或路径无法解析时，保留原占位符不变。
func Interpolate(text string, data any) string {
	if data == nil {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-1])
		if path == "" {
			return match
		}
		val, ok := walk(data, path)
		if !ok {
			return match
		}
		return fmt.Sprint(val)
	})
}

// walk 沿点分路径在解码后的 JSON 结构（map/slice）中下降。
// 每个路径段形如 name、name[0] 或 name[0][1]。
func walk(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name := segment
		var indexes []int
		if i := strings.IndexByte(segment, '['); i >= 0 {
			name = segment[:i]
			rest := segment[i:]
			for len(rest) > 0 && rest[0] == '[' {
				end := strings.IndexByte(rest, ']')
				if end < 0 {
					return nil, false
				}
				idx, err := strconv.Atoi(rest[1:end])
				if err != nil {
					return nil, false
				}
				indexes = append(indexes, idx)
				rest = rest[end+1:]
			}
		}
		if name != "" {
			obj, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			current, ok = obj[name]
			if !ok {
				return nil, false
			}
		}
		for _, idx := range indexes {
			arr, ok := current.([]any)
			if !ok || idx < 0 || idx >= len(arr) {
				return nil, false
			}
			current = arr[idx]
		}
	}
	return current, true
}
