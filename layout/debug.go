package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteDebugJSON 将布局结果输出为 JSON，便于调试或可视化。
// 输出目录不存在时自动创建；res 为 nil 时不产生任何文件。
func WriteDebugJSON(res *Result, path string) error {
	if res == nil {
		return nil
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("layout: 创建调试目录失败: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
