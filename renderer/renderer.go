package renderer

import "github.com/ByLCY/vellum/layout"

// Renderer 将布局结果序列化为最终文件（PDF 字节切片）。
// 渲染后端同时实现 layout.Metrics，为折行提供字体度量。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
