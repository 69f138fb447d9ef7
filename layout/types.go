package layout

// 该文件定义布局结果与绘制记录，供布局计算、渲染与调试 JSON 共用。

// Result 保存分页后的页面与文档元信息。
type Result struct {
	Pages []Page       `json:"pages"`
	Meta  DocumentMeta `json:"meta"`
}

// Face 标识字体面：正文使用常规面，标题使用粗体面。
type Face int

const (
	FaceRegular Face = iota
	FaceBold
)

// String returns the face name used in debug JSON.
func (f Face) String() string {
	if f == FaceBold {
		return "bold"
	}
	return "regular"
}

// Page 记录页面尺寸与最终可以直接渲染的元素。
// 坐标单位为 pt，原点在页面左下角（y 轴向上）。
type Page struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Texts  []TextSpan `json:"texts"`
	Rules  []Rule     `json:"rules,omitempty"`
}

// TextSpan 表示一条已经定位的文本绘制记录，Y 为基线高度。
type TextSpan struct {
	Content string  `json:"content"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Size    float64 `json:"size"`
	Face    Face    `json:"face"`
	Color   Color   `json:"color"`
}

// Rule 表示一条分隔线。
type Rule struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Width float64 `json:"width"` // 线宽（pt），<=0 时由渲染器给默认值
	Color Color   `json:"color"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Subject string `json:"subject"`
	Creator string `json:"creator"`
}
