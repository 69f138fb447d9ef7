package layout

import "fmt"

// Metrics 负责按字体面与字号测量文本宽度（pt），由渲染后端实现。
type Metrics interface {
	TextWidth(face Face, text string, size float64) (float64, error)
}

// Config 描述页面几何与排版常量，单位均为 pt。
type Config struct {
	PageWidth    float64
	PageHeight   float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
	BodySize     float64
	Leading      float64
	TitleSize    float64
	TitleAdvance float64 // 标题基线到分隔线的距离
	RuleGap      float64 // 分隔线到第一行正文的距离
}

// DefaultConfig 返回 US Letter 页面的默认排版参数。
func DefaultConfig() Config {
	return Config{
		PageWidth:    612,
		PageHeight:   792,
		MarginLeft:   54,
		MarginRight:  54,
		MarginTop:    64,
		MarginBottom: 54,
		BodySize:     11,
		Leading:      16,
		TitleSize:    14,
		TitleAdvance: 26,
		RuleGap:      18,
	}
}

// ContentWidth 返回正文可用宽度（页面宽度减去左右边距）。
func (c Config) ContentWidth() float64 {
	return c.PageWidth - c.MarginLeft - c.MarginRight
}

// Validate 校验排版参数；分页与折行在非法参数下可能无法保证前进，必须尽早失败。
func (c Config) Validate() error {
	if c.PageWidth <= 0 || c.PageHeight <= 0 {
		return fmt.Errorf("layout: 非法页面尺寸 %gx%g", c.PageWidth, c.PageHeight)
	}
	if c.MarginLeft < 0 || c.MarginRight < 0 || c.MarginTop < 0 || c.MarginBottom < 0 {
		return fmt.Errorf("layout: 页边距不能为负")
	}
	if c.ContentWidth() <= 0 {
		return fmt.Errorf("layout: 左右边距之和超过页面宽度")
	}
	if c.PageHeight-c.MarginTop-c.MarginBottom <= 0 {
		return fmt.Errorf("layout: 上下边距之和超过页面高度")
	}
	if c.BodySize <= 0 || c.TitleSize <= 0 {
		return fmt.Errorf("layout: 字号必须大于 0")
	}
	if c.Leading <= 0 {
		return fmt.Errorf("layout: 行距必须大于 0")
	}
	return nil
}
