package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/vellum/fonts"
	"github.com/ByLCY/vellum/layout"
	"github.com/ByLCY/vellum/renderer"
)

const defaultRuleWidthPt = 0.5

// Renderer draws layout results via github.com/tdewolff/canvas.
// 与 fpdf 后端不同，本后端加载真实 TTF 字体，可渲染任意字形；
// 字体文件通过 Options 指定路径，缺省时在系统字体目录中查找。
type Renderer struct {
	opts Options

	fontMu sync.Mutex
	family *canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Metrics    = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	RegularPath string // 常规字体 TTF 路径，空则查找系统字体
	BoldPath    string // 粗体字体 TTF 路径，空则查找系统字体
}

// NewRenderer creates a canvas-based renderer.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// ensureFamily 按需加载常规与粗体两个字体面并缓存。
// 找不到粗体时退回常规字形，保证标题仍可渲染。
func (r *Renderer) ensureFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if r.family != nil {
		return r.family, nil
	}

	regular, err := fonts.Load(r.opts.RegularPath, fonts.Regular)
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily("vellum")
	if err := family.LoadFont(regular, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载常规字体失败: %w", err)
	}

	bold, err := fonts.Load(r.opts.BoldPath, fonts.Bold)
	if err != nil {
		bold = regular
	}
	if err := family.LoadFont(bold, 0, canvas.FontBold); err != nil {
		return nil, fmt.Errorf("加载粗体字体失败: %w", err)
	}

	r.family = family
	return family, nil
}

func (r *Renderer) face(face layout.Face, size float64, col layout.Color) (*canvas.FontFace, error) {
	family, err := r.ensureFamily()
	if err != nil {
		return nil, err
	}
	style := canvas.FontRegular
	if face == layout.FaceBold {
		style = canvas.FontBold
	}
	return family.Face(size, colorFromLayout(col), style, canvas.FontNormal), nil
}

// TextWidth 实现 layout.Metrics。字号入参为 pt；canvas 的 TextWidth
// 返回 mm，在边界换算回 pt。
func (r *Renderer) TextWidth(face layout.Face, text string, size float64) (float64, error) {
	if size <= 0 {
		return 0, fmt.Errorf("非法字号 %g", size)
	}
	ff, err := r.face(face, size, layout.Color{R: 30, G: 30, B: 30})
	if err != nil {
		return 0, err
	}
	return ff.TextWidth(text) * layout.MmToPt, nil
}

// Render renders the result into a PDF byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, toMm(result.Pages[0].Width), toMm(result.Pages[0].Height), nil)
	applyMeta(writer, result.Meta)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(toMm(page.Width), toMm(page.Height))
		}
		c := canvas.New(toMm(page.Width), toMm(page.Height))
		ctx := canvas.NewContext(c)
		// 布局坐标原点即为左下角，与 canvas 默认坐标系一致，无需切换。

		if err := r.drawPage(ctx, page); err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	if writer == nil {
		return
	}
	writer.SetInfo(meta.Title, meta.Subject, "", meta.Author, meta.Creator)
}

func (r *Renderer) drawPage(ctx *canvas.Context, page layout.Page) error {
	// 先画分隔线（作为背景），再画文本。
	for _, rule := range page.Rules {
		width := rule.Width
		if width <= 0 {
			width = defaultRuleWidthPt
		}
		ctx.SetStrokeColor(colorFromLayout(rule.Color))
		ctx.SetStrokeWidth(toMm(width))
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(toMm(rule.X2-rule.X1), toMm(rule.Y2-rule.Y1))
		ctx.DrawPath(toMm(rule.X1), toMm(rule.Y1), p)
	}

	for _, span := range page.Texts {
		if span.Content == "" {
			continue
		}
		ff, err := r.face(span.Face, span.Size, span.Color)
		if err != nil {
			return err
		}
		textLine := canvas.NewTextLine(ff, span.Content, canvas.Left)
		// span.Y 即基线高度（pt），换算为 mm 后直接绘制。
		ctx.DrawText(toMm(span.X), toMm(span.Y), textLine)
	}
	return nil
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

// toMm 将点(pt)转换为毫米(mm)。
func toMm(pt float64) float64 { return pt * layout.PtToMm }
