package fpdfrenderer

import (
	"bytes"
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/ByLCY/vellum/layout"
	"github.com/ByLCY/vellum/renderer"
)

const (
	fontFamily       = "Helvetica"
	defaultRuleWidth = 0.5
)

// Renderer 基于 go-pdf/fpdf 的内建 Helvetica/Helvetica-Bold 字体实现
// 度量与绘制，不依赖任何外部字体文件。内建字体使用单字节窄编码，
// 输入文本需先经 layout.Sanitize 处理。
type Renderer struct {
	// measurer 仅用于 GetStringWidth，与输出文档相互独立。
	measurer *fpdf.Fpdf
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Metrics    = (*Renderer)(nil)
)

// New 创建 fpdf 渲染后端。
func New() *Renderer {
	return &Renderer{measurer: newDoc(612, 792)}
}

func newDoc(width, height float64) *fpdf.Fpdf {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	return doc
}

func faceStyle(face layout.Face) string {
	if face == layout.FaceBold {
		return "B"
	}
	return ""
}

// TextWidth 实现 layout.Metrics，返回文本在给定字体面与字号下的宽度（pt）。
func (r *Renderer) TextWidth(face layout.Face, text string, size float64) (float64, error) {
	if size <= 0 {
		return 0, fmt.Errorf("fpdf: 非法字号 %g", size)
	}
	r.measurer.SetFont(fontFamily, faceStyle(face), size)
	if err := r.measurer.Error(); err != nil {
		return 0, fmt.Errorf("fpdf: 度量文本失败: %w", err)
	}
	return r.measurer.GetStringWidth(text), nil
}

// Render 将布局结果渲染为 PDF 字节。布局坐标原点在左下角，
// fpdf 原点在左上角，绘制时做一次 y 轴翻转。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("fpdf: 渲染结果为空")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("fpdf: 缺少可渲染的页面")
	}

	doc := newDoc(result.Pages[0].Width, result.Pages[0].Height)
	applyMeta(doc, result.Meta)
	for _, page := range result.Pages {
		doc.AddPageFormat("P", fpdf.SizeType{Wd: page.Width, Ht: page.Height})
		for _, rule := range page.Rules {
			width := rule.Width
			if width <= 0 {
				width = defaultRuleWidth
			}
			doc.SetDrawColor(rule.Color.R, rule.Color.G, rule.Color.B)
			doc.SetLineWidth(width)
			doc.Line(rule.X1, page.Height-rule.Y1, rule.X2, page.Height-rule.Y2)
		}
		for _, span := range page.Texts {
			if span.Content == "" {
				continue
			}
			doc.SetFont(fontFamily, faceStyle(span.Face), span.Size)
			doc.SetTextColor(span.Color.R, span.Color.G, span.Color.B)
			doc.Text(span.X, page.Height-span.Y, span.Content)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("fpdf: 写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(doc *fpdf.Fpdf, meta layout.DocumentMeta) {
	if meta.Title != "" {
		doc.SetTitle(meta.Title, true)
	}
	if meta.Author != "" {
		doc.SetAuthor(meta.Author, true)
	}
	if meta.Subject != "" {
		doc.SetSubject(meta.Subject, true)
	}
	creator := meta.Creator
	if creator == "" {
		creator = "Vellum"
	}
	doc.SetCreator(creator, true)
}
