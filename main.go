package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/vellum/binding"
	"github.com/ByLCY/vellum/docspec"
	"github.com/ByLCY/vellum/layout"
	"github.com/ByLCY/vellum/renderer"
	canvasrenderer "github.com/ByLCY/vellum/renderer/canvas"
	fpdfrenderer "github.com/ByLCY/vellum/renderer/fpdf"
)

func main() {
	input := flag.String("in", "", "输入文本文件路径")
	output := flag.String("out", "", "PDF 输出路径（默认按 @doc filename 或输入文件名推导）")
	title := flag.String("title", "", "文档标题（覆盖 @doc 头部中的 title）")
	dataJSON := flag.String("data", "", "绑定到文本的 JSON 数据")
	backend := flag.String("backend", "fpdf", "渲染后端：fpdf 或 canvas")
	fontRegular := flag.String("font-regular", "", "canvas 后端的常规字体 TTF 路径")
	fontBold := flag.String("font-bold", "", "canvas 后端的粗体字体 TTF 路径")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	flag.Parse()

	if *input == "" {
		log.Fatalf("缺少输入文件，请使用 -in 指定")
	}

	var inputData any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &inputData); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	var r renderer.Renderer
	switch *backend {
	case "fpdf":
		r = fpdfrenderer.New()
	case "canvas":
		r = canvasrenderer.NewRenderer(canvasrenderer.Options{
			RegularPath: *fontRegular,
			BoldPath:    *fontBold,
		})
	default:
		log.Fatalf("未知渲染后端：%s", *backend)
	}

	out, err := run(*input, *output, *title, *debug, inputData, r)
	if err != nil {
		log.Fatalf("生成 PDF 失败: %v", err)
	}
	fmt.Printf("已生成 PDF：%s\n", out)
}

// run 串联头部解析、数据绑定、净化、折行、分页与渲染，返回输出路径。
func run(inputPath, outputPath, titleOverride, debugPath string, data any, r renderer.Renderer) (string, error) {
	if r == nil {
		return "", fmt.Errorf("renderer 不能为空")
	}
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("无法读取输入文件 %s: %w", inputPath, err)
	}

	req, body, err := docspec.Split(string(raw))
	if err != nil {
		return "", fmt.Errorf("解析 @doc 头部失败: %w", err)
	}

	m, ok := r.(layout.Metrics)
	if !ok {
		return "", fmt.Errorf("renderer 未实现字体度量接口")
	}

	cfg := layout.DefaultConfig()
	meta := layout.DocumentMeta{Creator: "Vellum"}
	title := titleOverride
	filename := ""
	if req != nil {
		if title == "" {
			title = req.Get("title")
		}
		meta.Author = req.Get("author")
		meta.Subject = req.Get("subject")
		filename = req.Get("filename")
		if v := req.Get("size"); v != "" {
			width, height, err := layout.PageSize(v)
			if err != nil {
				return "", err
			}
			cfg.PageWidth, cfg.PageHeight = width, height
		}
		if v := req.Get("margin"); v != "" {
			l := layout.ParseLengthStr(v)
			if l.Value <= 0 {
				return "", fmt.Errorf("非法的 margin 值：%s", v)
			}
			pt := l.ToPT()
			cfg.MarginLeft, cfg.MarginRight = pt, pt
			cfg.MarginTop, cfg.MarginBottom = pt, pt
		}
	}

	if data != nil {
		title = binding.Interpolate(title, data)
		body = binding.Interpolate(body, data)
	}
	meta.Title = strings.TrimSpace(title)

	lines, err := layout.WrapText(layout.Sanitize(body), cfg.ContentWidth(), m, cfg.BodySize)
	if err != nil {
		return "", fmt.Errorf("折行失败: %w", err)
	}
	result, err := layout.Paginate(lines, layout.Sanitize(title), cfg, meta)
	if err != nil {
		return "", fmt.Errorf("布局计算失败: %w", err)
	}

	if debugPath != "" {
		if err := writeDebug(result, debugPath); err != nil {
			return "", err
		}
	}

	out := resolveOutputPath(outputPath, filename, inputPath)
	if dir := filepath.Dir(out); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("创建输出目录失败: %w", err)
		}
	}

	pdfBytes, err := r.Render(result)
	if err != nil {
		return "", fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	if err := os.WriteFile(out, pdfBytes, 0o644); err != nil {
		return "", fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return out, nil
}

// resolveOutputPath 推导输出路径：-out 优先，其次 @doc filename，
// 最后取输入文件名；扩展名统一替换为 .pdf。
func resolveOutputPath(out, filename, input string) string {
	if out != "" {
		return out
	}
	base := filename
	if base == "" {
		base = filepath.Base(input)
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".pdf"
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
