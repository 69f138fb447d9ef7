package layout

import "strings"

// 默认墨色与分隔线样式。
var (
	inkColor  = Color{R: 30, G: 30, B: 30}
	ruleColor = Color{R: 128, G: 128, B: 128}
)

const defaultRuleWidth = 0.7

// flowState 在逐行放置时携带的全部状态：已完成的页面、当前页与游标高度。
// 页面一旦进入 pages 即视为定稿，不再回写。
type flowState struct {
	pages []Page
	page  Page
	y     float64
}

// Paginate 将折行结果放置到固定尺寸的页面序列上。
//
// 游标从 页高-上边距 开始向下推进；每行绘制前检查游标，低于或等于
// 下边距时换新页（这是唯一的分页条件，不对下一行高度做预判）。
// 标题存在时以大写粗体绘制在首页顶部，其下画一条横贯内容区的分隔线。
// 没有任何行时仍然产出一页（只含可选的标题块）。
func Paginate(lines []string, title string, cfg Config, meta DocumentMeta) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	st := flowState{page: newPage(cfg), y: cfg.PageHeight - cfg.MarginTop}
	st = placeTitle(st, title, cfg)
	for _, line := range lines {
		st = placeLine(st, line, cfg)
	}
	st.pages = append(st.pages, st.page)

	return &Result{Pages: st.pages, Meta: meta}, nil
}

func newPage(cfg Config) Page {
	return Page{Width: cfg.PageWidth, Height: cfg.PageHeight}
}

// placeTitle 在首页顶部绘制标题块：大写粗体标题、分隔线与其后的间距。
// 标题为空（含仅空白）时游标保持不动。
func placeTitle(st flowState, title string, cfg Config) flowState {
	title = strings.TrimSpace(title)
	if title == "" {
		return st
	}
	st.page.Texts = append(st.page.Texts, TextSpan{
		Content: strings.ToUpper(title),
		X:       cfg.MarginLeft,
		Y:       st.y,
		Size:    cfg.TitleSize,
		Face:    FaceBold,
		Color:   inkColor,
	})
	st.y -= cfg.TitleAdvance
	st.page.Rules = append(st.page.Rules, Rule{
		X1:    cfg.MarginLeft,
		Y1:    st.y,
		X2:    cfg.PageWidth - cfg.MarginRight,
		Y2:    st.y,
		Width: defaultRuleWidth,
		Color: ruleColor,
	})
	st.y -= cfg.RuleGap
	return st
}

// placeLine 是分页的状态转移：游标触底先换页，然后在当前游标处落一行。
func placeLine(st flowState, line string, cfg Config) flowState {
	if st.y <= cfg.MarginBottom {
		st.pages = append(st.pages, st.page)
		st.page = newPage(cfg)
		st.y = cfg.PageHeight - cfg.MarginTop
	}
	st.page.Texts = append(st.page.Texts, TextSpan{
		Content: line,
		X:       cfg.MarginLeft,
		Y:       st.y,
		Size:    cfg.BodySize,
		Face:    FaceRegular,
		Color:   inkColor,
	})
	st.y -= cfg.Leading
	return st
}
