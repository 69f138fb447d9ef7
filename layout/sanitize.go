package layout

import "strings"

// 内建字体使用单字节窄编码，无法渲染任意 Unicode 字符。
// Sanitize 先把常见的“智能”标点与符号替换为 ASCII 近似形，
// 再逐字符过滤：仅保留 \n、\r、\t 与可打印 ASCII 区间 [0x20,0x7E]，
// 其余字符替换为单个空格（保留列对齐，优于直接删除）。
//
// 替换表按声明顺序整体应用，彼此不会产生级联：
// 勾选框与对勾、项目符号、连字符变体、弯引号与撇号、不间断空格。
var asciiSubstitutions = []struct {
	from string
	to   string
}{
	{"☐", "[ ]"}, // 空勾选框
	{"☑", "[x]"}, // 已勾选框
	{"☒", "[x]"}, // 打叉勾选框
	{"✅", "[x]"}, // 白底对勾（按勾选框处理）
	{"✓", "x"},   // 对勾
	{"✔", "x"},   // 粗对勾
	{"•", "*"},   // 项目符号
	{"●", "*"},   // 实心圆
	{"■", "*"},   // 实心方块
	{"‐", "-"},   // 连字符
	{"‑", "-"},   // 不断行连字符
	{"‒", "-"},   // 数字宽破折号
	{"–", "-"},   // 短破折号
	{"—", "-"},   // 长破折号
	{"−", "-"},   // 数学减号
	{"‘", "'"},   // 左单引号
	{"’", "'"},   // 右单引号
	{"′", "'"},   // 角分符号
	{"“", `"`},   // 左双引号
	{"”", `"`},   // 右双引号
	{"″", `"`},   // 角秒符号
	{" ", " "},   // 不间断空格
}

// Sanitize 将任意文本规整为内建字体可渲染的 ASCII 子集。
// 对任意输入全函数、幂等，不产生错误。
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	for _, sub := range asciiSubstitutions {
		text = strings.ReplaceAll(text, sub.from, sub.to)
	}

	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			builder.WriteRune(r)
		case r >= 0x20 && r <= 0x7e:
			builder.WriteRune(r)
		default:
			builder.WriteByte(' ')
		}
	}
	return builder.String()
}
