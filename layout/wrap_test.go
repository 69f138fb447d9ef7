package layout

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

// fixedMetrics 是测试用的等宽度量：宽度 = 每字符宽 × 字符数，与字号无关。
// 等宽场景下折行与硬切的期望结果可以手工推算。
type fixedMetrics struct {
	charWidth float64
}

func (m fixedMetrics) TextWidth(face Face, text string, size float64) (float64, error) {
	return m.charWidth * float64(utf8.RuneCountInString(text)), nil
}

// failingMetrics 总是返回错误，用于验证度量失败会原样上抛。
type failingMetrics struct{}

func (failingMetrics) TextWidth(face Face, text string, size float64) (float64, error) {
	return 0, errors.New("measure failed")
}

// TestWrapBreaksBetweenWords 验证贪心折行在词边界断开。
// 每字符 6pt、上限 60pt："The quick" 占 54pt 可容纳，追加 "brown" 超限。
func TestWrapBreaksBetweenWords(t *testing.T) {
	lines, err := WrapText("The quick brown fox", 60, fixedMetrics{charWidth: 6}, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"The quick", "brown fox"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("折行结果不符: got=%v want=%v", lines, want)
	}
}

// TestWrapHardBreaksOversizedToken 验证超宽单词按比例估算切点硬切。
// 34 字符 × 6pt = 204pt，上限 60pt，每次切点 = 60/剩余宽 × 剩余长度。
func TestWrapHardBreaksOversizedToken(t *testing.T) {
	lines, err := WrapText("Supercalifragilisticexpialidocious", 60, fixedMetrics{charWidth: 6}, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Supercalif", "ragilistic", "expialidoc", "ious"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("硬切结果不符: got=%v want=%v", lines, want)
	}
}

// TestWrapWidthInvariant 断言宽度不变式：长度大于 1 的行测量宽度不超上限。
func TestWrapWidthInvariant(t *testing.T) {
	m := fixedMetrics{charWidth: 6}
	text := "alpha beta gamma deltadeltadeltadelta epsilon zeta\n\n" +
		strings.Repeat("x", 100) + " tail words here"
	lines, err := WrapText(text, 60, m, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) == 0 {
		t.Fatalf("非空输入至少应产生一行")
	}
	for _, line := range lines {
		if utf8.RuneCountInString(line) <= 1 {
			continue
		}
		w, _ := m.TextWidth(FaceRegular, line, 11)
		if w > 60 {
			t.Fatalf("行 %q 宽度 %g 超过上限 60", line, w)
		}
	}
}

// TestWrapSingleOverwideRune 验证单字符超宽时按原样独占一行，不会死循环。
func TestWrapSingleOverwideRune(t *testing.T) {
	lines, err := WrapText("W", 3, fixedMetrics{charWidth: 6}, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"W"}) {
		t.Fatalf("超宽单字符应独占一行: got=%v", lines)
	}

	// 两字符超宽词：切点估算为 0 时夹取到 1，仍然逐字符前进。
	lines, err = WrapText("WW", 3, fixedMetrics{charWidth: 6}, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"W", "W"}) {
		t.Fatalf("两字符超宽词应逐字符切分: got=%v", lines)
	}
}

// TestWrapPreservesBlankLines 验证空段落输出空行，\r\n 先归一为 \n。
func TestWrapPreservesBlankLines(t *testing.T) {
	lines, err := WrapText("foo\n\nbar", 600, fixedMetrics{charWidth: 6}, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"foo", "", "bar"}) {
		t.Fatalf("空段落应保留为空行: got=%v", lines)
	}

	lines, err = WrapText("foo\r\nbar", 600, fixedMetrics{charWidth: 6}, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"foo", "bar"}) {
		t.Fatalf("\\r\\n 应按单个换行处理: got=%v", lines)
	}
}

// TestWrapCollapsesWhitespaceRuns 验证连续空白只作为分词边界，输出用单个空格连接。
func TestWrapCollapsesWhitespaceRuns(t *testing.T) {
	lines, err := WrapText("a   b\tc", 600, fixedMetrics{charWidth: 6}, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"a b c"}) {
		t.Fatalf("空白串应折叠为单个空格: got=%v", lines)
	}
}

// TestWrapEmptyInput 验证空输入产生零行。
func TestWrapEmptyInput(t *testing.T) {
	lines, err := WrapText("", 60, fixedMetrics{charWidth: 6}, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("空输入应产生零行: got=%v", lines)
	}
}

// TestWrapRejectsInvalidConfig 验证非法宽度/字号立即失败。
func TestWrapRejectsInvalidConfig(t *testing.T) {
	if _, err := WrapText("text", 0, fixedMetrics{charWidth: 6}, 11); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("宽度为 0 应返回 ErrInvalidWidth, got=%v", err)
	}
	if _, err := WrapText("text", -1, fixedMetrics{charWidth: 6}, 11); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("负宽度应返回 ErrInvalidWidth, got=%v", err)
	}
	if _, err := WrapText("text", 60, fixedMetrics{charWidth: 6}, 0); !errors.Is(err, ErrInvalidFontSize) {
		t.Fatalf("字号为 0 应返回 ErrInvalidFontSize, got=%v", err)
	}
	if _, err := WrapText("text", 60, nil, 11); err == nil {
		t.Fatalf("缺少度量实现应返回错误")
	}
}

// TestWrapPropagatesMeasureError 验证度量失败原样上抛。
func TestWrapPropagatesMeasureError(t *testing.T) {
	if _, err := WrapText("text", 60, failingMetrics{}, 11); err == nil {
		t.Fatalf("度量失败应上抛错误")
	}
}

// TestWrapDeterministic 验证相同输入产生完全相同的行序列。
func TestWrapDeterministic(t *testing.T) {
	text := "some reasonably long input with averyveryverylongtoken inside\nand a second paragraph"
	first, err := WrapText(text, 60, fixedMetrics{charWidth: 6}, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := WrapText(text, 60, fixedMetrics{charWidth: 6}, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("结果不确定: first=%v second=%v", first, second)
	}
}
