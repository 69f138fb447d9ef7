package layout

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidWidth 表示折行宽度不为正数。
var ErrInvalidWidth = errors.New("layout: 行宽必须大于 0")

// ErrInvalidFontSize 表示字号不为正数。
var ErrInvalidFontSize = errors.New("layout: 字号必须大于 0")

// WrapText 将净化后的文本折成若干行，每行在给定字号下的测量宽度
// 不超过 maxWidth（唯一例外：单个字符本身超宽时按原样独占一行）。
//
// 算法：按 \n 划分段落（\r\n 先归一为 \n），空段落输出一个空行以保留
// 段间空白；非空段落按空白串切词后贪心填充，词间用单个空格连接。
// 原文中的连续空白不会保留，只作为分词边界。
// 单词本身超宽时按比例估算切点硬切（见 cutOversized）。
//
// 纯函数：相同输入总是产生相同的行序列；度量失败的错误原样上抛。
func WrapText(text string, maxWidth float64, m Metrics, size float64) ([]string, error) {
	if maxWidth <= 0 {
		return nil, ErrInvalidWidth
	}
	if size <= 0 {
		return nil, ErrInvalidFontSize
	}
	if m == nil {
		return nil, fmt.Errorf("layout: 缺少字体度量 Metrics")
	}
	if text == "" {
		return []string{}, nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			width, err := m.TextWidth(FaceRegular, word, size)
			if err != nil {
				return nil, err
			}
			// 超宽词：先提交当前行，再逐段硬切，直到剩余部分可按普通词处理。
			for width > maxWidth && utf8.RuneCountInString(word) > 1 {
				if current != "" {
					lines = append(lines, current)
					current = ""
				}
				var prefix string
				prefix, word = cutOversized(word, width, maxWidth)
				lines = append(lines, prefix)
				width, err = m.TextWidth(FaceRegular, word, size)
				if err != nil {
					return nil, err
				}
			}

			if current == "" {
				current = word
				continue
			}
			candidate := current + " " + word
			candidateWidth, err := m.TextWidth(FaceRegular, candidate, size)
			if err != nil {
				return nil, err
			}
			if candidateWidth <= maxWidth {
				current = candidate
			} else {
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		}
	}
	return lines, nil
}

// cutOversized 从超宽词中切出一个前缀。切点按整词宽度线性比例估算，
// 字形宽度并不均匀，所以这是近似值而非精确解；夹取到 [1, n-1]
// 保证每次至少前进一个字符、至少留下一个字符。
func cutOversized(word string, width, maxWidth float64) (prefix, rest string) {
	runes := []rune(word)
	n := len(runes)
	cut := int(maxWidth * float64(n) / width)
	if cut < 1 {
		cut = 1
	}
	if cut > n-1 {
		cut = n - 1
	}
	return string(runes[:cut]), string(runes[cut:])
}
