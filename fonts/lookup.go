package fonts

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Style 区分常规与粗体两个字体面。
type Style int

const (
	Regular Style = iota
	Bold
)

func (s Style) String() string {
	if s == Bold {
		return "bold"
	}
	return "regular"
}

// 常见系统字体目录，按顺序查找。
var searchDirs = []string{
	"/usr/share/fonts",
	"/usr/local/share/fonts",
	"/Library/Fonts",
	"/System/Library/Fonts",
	`C:\Windows\Fonts`,
}

// 各字体面的候选文件名，按优先级排列。
var candidateNames = map[Style][]string{
	Regular: {
		"DejaVuSans.ttf",
		"LiberationSans-Regular.ttf",
		"FreeSans.ttf",
		"Arial.ttf",
		"Helvetica.ttf",
	},
	Bold: {
		"DejaVuSans-Bold.ttf",
		"LiberationSans-Bold.ttf",
		"FreeSansBold.ttf",
		"Arial Bold.ttf",
		"Arial-Bold.ttf",
		"Helvetica-Bold.ttf",
	},
}

// Load 返回字体文件的字节数据。path 非空时直接读取该文件，
// 否则在常见系统字体目录中查找对应字体面的默认字体。
func Load(path string, style Style) ([]byte, error) {
	if path == "" {
		found, err := Find(style)
		if err != nil {
			return nil, err
		}
		path = found
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", path, err)
	}
	return data, nil
}

// Find 在系统字体目录中查找给定字体面的候选字体，返回首个命中的路径。
func Find(style Style) (string, error) {
	wanted := map[string]int{}
	for i, name := range candidateNames[style] {
		wanted[name] = i
	}

	best := ""
	bestRank := len(wanted)
	for _, dir := range searchDirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if rank, ok := wanted[d.Name()]; ok && rank < bestRank {
				best = path
				bestRank = rank
			}
			return nil
		})
		if best != "" {
			return best, nil
		}
	}
	return "", fmt.Errorf("在系统字体目录中找不到可用的%s字体，请通过路径显式指定", styleLabel(style))
}

func styleLabel(s Style) string {
	if s == Bold {
		return "粗体"
	}
	return "常规"
}
