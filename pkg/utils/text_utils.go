package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureFunc 返回单行文本的宽度（像素）
type MeasureFunc func(s string) float64

// FaceMeasure 返回使用 face 测量文本宽度的 MeasureFunc
func FaceMeasure(face text.Face) MeasureFunc {
	return func(s string) float64 {
		if s == "" || face == nil {
			return 0
		}
		width, _ := text.Measure(s, face, 0)
		return width
	}
}

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本，'\n' 会强制换行
//   - measure: 宽度测量函数
//   - maxWidth: 最大宽度（像素），<= 0 表示不限制
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行，至少一行）
//
// 换行规则:
//   - 英文优先在空格处断行
//   - 中文可以在任意字符之间断行
//   - 单个字符超宽时单独成行
func WrapText(textStr string, measure MeasureFunc, maxWidth float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(paragraph, measure, maxWidth)...)
	}
	return lines
}

func wrapParagraph(textStr string, measure MeasureFunc, maxWidth float64) []string {
	if textStr == "" || measure == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	// 如果文本宽度小于最大宽度，直接返回
	if measure(textStr) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	// 按字符遍历（支持多字节字符）
	for len(textStr) > 0 {
		r, size := utf8.DecodeRuneInString(textStr)
		char := string(r)
		textStr = textStr[size:]

		testLine := currentLine + char
		if measure(testLine) <= maxWidth {
			currentLine = testLine
			continue
		}

		// 单个字符就超宽，强制成行
		if strings.TrimSpace(currentLine) == "" {
			if !unicode.IsSpace(r) {
				lines = append(lines, char)
			}
			currentLine = ""
			continue
		}

		if unicode.IsSpace(r) {
			lines = append(lines, strings.TrimSpace(currentLine))
			currentLine = ""
			continue
		}

		// 正在写一个英文单词：回退到最后一个空格处断行
		if cut := strings.LastIndexFunc(currentLine, unicode.IsSpace); cut > 0 && isWordRune(r) {
			lines = append(lines, strings.TrimSpace(currentLine[:cut]))
			currentLine = strings.TrimLeftFunc(currentLine[cut:], unicode.IsSpace) + char
			continue
		}

		lines = append(lines, strings.TrimSpace(currentLine))
		currentLine = char
	}

	if currentLine = strings.TrimSpace(currentLine); currentLine != "" {
		lines = append(lines, currentLine)
	}

	if len(lines) == 0 {
		lines = []string{""}
	}

	return lines
}

// isWordRune 判断字符是否属于需要整体换行的单词（拉丁字母、数字）
func isWordRune(r rune) bool {
	return r < unicode.MaxLatin1 && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
