package image

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	ModeScale rune = 's'
	ModeCrop  rune = 'c'
)

const (
	minDimension = 1
	maxDimension = 9999
)

var sre = regexp.MustCompile(`^(?P<mode>[sc])?(?P<w>\d{1,4})(?:x(?P<h>\d{1,4}))?$`)

// ParseSize 解析尺寸字符串，返回模式、宽度和高度
// 格式示例:
// - s64      (拉伸，64x64)
// - c32      (裁剪，32x32)
// - s64x48   (拉伸，宽64高48)
// - 64       (同 s64)
func ParseSize(s string) (mode rune, width, height uint, err error) {
	s = strings.TrimSpace(s)
	match := sre.FindStringSubmatch(s)
	if match == nil {
		err = fmt.Errorf("%w: %q", ErrInvalidSize, s)
		return
	}

	mode = ModeScale
	if match[1] != "" {
		mode = rune(match[1][0])
	}
	w, _ := strconv.Atoi(match[2])
	h := w
	if match[3] != "" {
		h, _ = strconv.Atoi(match[3])
	}

	if !isValidDimension(w) || !isValidDimension(h) {
		err = fmt.Errorf("%w: dimensions must be between %d and %d",
			ErrInvalidSize, minDimension, maxDimension)
		return
	}
	width, height = uint(w), uint(h)
	return
}

// isValidDimension 检查维度是否在有效范围内
func isValidDimension(d int) bool {
	return d >= minDimension && d <= maxDimension
}
