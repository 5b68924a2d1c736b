package filter

import (
	"regexp"
	"strings"
)

// ContainsWildcard は「どこかに text を含む」ワイルドカードを返します
func ContainsWildcard(text string) string {
	return "*" + text + "*"
}

// compileWildcard はワイルドカードを名前全体に一致する正規表現に変換します。
// '*' は任意の文字列、'?' は任意の1文字、[...] は文字集合です（'!' または '^' で否定）。
// バックスラッシュはエスケープではなく通常の文字として扱います。
// 閉じられていない '[' や不正な範囲を含む集合は通常の文字です
func compileWildcard(pattern string, caseSensitive bool) *regexp.Regexp {
	if re, err := regexp.Compile(wildcardToRegexp(pattern, caseSensitive, true)); err == nil {
		return re
	}
	// 全ての文字をエスケープしているため失敗しない
	return regexp.MustCompile(wildcardToRegexp(pattern, caseSensitive, false))
}

func wildcardToRegexp(pattern string, caseSensitive, classes bool) string {
	var b strings.Builder
	if !caseSensitive {
		b.WriteString("(?i)")
	}
	b.WriteString("^(?s:")

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			if !classes {
				b.WriteString(regexp.QuoteMeta(string(r)))
				continue
			}
			class, next, ok := parseClass(runes, i)
			if !ok {
				b.WriteString(regexp.QuoteMeta(string(r)))
				continue
			}
			b.WriteString(class)
			i = next
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(")$")
	return b.String()
}

// parseClass は runes[start] の '[' から始まる文字集合を正規表現に変換し、
// 閉じ括弧の位置を返します
func parseClass(runes []rune, start int) (string, int, bool) {
	i := start + 1
	negate := false
	if i < len(runes) && (runes[i] == '!' || runes[i] == '^') {
		negate = true
		i++
	}

	var members []rune
	// 先頭の ']' は集合の要素
	if i < len(runes) && runes[i] == ']' {
		members = append(members, ']')
		i++
	}
	for ; i < len(runes); i++ {
		if runes[i] == ']' {
			if len(members) == 0 {
				return "", 0, false
			}
			return buildClass(members, negate), i, true
		}
		members = append(members, runes[i])
	}
	return "", 0, false
}

func buildClass(members []rune, negate bool) string {
	var b strings.Builder
	b.WriteString("[")
	if negate {
		b.WriteString("^")
	}
	for i, r := range members {
		switch {
		case r == '-' && i > 0 && i < len(members)-1:
			// 範囲指定
			b.WriteRune(r)
		case r == '\\' || r == ']' || r == '[' || r == '^' || r == '-':
			b.WriteRune('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteString("]")
	return b.String()
}
