// Package resolver implements the directory-to-rule matching core.
// Rules are scanned in declaration order and the first pattern that
// matches anywhere in the path wins.
package resolver

import (
	"github.com/hbjs97/envy/internal/config"
)

// Resolve는 path에 매칭되는 첫 번째 규칙의 환경변수 목록을 반환한다.
// 패턴은 경로 전체가 아니라 부분 문자열에 매칭되며, 규칙 순서는
// 설정 파일의 선언 순서 그대로다. 매칭되는 규칙이 없으면 nil을
// 반환하고, 이는 오류가 아니라 해당 디렉토리에 설정이 없다는 뜻이다.
func Resolve(path string, rules []config.Rule) []string {
	if r := ResolveRule(path, rules); r != nil {
		return r.Env
	}
	return nil
}

// ResolveRule은 path에 매칭되는 첫 번째 규칙 자체를 반환한다.
// 매칭되는 규칙이 없으면 nil이다.
func ResolveRule(path string, rules []config.Rule) *config.Rule {
	for i := range rules {
		r := &rules[i]
		if r.Pattern.Regexp == nil {
			continue
		}
		if r.Pattern.MatchString(path) {
			return r
		}
	}
	return nil
}
