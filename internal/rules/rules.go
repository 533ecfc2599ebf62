// 包 rules 实现目录条目的编辑规则校验：
// - 按 name 升序排列
// - 单个条目内 URL 不重复
// - bio 文本格式（长度/字符/结尾/措辞）
// 校验为纯函数，遇到第一处违规即返回。
package rules

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go-personal-sites/internal/model"
)

// MaxBioLength 为 bio 允许的最大字符数。
const MaxBioLength = 80

var (
	ErrUnsorted     = errors.New("entries must be sorted alphabetically by name")
	ErrDuplicateURL = errors.New("duplicate URL")
	ErrBio          = errors.New("invalid bio")
)

// Violation 描述一处违规：条目名、类别（上面的哨兵错误之一）与可读原因。
type Violation struct {
	Name   string
	Kind   error
	Reason string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Name, v.Reason)
}

func (v *Violation) Unwrap() error { return v.Kind }

// Check 依次执行排序、URL 唯一性与 bio 校验。
func Check(list []model.Entry) error {
	for _, check := range []func([]model.Entry) error{CheckOrder, CheckURLs, CheckBios} {
		if err := check(list); err != nil {
			return err
		}
	}
	return nil
}

// CheckOrder 逐对比较相邻条目，name 采用字节序比较；同名相邻不算违规。
func CheckOrder(list []model.Entry) error {
	for i := 1; i < len(list); i++ {
		if list[i].Name < list[i-1].Name {
			return &Violation{
				Name:   list[i].Name,
				Kind:   ErrUnsorted,
				Reason: fmt.Sprintf("%s (found after %q)", ErrUnsorted, list[i-1].Name),
			}
		}
	}
	return nil
}

// CheckURLs 确保每个条目已填写的 site/blog/feed/about/now 互不相同。
func CheckURLs(list []model.Entry) error {
	for _, e := range list {
		seen := make(map[string]bool, 5)
		for _, u := range e.URLs() {
			if seen[u] {
				return &Violation{
					Name:   e.Name,
					Kind:   ErrDuplicateURL,
					Reason: fmt.Sprintf("%s %s", ErrDuplicateURL, u),
				}
			}
			seen[u] = true
		}
	}
	return nil
}

// CheckBios 校验所有非空 bio。
func CheckBios(list []model.Entry) error {
	for _, e := range list {
		if e.Bio == "" {
			continue
		}
		if reason := bioProblem(e.Bio); reason != "" {
			return &Violation{Name: e.Name, Kind: ErrBio, Reason: reason}
		}
	}
	return nil
}

// bioProblem 按固定顺序检查并返回第一处问题，无问题返回空串。
func bioProblem(bio string) string {
	if n := utf8.RuneCountInString(bio); n > MaxBioLength {
		return fmt.Sprintf("bio is too long (%d > %d characters)", n, MaxBioLength)
	}
	if strings.Contains(bio, "&") {
		return "bio must not contain '&'"
	}
	if !strings.HasSuffix(bio, ".") {
		return "bio must end with a period"
	}
	if strings.Contains(bio, ", and") {
		return "bio must not contain ', and'"
	}
	return ""
}
