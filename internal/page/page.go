// 包 page 将条目渲染为静态 HTML 目录页（index.html）。
package page

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"go-personal-sites/internal/model"
	"go-personal-sites/internal/stamp"
)

// ErrNoScheme 表示 site 缺少 "://"，无法提取主机名。
var ErrNoScheme = errors.New("site URL has no scheme")

// HNProfile 为 HN 用户主页前缀。
const HNProfile = "https://news.ycombinator.com/user?id="

//go:embed page.html
var pageHTML string

var tmpl = template.Must(template.New("page").Parse(pageHTML))

// Meta 为页面中的固定信息（标题与页脚链接）。
type Meta struct {
	Title     string
	ReadmeURL string
	IRCURL    string
	OPMLFile  string
}

// Link 为导航栏中的一项。
type Link struct {
	Label string
	URL   string
}

type section struct {
	Name  string
	Site  string
	Host  string
	Links []Link
	Bio   string
}

type view struct {
	Meta     Meta
	Count    int
	Sections []section
	Updated  string
}

// Render 生成完整的 HTML 文档；任一条目的 site 无法提取主机名时返回错误。
func Render(list []model.Entry, meta Meta, now time.Time) ([]byte, error) {
	v := view{
		Meta:     meta,
		Count:    len(list),
		Sections: make([]section, 0, len(list)),
		Updated:  stamp.Format(now),
	}
	for _, e := range list {
		host, err := Host(e.Site)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", e.Name, err)
		}
		v.Sections = append(v.Sections, section{
			Name:  e.Name,
			Site:  e.Site,
			Host:  host,
			Links: Links(e),
			Bio:   e.Bio,
		})
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("execute page template: %w", err)
	}
	return buf.Bytes(), nil
}

// Links 按固定顺序（Website/Blog/About/Now/Feed/HN）返回已填写的链接。
func Links(e model.Entry) []Link {
	cand := []Link{
		{"Website", e.Site},
		{"Blog", e.Blog},
		{"About", e.About},
		{"Now", e.Now},
		{"Feed", e.Feed},
	}
	if e.HNUID != "" {
		cand = append(cand, Link{"HN", HNProfile + url.QueryEscape(e.HNUID)})
	}
	out := make([]Link, 0, len(cand))
	for _, l := range cand {
		if l.URL != "" {
			out = append(out, l)
		}
	}
	return out
}

// Host 提取展示用主机名：取 "://" 之后到下一个 "/" 为止的部分，
// 并去掉开头的 "www."。
func Host(site string) (string, error) {
	i := strings.Index(site, "://")
	if i < 0 {
		return "", fmt.Errorf("%w: %q", ErrNoScheme, site)
	}
	h := site[i+3:]
	if j := strings.Index(h, "/"); j >= 0 {
		h = h[:j]
	}
	return strings.TrimPrefix(h, "www."), nil
}
