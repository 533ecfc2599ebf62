// 包 model 定义目录条目与导出结构。
package model

import "time"

// Entry 表示目录中的一个个人网站条目。
// 除 Name/Site 外均为可选字段，空字符串表示缺省。
type Entry struct {
	Name  string `json:"name"`
	Site  string `json:"site"`
	Blog  string `json:"blog,omitempty"`
	About string `json:"about,omitempty"`
	Now   string `json:"now,omitempty"`
	Feed  string `json:"feed,omitempty"`
	HNUID string `json:"hnuid,omitempty"`
	Bio   string `json:"bio,omitempty"`
}

// URLs 按固定顺序返回条目中已填写的 URL 字段（site/blog/feed/about/now）。
func (e Entry) URLs() []string {
	out := make([]string, 0, 5)
	for _, u := range []string{e.Site, e.Blog, e.Feed, e.About, e.Now} {
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}

// HasFeed 表示条目可以出现在 OPML 中（name/feed/site 齐全）。
func (e Entry) HasFeed() bool {
	return e.Name != "" && e.Feed != "" && e.Site != ""
}

// Stats 为导出统计信息。
type Stats struct {
	EntriesTotal int       `json:"entries_total"`
	FeedsTotal   int       `json:"feeds_total"`
	BiosTotal    int       `json:"bios_total"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Export 为 data.json 顶层结构。
type Export struct {
	Stats   Stats   `json:"stats"`
	Entries []Entry `json:"entries"`
}
