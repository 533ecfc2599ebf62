// 包 opml 将条目渲染为 OPML 2.0 订阅列表。
package opml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"go-personal-sites/internal/model"
	"go-personal-sites/internal/stamp"
)

// Title 为 OPML 文档标题。
const Title = "HN Personal Websites"

type document struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    head     `xml:"head"`
	Body    body     `xml:"body"`
}

type head struct {
	Title        string `xml:"title"`
	DateCreated  string `xml:"dateCreated"`
	DateModified string `xml:"dateModified"`
}

type body struct {
	Comment  xml.Comment `xml:",comment"`
	Outlines []outline   `xml:"outline"`
}

type outline struct {
	Type    string `xml:"type,attr"`
	Text    string `xml:"text,attr"`
	Title   string `xml:"title,attr"`
	XMLURL  string `xml:"xmlUrl,attr"`
	HTMLURL string `xml:"htmlUrl,attr"`
}

// Render 生成 OPML 文档：
// - 注释中的数量为传入条目总数
// - 仅 name/feed/site 齐全的条目生成 outline，其余静默跳过
func Render(list []model.Entry, now time.Time) ([]byte, error) {
	doc := document{
		Version: "2.0",
		Head: head{
			Title:        Title,
			DateCreated:  stamp.Format(stamp.Epoch),
			DateModified: stamp.Format(now),
		},
		Body: body{Comment: xml.Comment(fmt.Sprintf(" %d entries ", len(list)))},
	}
	for _, e := range list {
		if !e.HasFeed() {
			continue
		}
		doc.Body.Outlines = append(doc.Body.Outlines, outline{
			Type:    "rss",
			Text:    e.Name,
			Title:   e.Name,
			XMLURL:  e.Feed,
			HTMLURL: e.Site,
		})
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode opml: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
