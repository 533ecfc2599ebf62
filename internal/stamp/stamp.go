// 包 stamp 提供 OPML 与 HTML 共用的 RFC-2822 时间格式。
package stamp

import "time"

// Layout 固定以 UTC 结尾，例如 "Sun, 08 Jun 2025 00:00:00 UTC"。
const Layout = "Mon, 02 Jan 2006 15:04:05 UTC"

// Epoch 为项目创建时间，用作 OPML 的 dateCreated。
var Epoch = time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)

// Format 将时间转换为 UTC 后按 Layout 输出。
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}
