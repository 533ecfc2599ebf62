// 包 entries 负责读取目录数据文件（entries.yaml）：
// - 解码为原始记录序列（键值均为字符串）
// - 过滤结束标记与 site 为空的占位记录
// - 将剩余记录转换为 model.Entry，保持原有顺序
package entries

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"go-personal-sites/internal/model"
)

var (
	// ErrFormat 表示数据源无法解析为记录序列。
	ErrFormat = errors.New("invalid entries data")
	// ErrUnknownField 表示记录中出现了未定义的字段。
	ErrUnknownField = errors.New("unknown field")
	// ErrMissingName 表示记录缺少 name 字段。
	ErrMissingName = errors.New("missing name")
)

// SentinelKey 为结束标记记录的唯一键，例如 "- end: true"。
const SentinelKey = "end"

// Record 为数据文件中的一条原始记录。
type Record map[string]string

// fields 为允许出现的字段集合。
var fields = map[string]bool{
	"name": true, "site": true, "blog": true, "about": true,
	"now": true, "feed": true, "hnuid": true, "bio": true,
}

// IsSentinel 判断记录是否为结束标记。
func (r Record) IsSentinel() bool {
	_, ok := r[SentinelKey]
	return ok && len(r) == 1
}

// Load 从文件读取并解析条目。
func Load(path string) ([]model.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open entries %s: %w", path, err)
	}
	defer f.Close()
	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load entries %s: %w", path, err)
	}
	return list, nil
}

// Parse 解码 YAML（JSON 作为 YAML 子集同样适用）并返回过滤后的条目。
func Parse(r io.Reader) ([]model.Entry, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	var raw []Record
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	kept, _ := Filter(raw)
	out := make([]model.Entry, 0, len(kept))
	for i, rec := range kept {
		e, err := toEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrFormat, i+1, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// Filter 去掉结束标记与 site 为空的记录，返回保留的记录及被丢弃的数量。
func Filter(raw []Record) ([]Record, int) {
	out := make([]Record, 0, len(raw))
	for _, rec := range raw {
		if rec.IsSentinel() || rec["site"] == "" {
			continue
		}
		out = append(out, rec)
	}
	return out, len(raw) - len(out)
}

func toEntry(rec Record) (model.Entry, error) {
	var unknown []string
	for k := range rec {
		if !fields[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return model.Entry{}, fmt.Errorf("%w %s (site %s)", ErrUnknownField, strings.Join(unknown, ","), rec["site"])
	}
	if rec["name"] == "" {
		return model.Entry{}, fmt.Errorf("%w (site %s)", ErrMissingName, rec["site"])
	}
	return model.Entry{
		Name:  rec["name"],
		Site:  rec["site"],
		Blog:  rec["blog"],
		About: rec["about"],
		Now:   rec["now"],
		Feed:  rec["feed"],
		HNUID: rec["hnuid"],
		Bio:   rec["bio"],
	}, nil
}
