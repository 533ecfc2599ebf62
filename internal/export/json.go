package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"go-personal-sites/internal/model"
)

// Summarize 统计条目总数、可订阅数与带简介数。
func Summarize(list []model.Entry, now time.Time) model.Stats {
	st := model.Stats{EntriesTotal: len(list), UpdatedAt: now.UTC()}
	for _, e := range list {
		if e.HasFeed() {
			st.FeedsTotal++
		}
		if e.Bio != "" {
			st.BiosTotal++
		}
	}
	return st
}

// ToJSONData 将条目与统计写成带缩进的 JSON 文件。
func ToJSONData(list []model.Entry, path string, now time.Time) error {
	if list == nil {
		list = []model.Entry{}
	}
	out := model.Export{Stats: Summarize(list, now), Entries: list}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode json to %s: %w", path, err)
	}
	return WriteFile(path, buf.Bytes())
}
