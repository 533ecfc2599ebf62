// 包 build 负责主流程编排：
// 读取条目 → 规则校验 → 渲染 OPML/HTML → 写入文件（可选导出 JSON/SQLite）。
// 两份文档全部渲染成功后才开始写盘，任何错误都不会留下半成品。
package build

import (
	"context"
	"fmt"
	"time"

	"go-personal-sites/internal/config"
	"go-personal-sites/internal/entries"
	"go-personal-sites/internal/export"
	"go-personal-sites/internal/logx"
	"go-personal-sites/internal/model"
	"go-personal-sites/internal/opml"
	"go-personal-sites/internal/page"
	"go-personal-sites/internal/rules"
	"go-personal-sites/internal/store"
)

// Runner 持有配置与时钟。
type Runner struct {
	cfg *config.Config
	now func() time.Time
}

// Result 为一次构建写出的文件与条目数量。
type Result struct {
	Entries int
	Feeds   int
	Written []string
}

// New 创建 Runner；cfg 为空时使用默认配置。
func New(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Runner{cfg: cfg, now: time.Now}
}

// WithClock 替换时钟，便于测试固定生成时间。
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// Check 仅读取并校验条目，不写任何文件。
func (r *Runner) Check() ([]model.Entry, error) {
	list, err := entries.Load(r.cfg.Data)
	if err != nil {
		return nil, err
	}
	logx.Debugf("读取条目：%d 条（%s）", len(list), r.cfg.Data)
	if err := rules.Check(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Run 执行一次完整构建。
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	list, err := r.Check()
	if err != nil {
		return nil, err
	}
	now := r.now()
	opmlDoc, err := opml.Render(list, now)
	if err != nil {
		return nil, err
	}
	htmlDoc, err := page.Render(list, page.Meta{
		Title:     r.cfg.Site.Title,
		ReadmeURL: r.cfg.Site.ReadmeURL,
		IRCURL:    r.cfg.Site.IRCURL,
		OPMLFile:  r.cfg.OPMLFile,
	}, now)
	if err != nil {
		return nil, err
	}

	res := &Result{Entries: len(list), Feeds: export.Summarize(list, now).FeedsTotal}
	for _, out := range []struct {
		path string
		data []byte
	}{
		{r.cfg.OPMLPath(), opmlDoc},
		{r.cfg.HTMLPath(), htmlDoc},
	} {
		if err := export.WriteFile(out.path, out.data); err != nil {
			return res, err
		}
		res.Written = append(res.Written, out.path)
		logx.Infof("已写入 %s", out.path)
	}

	if p := r.cfg.Export.JSON; p != "" {
		if err := export.ToJSONData(list, p, now); err != nil {
			return res, err
		}
		res.Written = append(res.Written, p)
		logx.Infof("已导出 %s", p)
	}
	if dsn := r.cfg.Export.SQLite; dsn != "" {
		if err := snapshot(ctx, dsn, list); err != nil {
			return res, err
		}
		res.Written = append(res.Written, dsn)
		logx.Infof("已写入数据库快照 %s", dsn)
	}
	return res, nil
}

func snapshot(ctx context.Context, dsn string, list []model.Entry) error {
	st, err := store.OpenSQLite(dsn)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.ReplaceEntries(ctx, list); err != nil {
		return fmt.Errorf("snapshot %s: %w", dsn, err)
	}
	return nil
}
