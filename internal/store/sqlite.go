// 包 store 提供目录快照的 SQLite 存储，每次构建整表重建。
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"go-personal-sites/internal/model"
)

// SQLite 封装 *sql.DB，基于 modernc.org/sqlite（纯 Go 实现）。
type SQLite struct {
	db *sql.DB
}

// OpenSQLite 打开数据库并执行建表。
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS entries (
            pos INTEGER PRIMARY KEY,
            name TEXT NOT NULL,
            site TEXT NOT NULL,
            blog TEXT,
            about TEXT,
            now_url TEXT,
            feed TEXT,
            hnuid TEXT,
            bio TEXT
        );`)
	if err != nil {
		return fmt.Errorf("exec migrate: %w", err)
	}
	return nil
}

// ReplaceEntries 在一个事务内清空并写入全部条目，pos 保留原始顺序。
func (s *SQLite) ReplaceEntries(ctx context.Context, list []model.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("delete entries: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries(pos, name, site, blog, about, now_url, feed, hnuid, bio)
        VALUES(?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for i, e := range list {
		if _, err := stmt.ExecContext(ctx, i, e.Name, e.Site, e.Blog, e.About, e.Now, e.Feed, e.HNUID, e.Bio); err != nil {
			return fmt.Errorf("insert entry %s: %w", e.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ListEntries 按原始顺序返回全部条目。
func (s *SQLite) ListEntries(ctx context.Context) ([]model.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, site, COALESCE(blog,''), COALESCE(about,''), COALESCE(now_url,''),
        COALESCE(feed,''), COALESCE(hnuid,''), COALESCE(bio,'') FROM entries ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()
	var out []model.Entry
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(&e.Name, &e.Site, &e.Blog, &e.About, &e.Now, &e.Feed, &e.HNUID, &e.Bio); err != nil {
			return nil, fmt.Errorf("scan entries: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return out, nil
}

// Stats 统计条目总数、带订阅数与带简介数。
func (s *SQLite) Stats(ctx context.Context) (model.Stats, error) {
	var st model.Stats
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1),
        COALESCE(SUM(CASE WHEN feed != '' THEN 1 ELSE 0 END), 0),
        COALESCE(SUM(CASE WHEN bio != '' THEN 1 ELSE 0 END), 0) FROM entries`).
		Scan(&st.EntriesTotal, &st.FeedsTotal, &st.BiosTotal)
	if err != nil {
		return st, fmt.Errorf("count entries: %w", err)
	}
	return st, nil
}
