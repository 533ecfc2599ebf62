package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-personal-sites/internal/model"
)

func open(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "pwd.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLite_ReplaceAndList(t *testing.T) {
	s := open(t)
	ctx := context.Background()
	first := []model.Entry{
		{Name: "Zed", Site: "https://zed.example"},
		{Name: "Ada", Site: "https://ada.example", Feed: "https://ada.example/feed.xml", HNUID: "ada", Bio: "Hi."},
	}
	require.NoError(t, s.ReplaceEntries(ctx, first))
	got, err := s.ListEntries(ctx)
	require.NoError(t, err)
	// 保留写入顺序而非按名称排序
	assert.Equal(t, first, got)

	second := []model.Entry{{Name: "Bob", Site: "https://bob.example"}}
	require.NoError(t, s.ReplaceEntries(ctx, second))
	got, err = s.ListEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestSQLite_Stats(t *testing.T) {
	s := open(t)
	ctx := context.Background()
	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, st.EntriesTotal)

	require.NoError(t, s.ReplaceEntries(ctx, []model.Entry{
		{Name: "Ada", Site: "https://ada.example", Feed: "https://ada.example/feed.xml"},
		{Name: "Bob", Site: "https://bob.example", Bio: "Hi."},
		{Name: "Cy", Site: "https://cy.example"},
	}))
	st, err = s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, st.EntriesTotal)
	assert.Equal(t, 1, st.FeedsTotal)
	assert.Equal(t, 1, st.BiosTotal)
}
