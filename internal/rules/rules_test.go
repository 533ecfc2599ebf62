package rules

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-personal-sites/internal/model"
)

func valid() []model.Entry {
	return []model.Entry{
		{Name: "Ada", Site: "https://ada.example", Feed: "https://ada.example/feed.xml", Bio: "Writes about engines."},
		{Name: "Bob", Site: "https://bob.example", Blog: "https://bob.example/blog"},
		{Name: "Bob", Site: "https://bob2.example"},
		{Name: "alice", Site: "https://alice.example"},
	}
}

func TestCheck_Valid(t *testing.T) {
	assert.NoError(t, Check(valid()))
	assert.NoError(t, Check(nil))
}

func TestCheckOrder(t *testing.T) {
	list := []model.Entry{
		{Name: "Bob", Site: "https://bob.example"},
		{Name: "Alice", Site: "https://alice.example"},
	}
	err := Check(list)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsorted)

	var v *Violation
	require.True(t, errors.As(err, &v))
	assert.Equal(t, "Alice", v.Name)
	assert.Contains(t, err.Error(), "entries must be sorted alphabetically by name")
}

func TestCheckOrder_CaseSensitive(t *testing.T) {
	// "Z" < "a" in byte order
	list := []model.Entry{{Name: "a", Site: "https://a"}, {Name: "Z", Site: "https://z"}}
	assert.ErrorIs(t, CheckOrder(list), ErrUnsorted)
}

func TestCheckURLs(t *testing.T) {
	list := []model.Entry{
		{Name: "Ada", Site: "https://ada.example", Now: "https://ada.example"},
	}
	err := Check(list)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateURL)
	assert.True(t, strings.HasPrefix(err.Error(), "Ada: "))

	// 同一 URL 出现在不同条目中是允许的
	list = []model.Entry{
		{Name: "Ada", Site: "https://shared.example"},
		{Name: "Bob", Site: "https://shared.example"},
	}
	assert.NoError(t, CheckURLs(list))
}

func TestCheckBios(t *testing.T) {
	tests := []struct {
		name string
		bio  string
		msg  string
	}{
		{name: "too long", bio: strings.Repeat("a", 80) + ".", msg: "(81 > 80 characters)"},
		{name: "ampersand", bio: "Cats & dogs.", msg: "'&'"},
		{name: "no period", bio: "Writes code", msg: "end with a period"},
		{name: "comma and", bio: "Writes code, and prose.", msg: "', and'"},
		{name: "long beats ampersand", bio: strings.Repeat("&", 90), msg: "too long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check([]model.Entry{{Name: "Ada", Site: "https://ada.example", Bio: tt.bio}})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBio)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Contains(t, err.Error(), "Ada")
		})
	}
}

func TestCheckBios_Boundary(t *testing.T) {
	bio := strings.Repeat("é", 79) + "."
	assert.NoError(t, CheckBios([]model.Entry{{Name: "Ada", Site: "https://a", Bio: bio}}))
}

func TestCheck_Order(t *testing.T) {
	// 排序错误先于 bio 错误报告
	list := []model.Entry{
		{Name: "Bob", Site: "https://bob.example", Bio: "bad"},
		{Name: "Alice", Site: "https://alice.example"},
	}
	assert.ErrorIs(t, Check(list), ErrUnsorted)
}
