package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/greenstream/internal/assumptions"
	"github.com/rshade/greenstream/internal/i18n"
)

func TestView(t *testing.T) {
	m, _ := newTestModel(t, i18n.English)
	out := m.View()

	assert.Contains(t, out, i18n.T(i18n.English, "page_title"))
	assert.Contains(t, out, "Total (with production)")
	assert.Contains(t, out, "Networks")
	assert.Contains(t, out, "Which devices do you watch videos on (share, %)?")
	assert.Contains(t, out, "  Computer")
	assert.Contains(t, out, i18n.T(i18n.English, "edit_help"))
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Viewing hours per week",
		FieldLabel(i18n.English, assumptions.Field{Variable: assumptions.HoursInput}))
	assert.Equal(t, "  Tablette",
		FieldLabel(i18n.French, assumptions.Field{Variable: assumptions.DeviceWatts, Subkey: "tablet"}))
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		name               string
		n, focused, size   int
		wantStart, wantEnd int
	}{
		{"fits", 5, 3, 10, 0, 5},
		{"top", 50, 0, 10, 0, 10},
		{"middle", 50, 25, 10, 20, 30},
		{"bottom", 50, 49, 10, 40, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleWindow(tt.n, tt.focused, tt.size)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "éé...", truncate("éééééé", 5))
}

func TestRenderNotices(t *testing.T) {
	out := RenderNotices([]Notice{
		{Level: NoticeInfo, Text: "filled"},
		{Level: NoticeError, Text: "bad"},
	})
	assert.Contains(t, out, "filled")
	assert.Contains(t, out, "bad")
}
