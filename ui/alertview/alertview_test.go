package alertview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riordanpawley/canopy/alert"
	"github.com/riordanpawley/canopy/ui/styles"
)

func TestRenderer_Render_Empty(t *testing.T) {
	renderer := New(styles.New())

	result := renderer.Render(nil, 0, 80)

	assert.Equal(t, "", result, "Nothing to show should return empty string")
}

func TestRenderer_Render_SingleAlert(t *testing.T) {
	renderer := New(styles.New())

	result := renderer.Render([]alert.Alert{
		{Severity: alert.SeverityInfo, Message: "Saved"},
	}, 0, 80)

	assert.NotEmpty(t, result)
	assert.Contains(t, result, "Saved")
	assert.Contains(t, result, alert.SeverityInfo.Icon())
}

func TestRenderer_Render_StacksVertically(t *testing.T) {
	renderer := New(styles.New())

	result := renderer.Render([]alert.Alert{
		{Severity: alert.SeverityInfo, Message: "First"},
		{Severity: alert.SeveritySuccess, Message: "Second"},
		{Severity: alert.SeverityError, Message: "Third"},
	}, 0, 80)

	assert.Contains(t, result, "First")
	assert.Contains(t, result, "Second")
	assert.Contains(t, result, "Third")
	assert.Greater(t, len(strings.Split(result, "\n")), 1, "Multiple alerts should span multiple lines")
}

func TestRenderer_Render_DismissibleAffordance(t *testing.T) {
	renderer := New(styles.New())

	result := renderer.Render([]alert.Alert{
		{Severity: alert.SeverityWarning, Message: "Careful", Dismissible: true},
	}, 0, 80)

	assert.Contains(t, result, "✕", "Dismissible alert should show a close affordance")
}

func TestRenderer_Render_WaitingCount(t *testing.T) {
	renderer := New(styles.New())

	result := renderer.Render([]alert.Alert{
		{Severity: alert.SeverityInfo, Message: "Visible"},
	}, 2, 80)

	assert.Contains(t, result, "+2 more")
}
