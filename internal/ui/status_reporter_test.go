package ui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gitflow/internal/ui"
)

func TestStatusReporterFormatsLines(testInstance *testing.T) {
	testCases := []struct {
		name           string
		emit           func(reporter *ui.StatusReporter)
		expectedOutput string
	}{
		{
			name: "success_line",
			emit: func(reporter *ui.StatusReporter) {
				reporter.Successf("Deleted local branch: %s", "feature/user-auth")
			},
			expectedOutput: "✅ Deleted local branch: feature/user-auth\n",
		},
		{
			name: "warning_line",
			emit: func(reporter *ui.StatusReporter) {
				reporter.Warningf("Could not delete remote branch: %s", "feature/search")
			},
			expectedOutput: "⚠️ Could not delete remote branch: feature/search\n",
		},
		{
			name: "failure_line",
			emit: func(reporter *ui.StatusReporter) {
				reporter.Failuref("Failed to create pull request: %s", "service unavailable")
			},
			expectedOutput: "❌ Failed to create pull request: service unavailable\n",
		},
		{
			name: "plain_line_without_glyph",
			emit: func(reporter *ui.StatusReporter) {
				reporter.Plainf("Creating feature branch: %s", "feature/user-auth")
			},
			expectedOutput: "Creating feature branch: feature/user-auth\n",
		},
		{
			name: "custom_glyph_line",
			emit: func(reporter *ui.StatusReporter) {
				reporter.Statusf(ui.GlyphBroom, "Cleaning up merged branches...")
			},
			expectedOutput: "🧹 Cleaning up merged branches...\n",
		},
		{
			name: "list_item",
			emit: func(reporter *ui.StatusReporter) {
				reporter.ListItemf("%s", "feature/user-auth")
			},
			expectedOutput: "  - feature/user-auth\n",
		},
		{
			name: "detail_item",
			emit: func(reporter *ui.StatusReporter) {
				reporter.DetailItemf("%s", "Uncommitted changes detected")
			},
			expectedOutput: "   - Uncommitted changes detected\n",
		},
	}
	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			outputBuffer := &bytes.Buffer{}
			reporter := ui.NewStatusReporter(outputBuffer)
			testCase.emit(reporter)
			require.Equal(subtestInstance, testCase.expectedOutput, outputBuffer.String())
		})
	}
}

func TestStatusReporterDiscardsWithoutWriter(testInstance *testing.T) {
	reporter := ui.NewStatusReporter(nil)
	reporter.Successf("ignored")
	reporter.ListItemf("ignored")
}
