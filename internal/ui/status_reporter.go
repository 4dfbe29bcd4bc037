package ui

import (
	"fmt"
	"io"

	"github.com/temirov/gitflow/internal/utils"
)

const (
	statusLineTemplateConstant   = "%s %s\n"
	plainLineTemplateConstant    = "%s\n"
	indentedItemTemplateConstant = "   - %s\n"
	listItemTemplateConstant     = "  - %s\n"
)

// StatusGlyph prefixes a user-facing status line.
type StatusGlyph string

// Glyphs used across workflow commands.
const (
	GlyphSuccess   StatusGlyph = "✅"
	GlyphWarning   StatusGlyph = "⚠️"
	GlyphFailure   StatusGlyph = "❌"
	GlyphLaunch    StatusGlyph = "🚀"
	GlyphFire      StatusGlyph = "🔥"
	GlyphBroom     StatusGlyph = "🧹"
	GlyphHospital  StatusGlyph = "🏥"
	GlyphRefresh   StatusGlyph = "🔄"
	GlyphMagnifier StatusGlyph = "🔍"
	GlyphChart     StatusGlyph = "📊"
	GlyphBulb      StatusGlyph = "💡"
	GlyphTrend     StatusGlyph = "📈"
	GlyphLink      StatusGlyph = "🔗"
	GlyphStop      StatusGlyph = "🛑"
	GlyphNone      StatusGlyph = ""
)

// StatusReporter writes glyph-prefixed status lines for CLI users.
//
// Diagnostic telemetry flows through zap separately; the reporter carries only
// the human-facing narrative of an operation.
type StatusReporter struct {
	writer io.Writer
}

// NewStatusReporter wraps the provided writer. A nil writer yields a reporter that discards output.
func NewStatusReporter(writer io.Writer) *StatusReporter {
	if writer == nil {
		writer = io.Discard
	}
	return &StatusReporter{writer: utils.NewFlushingWriter(writer)}
}

// Statusf writes a single line prefixed with the supplied glyph.
func (reporter *StatusReporter) Statusf(glyph StatusGlyph, messageTemplate string, templateArguments ...any) {
	if reporter == nil || reporter.writer == nil {
		return
	}
	renderedMessage := fmt.Sprintf(messageTemplate, templateArguments...)
	if len(glyph) == 0 {
		fmt.Fprintf(reporter.writer, plainLineTemplateConstant, renderedMessage)
		return
	}
	fmt.Fprintf(reporter.writer, statusLineTemplateConstant, glyph, renderedMessage)
}

// Successf writes a success line.
func (reporter *StatusReporter) Successf(messageTemplate string, templateArguments ...any) {
	reporter.Statusf(GlyphSuccess, messageTemplate, templateArguments...)
}

// Warningf writes a warning line.
func (reporter *StatusReporter) Warningf(messageTemplate string, templateArguments ...any) {
	reporter.Statusf(GlyphWarning, messageTemplate, templateArguments...)
}

// Failuref writes a failure line.
func (reporter *StatusReporter) Failuref(messageTemplate string, templateArguments ...any) {
	reporter.Statusf(GlyphFailure, messageTemplate, templateArguments...)
}

// Plainf writes a line without any glyph prefix.
func (reporter *StatusReporter) Plainf(messageTemplate string, templateArguments ...any) {
	reporter.Statusf(GlyphNone, messageTemplate, templateArguments...)
}

// ListItemf writes a two-space indented list entry.
func (reporter *StatusReporter) ListItemf(messageTemplate string, templateArguments ...any) {
	if reporter == nil || reporter.writer == nil {
		return
	}
	fmt.Fprintf(reporter.writer, listItemTemplateConstant, fmt.Sprintf(messageTemplate, templateArguments...))
}

// DetailItemf writes a three-space indented detail entry used by report sections.
func (reporter *StatusReporter) DetailItemf(messageTemplate string, templateArguments ...any) {
	if reporter == nil || reporter.writer == nil {
		return
	}
	fmt.Fprintf(reporter.writer, indentedItemTemplateConstant, fmt.Sprintf(messageTemplate, templateArguments...))
}
