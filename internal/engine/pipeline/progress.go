package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
)

// progress keeps one chat message per run up to date with the stages reached.
// A nil *progress is valid and does nothing.
type progress struct {
	notifier    ports.Notifier
	logger      ports.Logger
	channelID   string
	projectName string
	messageID   string
	done        []string
}

func newProgress(notifier ports.Notifier, logger ports.Logger, channelID, projectName string) *progress {
	if notifier == nil || channelID == "" {
		return nil
	}
	return &progress{
		notifier:    notifier,
		logger:      logger,
		channelID:   channelID,
		projectName: projectName,
	}
}

func (p *progress) start(ctx context.Context) {
	if p == nil {
		return
	}
	id, err := p.notifier.Send(ctx, p.channelID, p.render(""))
	if err != nil {
		p.logger.Warn(fmt.Sprintf("progress message not sent: %v", err))
		return
	}
	p.messageID = id
}

func (p *progress) step(ctx context.Context, stage string) {
	if p == nil || p.messageID == "" {
		return
	}
	if err := p.notifier.Update(ctx, p.channelID, p.messageID, p.render(stage)); err != nil {
		p.logger.Warn(fmt.Sprintf("progress message not updated: %v", err))
	}
	p.done = append(p.done, stage)
}

// finish replaces the progress message with content, or sends content as a new
// message when no progress message exists.
func (p *progress) finish(ctx context.Context, content string) {
	if p == nil {
		return
	}
	if p.messageID != "" {
		if err := p.notifier.Update(ctx, p.channelID, p.messageID, content); err == nil {
			return
		}
	}
	if _, err := p.notifier.Send(ctx, p.channelID, content); err != nil {
		p.logger.Warn(fmt.Sprintf("completion message not sent: %v", err))
	}
}

func (p *progress) render(current string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⏳ **Weekly report for %s**\n", p.projectName)
	for _, stage := range p.done {
		fmt.Fprintf(&b, "✓ %s\n", stage)
	}
	if current != "" {
		fmt.Fprintf(&b, "● %s...\n", current)
	}
	return b.String()
}

// CompletionMessage formats the chat message announcing how a run ended.
func CompletionMessage(o domain.Outcome) string {
	name := o.ProjectName
	if name == "" {
		name = o.ProjectID
	}

	var lines []string
	switch o.Status {
	case domain.StatusSuccess:
		lines = append(lines,
			"🎉 **Weekly report ready!**",
			"",
			fmt.Sprintf("📋 **Project:** %s", name),
			"",
			fmt.Sprintf("📄 [Open report](%s)", o.DocumentURL),
		)
	case domain.StatusPartialSuccess:
		lines = append(lines,
			fmt.Sprintf("⚠️ **Weekly report for %s was only partially published.**", name),
			"",
			o.Message,
		)
		if o.DocumentURL != "" {
			lines = append(lines, "", fmt.Sprintf("📄 [Open report](%s)", o.DocumentURL))
		}
	default:
		lines = append(lines,
			fmt.Sprintf("❌ **Weekly report for %s failed.**", name),
			"",
			o.Message,
		)
	}

	if o.FolderURL != "" {
		lines = append(lines, fmt.Sprintf("📁 [Open project folder](%s)", o.FolderURL))
	}
	return strings.Join(lines, "\n")
}
