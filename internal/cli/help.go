package cli

import (
	"embed"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/cobrax/topics"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// installHelpTopics replaces the help command with one that also serves
// the embedded topics. Help runs without configuration.
func installHelpTopics(rootCmd *cobra.Command) {
	m, err := topics.Load(topicFiles, "topics", topics.Options{
		Renderer: topics.RendererFunc(renderTopic),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	helpCmd := m.Install(rootCmd)
	helpCmd.Annotations = map[string]string{annotationNoConfig: "true"}
}

func renderTopic(content, ext string) string {
	if ext != ".md" {
		return content
	}
	format := ui.FormatText
	if stdoutIsTerminal() {
		format = ui.FormatTerminal
	}
	return ui.RenderMarkdown(content, format, 0)
}
