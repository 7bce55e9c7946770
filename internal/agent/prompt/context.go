package prompt

import (
	"strings"

	"bear-reply/backend/internal/agent/preset"
)

// BuildUserContent creates the user block: the post, its permalink when
// known, the resolved preset and the task line
func BuildUserContent(postText, postURL string, id preset.ID) string {
	var sb strings.Builder
	sb.WriteString(originalPostLabel)
	sb.WriteString(postText)
	if postURL != "" {
		sb.WriteString(permalinkLabel)
		sb.WriteString(postURL)
	}
	sb.WriteString(presetLabel)
	sb.WriteString(string(id))
	sb.WriteString(taskInstruction)
	return sb.String()
}
