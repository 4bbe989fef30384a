package shell

import (
	"fmt"
	"os/exec"
	"strings"
)

// clipboardTools lists supported clipboard commands in preference order.
var clipboardTools = []struct {
	name string
	args []string
}{
	{"pbcopy", nil},                                // macOS
	{"xclip", []string{"-selection", "clipboard"}}, // Linux X11
	{"wl-copy", nil},                               // Linux Wayland
}

// CopyToClipboard writes text to the system clipboard using the first
// available tool.
func CopyToClipboard(text string) error {
	for _, tool := range clipboardTools {
		if _, err := exec.LookPath(tool.name); err != nil {
			continue
		}
		cmd := exec.Command(tool.name, tool.args...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("no supported clipboard tool found; install pbcopy (macOS), xclip (X11) or wl-copy (Wayland)")
}

// ExtractCommands pulls shell commands out of fenced code blocks
// (```bash, ```sh or plain ```) in a model response. Comment lines are
// skipped. Returns nil when the response contains no code blocks.
func ExtractCommands(response string) []string {
	var commands []string
	inBlock := false

	for _, line := range strings.Split(response, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "```bash" || trimmed == "```sh" || trimmed == "```" {
			inBlock = !inBlock
			continue
		}
		if inBlock && trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			commands = append(commands, trimmed)
		}
	}

	return commands
}
