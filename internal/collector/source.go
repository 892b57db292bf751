package collector

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Source supplies one answer per prompt. It decouples the questionnaire
// from the terminal so tests can script the whole dialogue.
type Source interface {
	ReadLine(prompt string) (string, error)
	Name() string
}

// TerminalSource reads answers line by line, writing prompts to w.
type TerminalSource struct {
	r *bufio.Reader
	w io.Writer
}

// NewTerminalSource creates a Source over the given reader and writer,
// typically os.Stdin and os.Stdout.
func NewTerminalSource(r io.Reader, w io.Writer) *TerminalSource {
	return &TerminalSource{r: bufio.NewReader(r), w: w}
}

func (t *TerminalSource) Name() string { return "terminal" }

func (t *TerminalSource) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(t.w, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := t.r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
