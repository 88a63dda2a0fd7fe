package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirmer asks yes/no questions on the terminal. Money moves on the
// answers, so anything that is not an explicit yes counts as no.
type Confirmer struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewConfirmer creates a Confirmer with the given reader and writer,
// defaulting to stdin/stdout.
func NewConfirmer(reader io.Reader, writer io.Writer) *Confirmer {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Confirmer{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Confirm prints the question and reads a y/n answer. It returns false
// on EOF or a canceled context.
func (c *Confirmer) Confirm(ctx context.Context, question string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	fmt.Fprintf(c.writer, "%s [y/N]: ", PromptStyle.Render(question))

	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
