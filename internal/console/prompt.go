package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter reads answers line by line. ok is false once input is exhausted.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) ask(question string) (answer string, ok bool) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

func (p *prompter) say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *prompter) pause() bool {
	_, ok := p.ask("Press Enter to continue...")
	return ok
}

func (p *prompter) err() error {
	return p.in.Err()
}
