// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal reads interactive input: plain answers and hidden passwords.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoInput is returned when input ends before a line is read.
var ErrNoInput = errors.New("no input")

// Prompter asks questions on Out and reads answers from In.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	r *bufio.Reader
}

// New returns a Prompter over in and out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{In: in, Out: out}
}

func (p *Prompter) reader() *bufio.Reader {
	if p.r == nil {
		p.r = bufio.NewReader(p.In)
	}
	return p.r
}

// Prompt prints label and returns the trimmed line typed by the user.
func (p *Prompter) Prompt(label string) (string, error) {
	fmt.Fprint(p.Out, label)
	return p.readLine()
}

// PromptSecret prints label and reads a line without echo when In is a
// terminal. Otherwise the line is read as is, which lets scripts pipe secrets.
func (p *Prompter) PromptSecret(label string) (string, error) {
	fmt.Fprint(p.Out, label)
	if f, ok := p.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.Out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return p.readLine()
}

// ReadLine reads one line without printing a label.
func (p *Prompter) ReadLine() (string, error) {
	return p.readLine()
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader().ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// IsInteractive reports whether r is a terminal.
func IsInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
