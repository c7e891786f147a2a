// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formField struct {
	label  string
	secret bool
	limit  int
}

// form is a column of labelled text inputs with tab navigation. Secret
// fields use masked echo.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...formField) *form {
	f := &form{}
	for _, field := range fields {
		in := textinput.New()
		in.Placeholder = strings.ToLower(field.label)
		in.Width = 40
		in.CharLimit = 256
		if field.limit > 0 {
			in.CharLimit = field.limit
		}
		if field.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.labels = append(f.labels, field.label)
		f.inputs = append(f.inputs, in)
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

// update routes a message to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view() string {
	width := lipgloss.Width("Поле")
	for _, l := range f.labels {
		if w := lipgloss.Width(l); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ Значение\n", width, "Поле"))
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for i, l := range f.labels {
		b.WriteString(fmt.Sprintf("%-*s │ [", width, l))
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}
	return b.String()
}
