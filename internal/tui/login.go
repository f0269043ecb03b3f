// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/meter-console/internal/service"
	"github.com/MKhiriev/meter-console/models"
)

// LoginModel is the Bubble Tea model for the sign-in screen. It renders two text inputs
// (username and password) and dispatches an async login command on form submission.
// On success a [LoginResult] message is produced and handled by [RootModel], which
// opens the main menu.
type LoginModel struct {
	ctx     context.Context
	session service.SessionManager

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	notice     string
}

// NewLoginModel creates a [LoginModel] with pre-configured username and password inputs.
// The username field receives focus immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, session service.SessionManager) *LoginModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "username"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:     ctx,
		session: session,
		inputs:  []textinput.Model{loginInput, passwordInput},
	}
}

// Init implements [tea.Model]. Clears the password and any previous outcome, keeps the
// username and starts the cursor-blink animation.
func (m *LoginModel) Init() tea.Cmd {
	m.inputs[1].SetValue("")
	m.submitting = false
	m.errMsg = ""
	m.notice = ""
	if m.focus != 0 {
		m.inputs[m.focus].Blur()
		m.focus = 0
	}
	m.inputs[0].Focus()
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]   clears submitting state; on error, populates errMsg.
//   - [loginNotice]   shows why the user landed on the form.
//   - tab, shift+tab  move focus between the inputs.
//   - enter           validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
		}
		return m, nil
	case loginNotice:
		m.notice = msg.text
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if username == "" || password == "" {
				m.errMsg = "Username and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the form as a two-column table with a
// submission indicator and an optional error message.
func (m *LoginModel) View() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(statusStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼──────────────────────────────────────────\n")
	b.WriteString("Username  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		s, err := session.Login(ctx, models.Credentials{
			Username: username,
			Password: password,
		})
		return LoginResult{Session: s, Err: err}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
