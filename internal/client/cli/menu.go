package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/termvault/internal/client/services"
	"github.com/dmitrijs2005/termvault/internal/client/terminal"
	"github.com/dmitrijs2005/termvault/internal/logging"
)

// State is a node of the menu state machine.
type State int

const (
	StateMainMenu State = iota
	StateAwaitingChoice
	StateInLogin
	StateInSignup
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateInLogin:
		return "in_login"
	case StateInSignup:
		return "in_signup"
	case StateTerminated:
		return "terminated"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

const (
	menuText = "--- termvault ---\n\n" +
		"1. Login\n" +
		"2. Signup\n" +
		"3. Exit\n\n"

	choicePrompt      = "Choice: "
	usernamePrompt    = "Username: "
	passwordPrompt    = "Password: "
	confirmPrompt     = "Confirm password: "
	invalidChoiceText = "Invalid choice. Enter 1, 2 or 3."
)

// Menu drives the interactive loop. It owns no terminal mode; the caller
// switches raw mode on before Run and off after it returns.
type Menu struct {
	term  terminal.LineReader
	auth  services.AuthService
	log   logging.Logger
	state State
}

func NewMenu(term terminal.LineReader, auth services.AuthService, log logging.Logger) *Menu {
	return &Menu{term: term, auth: auth, log: log.With("component", "menu"), state: StateMainMenu}
}

// State returns the current state.
func (m *Menu) State() State {
	return m.state
}

// Run loops until the user chooses to exit. It returns only terminal I/O
// errors (which wrap common.ErrIO) or ctx's error; auth failures are shown to
// the user and the loop goes on.
func (m *Menu) Run(ctx context.Context) error {
	m.state = StateMainMenu
	for m.state != StateTerminated {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := m.step(ctx)
		if err != nil {
			m.log.Error(ctx, "terminal failure", "state", m.state.String(), "error", err)
			return err
		}
		if next != m.state {
			m.log.Debug(ctx, "state change", "from", m.state.String(), "to", next.String())
		}
		m.state = next
	}
	return nil
}

func (m *Menu) step(ctx context.Context) (State, error) {
	switch m.state {
	case StateMainMenu:
		return m.showMainMenu()
	case StateAwaitingChoice:
		return m.awaitChoice()
	case StateInLogin:
		return m.login(ctx)
	case StateInSignup:
		return m.signup(ctx)
	}
	return StateTerminated, nil
}

func (m *Menu) showMainMenu() (State, error) {
	if err := m.term.Clear(); err != nil {
		return m.state, err
	}
	if err := m.term.Print(menuText); err != nil {
		return m.state, err
	}
	return StateAwaitingChoice, nil
}

func (m *Menu) awaitChoice() (State, error) {
	choice, err := m.term.ReadLine(choicePrompt, false)
	if err != nil {
		return m.state, err
	}

	switch strings.TrimSpace(choice) {
	case "1":
		return StateInLogin, nil
	case "2":
		return StateInSignup, nil
	case "3", "q", "Q":
		return StateTerminated, nil
	}

	if err := m.term.WaitForEnter(invalidChoiceText); err != nil {
		return m.state, err
	}
	return StateMainMenu, nil
}

func (m *Menu) login(ctx context.Context) (State, error) {
	if err := m.header("Login"); err != nil {
		return m.state, err
	}

	username, err := m.term.ReadLine(usernamePrompt, false)
	if err != nil {
		return m.state, err
	}
	password, err := m.term.ReadLine(passwordPrompt, true)
	if err != nil {
		return m.state, err
	}

	return m.finish(m.auth.Login(ctx, username, password))
}

// signup asks for the username first and stops early if it cannot be used,
// then asks for the password and, only if that is non-empty, the confirmation.
func (m *Menu) signup(ctx context.Context) (State, error) {
	if err := m.header("Signup"); err != nil {
		return m.state, err
	}

	username, err := m.term.ReadLine(usernamePrompt, false)
	if err != nil {
		return m.state, err
	}
	if out := m.auth.CheckUsername(ctx, username); !out.Success() {
		return m.finish(out)
	}

	password, err := m.term.ReadLine(passwordPrompt, true)
	if err != nil {
		return m.state, err
	}
	if password == "" {
		return m.finish(m.auth.Signup(ctx, username, password, password))
	}

	confirm, err := m.term.ReadLine(confirmPrompt, true)
	if err != nil {
		return m.state, err
	}

	return m.finish(m.auth.Signup(ctx, username, password, confirm))
}

func (m *Menu) header(title string) error {
	if err := m.term.Clear(); err != nil {
		return err
	}
	return m.term.Print("--- " + title + " ---\n")
}

// finish shows the outcome and waits for Enter before going back to the menu.
func (m *Menu) finish(out services.Outcome) (State, error) {
	if err := m.term.WaitForEnter(out.Message()); err != nil {
		return m.state, err
	}
	return StateMainMenu, nil
}
