// Package bemctl parses bemctl flags and runs one command against the
// persisted device session.
package bemctl

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"

	"github.com/bemapp/orgadmin-shell/internal/app"
	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/pkg/config"
)

// Commands accepted as the first positional argument.
const (
	CmdLogin         = "login"
	CmdLogout        = "logout"
	CmdWhoami        = "whoami"
	CmdMenu          = "menu"
	CmdAnnouncements = "announcements"
)

var commands = []string{CmdLogin, CmdLogout, CmdWhoami, CmdMenu, CmdAnnouncements}

// Config holds bemctl command configuration.
type Config struct {
	Shell   *config.Config
	Command string

	Email    string
	Password string
	Page     int
}

// ParseConfig reads the shell configuration through l, then flags and the
// command name from args. The password falls back to BEM_PASSWORD.
func ParseConfig(ctx context.Context, fs *flag.FlagSet, args []string, l envconfig.Lookuper) (Config, error) {
	shell, err := config.LoadWith(ctx, l)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{Shell: shell}

	fs.StringVar(&cfg.Email, "email", "", "account email (login)")
	fs.StringVar(&cfg.Password, "password", "", "account password (login, default: BEM_PASSWORD)")
	fs.IntVar(&cfg.Page, "page", 1, "page number (announcements)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if fs.NArg() != 1 {
		return Config{}, fmt.Errorf("expected one command: %s", strings.Join(commands, ", "))
	}
	cfg.Command = fs.Arg(0)
	known := false
	for _, c := range commands {
		known = known || c == cfg.Command
	}
	if !known {
		return Config{}, fmt.Errorf("unknown command %q", cfg.Command)
	}

	if cfg.Password == "" {
		if v, ok := l.Lookup("BEM_PASSWORD"); ok {
			cfg.Password = v
		}
	}
	if cfg.Command == CmdLogin && (strings.TrimSpace(cfg.Email) == "" || cfg.Password == "") {
		return Config{}, errors.New("login requires -email and -password")
	}
	if cfg.Page < 1 {
		cfg.Page = 1
	}
	return cfg, nil
}

// Run restores the persisted session and executes cfg.Command, writing the
// result to out.
func Run(ctx context.Context, cfg Config, out io.Writer, log zerolog.Logger) error {
	shell, err := app.New(ctx, cfg.Shell, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := shell.Close(); err != nil {
			log.Warn().Err(err).Msg("closing store failed")
		}
	}()

	session := shell.Sessions.Restore(ctx)

	switch cfg.Command {
	case CmdLogin:
		user, err := shell.Sessions.Login(ctx, cfg.Email, cfg.Password)
		if err != nil {
			return errors.New(domain.DisplayMessage(err, domain.MsgLoginFailed))
		}
		primary, _ := user.PrimaryRole()
		fmt.Fprintf(out, "Signed in as %s (%s)\n", user.Name, primary)

	case CmdLogout:
		shell.Sessions.Logout(ctx)
		fmt.Fprintln(out, "Signed out")

	case CmdWhoami:
		if !session.Authenticated {
			fmt.Fprintln(out, "Not signed in")
			return nil
		}
		primary, _ := session.User.PrimaryRole()
		fmt.Fprintf(out, "%s <%s>\n", session.User.Name, session.User.Email)
		fmt.Fprintf(out, "primary role: %s\n", primary)
		fmt.Fprintf(out, "roles: %s\n", strings.Join(session.User.Roles, ", "))

	case CmdMenu:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(shell.Navigation.View(ctx))

	case CmdAnnouncements:
		items, err := shell.Announcements.List(ctx, cfg.Page)
		if err != nil {
			return fmt.Errorf("list announcements: %w", err)
		}
		if len(items) == 0 {
			fmt.Fprintln(out, "No announcements")
		}
		for _, a := range items {
			fmt.Fprintf(out, "#%d [%s] %s\n", a.ID, a.Type, a.Title)
		}
	}
	return nil
}
