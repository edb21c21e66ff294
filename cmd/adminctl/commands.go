package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"github.com/dmitrijs2005/adminauth/internal/cryptox"
	"github.com/dmitrijs2005/adminauth/internal/flagx"
	"github.com/dmitrijs2005/adminauth/internal/logging"
	"github.com/dmitrijs2005/adminauth/internal/server/config"
	"github.com/dmitrijs2005/adminauth/internal/server/repositories/users"
	"github.com/dmitrijs2005/adminauth/internal/server/services"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// logOutput receives the service logs.
var logOutput io.Writer = os.Stderr

type storeOpener func(ctx context.Context, dsn string, logger logging.Logger) (users.Store, *sql.DB, error)

var errUsage = errors.New("usage: adminctl <create|unlock|activate|deactivate|reset-token> -email <email> [-role <role>]")

var commandFlags = []string{"-email", "-role"}

type commandArgs struct {
	email string
	role  string
}

func parseCommandArgs(args []string) (commandArgs, error) {
	var ca commandArgs
	fs := flag.NewFlagSet("adminctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&ca.email, "email", "", "account email")
	fs.StringVar(&ca.role, "role", "admin", "account role")
	if err := fs.Parse(flagx.FilterArgs(args, commandFlags)); err != nil {
		return ca, err
	}
	if users.NormalizeEmail(ca.email) == "" {
		return ca, errUsage
	}
	return ca, nil
}

func run(ctx context.Context, args []string, out io.Writer, open storeOpener) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]

	ca, err := parseCommandArgs(rest)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(rest)
	if err != nil {
		return err
	}

	logger := logging.NewJSONLogger(logOutput, cfg.LogLevel)

	store, db, err := open(ctx, cfg.DatabaseDSN, logger)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	box, err := cryptox.NewBox(cfg.TOTPEncryptionKey)
	if err != nil {
		return fmt.Errorf("totp key error: %w", err)
	}
	svc := services.NewAuthService(store, cfg, box, services.WithLogger(logger))

	switch cmd {
	case "create":
		return create(ctx, svc, ca, out)
	case "unlock":
		if err := svc.UnlockAccount(ctx, ca.email); err != nil {
			return describe(err, ca.email)
		}
		fmt.Fprintf(out, "%s unlocked\n", ca.email)
	case "activate", "deactivate":
		if err := svc.SetAccountActive(ctx, ca.email, cmd == "activate"); err != nil {
			return describe(err, ca.email)
		}
		fmt.Fprintf(out, "%s %sd\n", ca.email, cmd)
	case "reset-token":
		token, err := svc.RequestPasswordReset(ctx, ca.email)
		if err != nil {
			return err
		}
		if token == "" {
			return fmt.Errorf("%s: no active account", ca.email)
		}
		fmt.Fprintln(out, token)
	default:
		return errUsage
	}
	return nil
}

func create(ctx context.Context, svc *services.AuthService, ca commandArgs, out io.Writer) error {
	password, err := promptPassword(out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := svc.CreateAccount(ctx, ca.email, string(password), ca.role)
	if err != nil {
		return describe(err, ca.email)
	}
	fmt.Fprintf(out, "created %s (%s) id=%s\n", u.Email, u.Role, u.ID)
	return nil
}

// promptPassword reads the password twice without echo.
func promptPassword(out io.Writer) ([]byte, error) {
	fd := int(os.Stdin.Fd())

	fmt.Fprint(out, "Enter password: ")
	pw, err := readPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return nil, err
	}

	fmt.Fprint(out, "Repeat password: ")
	again, err := readPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		common.WipeByteArray(pw)
		return nil, err
	}
	defer common.WipeByteArray(again)

	if string(pw) != string(again) {
		common.WipeByteArray(pw)
		return nil, errors.New("passwords do not match")
	}
	return pw, nil
}

func describe(err error, email string) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return fmt.Errorf("%s: no such account", email)
	case errors.Is(err, common.ErrorAlreadyExists):
		return fmt.Errorf("%s: account already exists", email)
	default:
		return err
	}
}
