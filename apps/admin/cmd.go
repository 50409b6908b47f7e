package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
	"github.com/AlainDede/Delphinium-gestion-site/core/session"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db       *sqlx.DB
	engine   string
	sessions *session.Manager
	api      *gateway.Client
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS]   - run a goose command against the session database")
	_, _ = fmt.Fprintln(cli.out, "  purgesessions            - sign every browser out")
	_, _ = fmt.Fprintln(cli.out, "  checklogin -userid ID    - sign in against the remote API and print the resulting role")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	checkLoginCmd := flag.NewFlagSet("checklogin", flag.ContinueOnError)
	checkLoginCmd.SetOutput(cli.out)
	checkLoginUserID := checkLoginCmd.String("userid", "", "The identifier to sign in with. The password will be prompted next.")

	ctx := context.Background()
	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(ctx, args[2:])
	case "purgesessions":
		return cli.purgeSessions(ctx)
	case "checklogin":
		if err := checkLoginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *checkLoginUserID == "" {
			checkLoginCmd.Usage()
			return errHelp
		}
		_, _ = fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		_, _ = fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			checkLoginCmd.Usage()
			return errHelp
		}
		return cli.checkLogin(ctx, *checkLoginUserID, string(pwd))
	default:
		cli.printUsage()
		return errHelp
	}
}
