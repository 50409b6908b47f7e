package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/AlainDede/Delphinium-gestion-site/core/session"
)

func (cli *commandLine) purgeSessions(ctx context.Context) error {
	n, err := cli.sessions.Purge(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cli.out, "%d session(s) cleared\n", n)
	return errors.Wrap(err, "printing result")
}

// checkLogin goes through the same login exchange as the portal, without storing anything.
func (cli *commandLine) checkLogin(ctx context.Context, userID, pwd string) error {
	tokens, err := cli.api.Login(ctx, userID, pwd)
	if err != nil {
		return err
	}
	role := session.DecodeRole(tokens.IDToken)
	claims := session.DecodeClaims(tokens.IDToken)

	_, err = fmt.Fprintf(cli.out, "signed in as %q (role %s)\n", claims.Username, role)
	return errors.Wrap(err, "printing result")
}
