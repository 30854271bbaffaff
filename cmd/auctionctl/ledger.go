package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
)

var balance = cli.Command{
	Name:  "balance",
	Usage: "get the withdrawable ledger balance of an identity",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "identity"},
	},
	Action: balanceAction,
}

var withdraw = cli.Command{
	Name:  "withdraw",
	Usage: "withdraw the whole ledger balance of an identity",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "identity"},
	},
	Action: withdrawAction,
}

func balanceAction(ctx *cli.Context) error {
	resp, err := request(
		"GET", fmt.Sprintf("/v1/ledger/%s", ctx.String("identity")), "",
	)
	if err != nil {
		return err
	}
	printResponse(resp)
	return nil
}

func withdrawAction(ctx *cli.Context) error {
	body, _ := json.Marshal(map[string]string{
		"identity": ctx.String("identity"),
	})

	resp, err := request("POST", "/v1/withdrawals", string(body))
	if err != nil {
		return err
	}
	printResponse(resp)
	return nil
}
