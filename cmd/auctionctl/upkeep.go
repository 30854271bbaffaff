package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var checkUpkeep = cli.Command{
	Name:   "checkupkeep",
	Usage:  "list the expired auctions waiting for settlement",
	Action: checkUpkeepAction,
}

var performUpkeep = cli.Command{
	Name:  "performupkeep",
	Usage: "settle one expired auction",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "asset"},
	},
	Action: performUpkeepAction,
}

func checkUpkeepAction(ctx *cli.Context) error {
	resp, err := request("GET", "/v1/upkeep", "")
	if err != nil {
		return err
	}
	printResponse(resp)
	return nil
}

func performUpkeepAction(ctx *cli.Context) error {
	resp, err := request(
		"POST", fmt.Sprintf("/v1/upkeep/%s", ctx.String("asset")), "",
	)
	if err != nil {
		return err
	}
	printResponse(resp)
	return nil
}
