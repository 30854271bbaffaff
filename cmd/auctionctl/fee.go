package main

import (
	"encoding/json"

	"github.com/urfave/cli/v2"
)

var updateFee = cli.Command{
	Name:  "updatefee",
	Usage: "updates the platform fee expressed in basis points",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "caller",
			Usage: "the admin identity",
		},
		&cli.Uint64Flag{
			Name:  "basis_point",
			Usage: "the new platform fee in basis points, 100 = 1%",
		},
	},
	Action: updateFeeAction,
}

var updateFeeRecipient = cli.Command{
	Name:  "updatefeerecipient",
	Usage: "updates the identity credited with the platform fee",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "caller",
			Usage: "the admin identity",
		},
		&cli.StringFlag{
			Name:  "recipient",
			Usage: "the new fee recipient identity",
		},
	},
	Action: updateFeeRecipientAction,
}

var getFee = cli.Command{
	Name:   "fee",
	Usage:  "get the current fee configuration",
	Action: getFeeAction,
}

func updateFeeAction(ctx *cli.Context) error {
	body, _ := json.Marshal(map[string]interface{}{
		"caller":         ctx.String("caller"),
		"percentage_fee": ctx.Uint64("basis_point"),
	})

	resp, err := request("POST", "/v1/admin/fee", string(body))
	if err != nil {
		return err
	}
	printResponse(resp)
	return nil
}

func updateFeeRecipientAction(ctx *cli.Context) error {
	body, _ := json.Marshal(map[string]string{
		"caller":        ctx.String("caller"),
		"fee_recipient": ctx.String("recipient"),
	})

	resp, err := request("POST", "/v1/admin/fee-recipient", string(body))
	if err != nil {
		return err
	}
	printResponse(resp)
	return nil
}

func getFeeAction(ctx *cli.Context) error {
	resp, err := request("GET", "/v1/admin/fee", "")
	if err != nil {
		return err
	}
	printResponse(resp)
	return nil
}
