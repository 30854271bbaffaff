package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
)

var addWebhook = cli.Command{
	Name:  "addwebhook",
	Usage: "add a webhook registered for some event",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "endpoint",
			Usage: "the endpoint where to notify the webhook",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "secret",
			Usage: "the eventual secret to authenticate requests",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "topic",
			Usage: "the topic for which the webhook gets notified",
		},
	},
	Action: addWebhookAction,
}

var removeWebhook = cli.Command{
	Name:  "removewebhook",
	Usage: "remove a webhook by id",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "id"},
	},
	Action: removeWebhookAction,
}

var listWebhooks = cli.Command{
	Name:  "listwebhooks",
	Usage: "list the webhooks registered for a topic",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "topic"},
	},
	Action: listWebhooksAction,
}

func addWebhookAction(ctx *cli.Context) error {
	body, _ := json.Marshal(map[string]string{
		"topic":    ctx.String("topic"),
		"endpoint": ctx.String("endpoint"),
		"secret":   ctx.String("secret"),
	})

	resp, err := request("POST", "/v1/webhooks", string(body))
	if err != nil {
		return err
	}
	printResponse(resp)
	return nil
}

func removeWebhookAction(ctx *cli.Context) error {
	resp, err := request(
		"DELETE", fmt.Sprintf("/v1/webhooks/%s", ctx.String("id")), "",
	)
	if err != nil {
		return err
	}
	printResponse(resp)
	return nil
}

func listWebhooksAction(ctx *cli.Context) error {
	resp, err := request(
		"GET", fmt.Sprintf("/v1/webhooks?topic=%s", ctx.String("topic")), "",
	)
	if err != nil {
		return err
	}
	printResponse(resp)
	return nil
}
