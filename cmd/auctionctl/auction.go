package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
)

var createAuction = cli.Command{
	Name:  "createauction",
	Usage: "list an asset for auction",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "asset",
			Usage: "the id of the asset to list",
		},
		&cli.StringFlag{
			Name:  "seller",
			Usage: "the identity of the seller, must own the asset",
		},
		&cli.Uint64Flag{
			Name:  "reserve",
			Usage: "the minimum bid for the sale to go through",
		},
		&cli.Int64Flag{
			Name:  "start",
			Usage: "the unix time the bidding window opens",
		},
		&cli.Int64Flag{
			Name:  "end",
			Usage: "the unix time the bidding window closes",
		},
		&cli.BoolFlag{
			Name:  "randomness",
			Usage: "resolve the auction with a verifiable random seed",
		},
	},
	Action: createAuctionAction,
}

var getAuction = cli.Command{
	Name:   "auction",
	Usage:  "get the state of an auction",
	Flags:  []cli.Flag{&cli.StringFlag{Name: "asset"}},
	Action: getAuctionAction,
}

var placeBid = cli.Command{
	Name:  "bid",
	Usage: "place a bid on an active auction",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "asset"},
		&cli.StringFlag{Name: "bidder"},
		&cli.Uint64Flag{Name: "amount"},
	},
	Action: placeBidAction,
}

var cancelAuction = cli.Command{
	Name:  "cancelauction",
	Usage: "cancel an active auction before any qualifying bid",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "asset"},
		&cli.StringFlag{
			Name:  "caller",
			Usage: "the identity requesting the cancellation, seller or admin",
		},
	},
	Action: cancelAuctionAction,
}

func createAuctionAction(ctx *cli.Context) error {
	body, _ := json.Marshal(map[string]interface{}{
		"asset_id":            ctx.String("asset"),
		"seller":              ctx.String("seller"),
		"reserve_price":       ctx.Uint64("reserve"),
		"start_time":          ctx.Int64("start"),
		"end_time":            ctx.Int64("end"),
		"requires_randomness": ctx.Bool("randomness"),
	})

	resp, err := request("POST", "/v1/auctions", string(body))
	if err != nil {
		return err
	}
	printResponse(resp)
	return nil
}

func getAuctionAction(ctx *cli.Context) error {
	resp, err := request(
		"GET", fmt.Sprintf("/v1/auctions/%s", ctx.String("asset")), "",
	)
	if err != nil {
		return err
	}
	printResponse(resp)
	return nil
}

func placeBidAction(ctx *cli.Context) error {
	body, _ := json.Marshal(map[string]interface{}{
		"bidder": ctx.String("bidder"),
		"amount": ctx.Uint64("amount"),
	})

	resp, err := request(
		"POST", fmt.Sprintf("/v1/auctions/%s/bids", ctx.String("asset")),
		string(body),
	)
	if err != nil {
		return err
	}
	printResponse(resp)
	return nil
}

func cancelAuctionAction(ctx *cli.Context) error {
	body, _ := json.Marshal(map[string]string{
		"caller": ctx.String("caller"),
	})

	resp, err := request(
		"POST", fmt.Sprintf("/v1/auctions/%s/cancel", ctx.String("asset")),
		string(body),
	)
	if err != nil {
		return err
	}
	printResponse(resp)
	return nil
}
