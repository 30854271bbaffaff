package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"

	"github.com/urfave/cli/v2"

	"github.com/auctionward/auctiond/pkg/httputil"
)

var (
	auctionDataDir = dataDir()
	statePath      = path.Join(auctionDataDir, "state.json")
)

func main() {
	app := cli.NewApp()

	app.Version = "0.0.1"
	app.Name = "auction operator CLI"
	app.Usage = "Command line interface for auctiond daemon operators"
	app.Commands = append(
		app.Commands,
		&configCmd,
		&createAuction,
		&getAuction,
		&placeBid,
		&cancelAuction,
		&balance,
		&withdraw,
		&updateFee,
		&updateFeeRecipient,
		&getFee,
		&checkUpkeep,
		&performUpkeep,
		&addWebhook,
		&removeWebhook,
		&listWebhooks,
	)

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "[auctionctl]", err)
		os.Exit(1)
	}
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".auction-operator"
	}
	return path.Join(home, ".auction-operator")
}

func getState() (map[string]string, error) {
	data := map[string]string{}

	file, err := os.ReadFile(statePath)
	if err != nil {
		return nil, errors.New("get config state error: try 'config init'")
	}
	json.Unmarshal(file, &data)

	return data, nil
}

func setState(data map[string]string) error {
	if _, err := os.Stat(auctionDataDir); os.IsNotExist(err) {
		os.Mkdir(auctionDataDir, os.ModeDir|0755)
	}

	currentData, _ := getState()
	if currentData == nil {
		currentData = map[string]string{}
	}
	for key, value := range data {
		currentData[key] = value
	}

	jsonString, err := json.Marshal(currentData)
	if err != nil {
		return err
	}
	if err := os.WriteFile(statePath, jsonString, 0644); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	return nil
}

func getBaseURL() (string, error) {
	state, err := getState()
	if err != nil {
		return "", err
	}
	rpcserver, ok := state["rpcserver"]
	if !ok {
		return "", errors.New("set daemon address with `config set rpcserver`")
	}
	return rpcserver, nil
}

func request(method, path, body string) (string, error) {
	baseURL, err := getBaseURL()
	if err != nil {
		return "", err
	}

	headers := map[string]string{
		"Content-Type": "application/json",
	}
	status, resp, err := httputil.NewHTTPRequest(
		method, fmt.Sprintf("%s%s", baseURL, path), body, headers,
	)
	if err != nil {
		return "", err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return "", errors.New(resp)
	}
	return resp, nil
}

func printResponse(resp string) {
	if len(resp) <= 0 {
		fmt.Println("done")
		return
	}
	fmt.Println(resp)
}
