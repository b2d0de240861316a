// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/chain"
)

type metadata struct {
	connect string
	key     *account.PrivateKey
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "registry-cli"
	app.Usage = "register and transfer assets on a registryd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	metadataFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "title, t",
			Value: "",
			Usage: "*asset title `STRING`",
		},
		cli.Uint64Flag{
			Name:  "size, s",
			Value: 0,
			Usage: "*asset size in bytes `COUNT`",
		},
		cli.StringFlag{
			Name:  "description, d",
			Value: "",
			Usage: "*asset description `STRING`",
		},
		cli.StringSliceFlag{
			Name:  "tag, g",
			Usage: "*asset tag, repeat for more `TAG`",
		},
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Bitmark,
			Usage: " connect to registry `NETWORK` [bitmark|testing|local]",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " registryd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " base58 private `KEY` used to sign requests",
			EnvVar: "REGISTRY_KEY",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a private key and its account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "register",
			Usage:     "register a new asset owned by the key's account",
			ArgsUsage: "\n   (* = required)",
			Flags:     metadataFlags,
			Action:    runRegister,
		},
		{
			Name:      "modify",
			Usage:     "replace the metadata of an owned asset",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.Uint64Flag{
					Name:  "id, i",
					Value: 0,
					Usage: "*asset identifier `ID`",
				},
			}, metadataFlags...),
			Action: runModify,
		},
		{
			Name:      "transfer",
			Usage:     "transfer an owned asset to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, i",
					Value: 0,
					Usage: "*asset identifier `ID`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to receive the asset `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "get",
			Usage:     "fetch one or more assets",
			ArgsUsage: "ID...",
			Action:    runGet,
		},
		{
			Name:      "permission",
			Usage:     "show whether an account has access to an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, i",
					Value: 0,
					Usage: "*asset identifier `ID`",
				},
				cli.StringFlag{
					Name:  "principal, p",
					Value: "",
					Usage: " `ACCOUNT` to check, default is the key's account",
				},
			},
			Action: runPermission,
		},
		{
			Name:   "info",
			Usage:  "display registryd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display registry-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// decode the global options
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		// only want one of these
		network := c.GlobalString("network")
		switch network {
		case "bitmark", "live":
			network = chain.Bitmark
		case "testing", "test":
			network = chain.Testing
		case "local", "regression":
			network = chain.Local
		default:
			return ErrInvalidNetwork
		}
		testnet := chain.IsTesting(network)

		var key *account.PrivateKey
		if s := c.GlobalString("key"); "" != s {
			k, err := account.PrivateKeyFromBase58(s)
			if nil != err {
				return err
			}
			if k.Test != testnet {
				return ErrWrongNetworkKey
			}
			key = k
		}

		if verbose {
			fmt.Fprintf(e, "network: %s  connect: %s\n", network, c.GlobalString("connect"))
		}

		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			key:     key,
			testnet: testnet,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	return app
}
