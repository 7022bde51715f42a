// Command swimfd starts a standalone failure-detector node: bind a
// datagram socket, launch the Receiver and Prober, and block. Peer
// discovery/join and membership gossip are out of scope for this package —
// the node starts with an empty member list and sends no PINGs until it
// learns a peer, which happens when another process that already knows
// this node's address PINGs it (the Receiver records the sender). Operators
// who want seeded peers wire a seeding step (Config.Persistent, or
// Server.MemberList) around swim.NewServer in their own main.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	swim "github.com/leesd556/swimfd"
	"github.com/leesd556/swimfd/internal/logging"
)

func main() {
	app := cli.NewApp()
	app.Name = "swimfd"
	app.Usage = "run a SWIM-style failure detector node"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "bind",
			Value: "127.0.0.1:7946",
			Usage: "local host:port to bind the datagram socket to",
		},
		cli.Int64Flag{
			Name:  "ping-ms",
			Value: swim.DefaultPingMS,
			Usage: "direct-ping phase budget in milliseconds",
		},
		cli.Int64Flag{
			Name:  "pingreq-ms",
			Value: swim.DefaultPingReqMS,
			Usage: "indirect-ping phase budget in milliseconds",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	config := swim.Config{
		BindAddress: c.String("bind"),
		Timing: swim.Timing{
			PingMS:    c.Int64("ping-ms"),
			PingReqMS: c.Int64("pingreq-ms"),
		},
	}

	server, err := swim.NewServer(config, nil, logging.Default)
	if err != nil {
		return err
	}

	logging.Default.Info("starting %s, period=%s", server, server.Timing().ProtocolPeriod())
	server.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logging.Default.Info("shutting down %s", server)
	return nil
}
