package db

import (
	"github.com/allisson/go-env"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/evmscan/evmscan/internal/core/repository"
)

var Command = &cli.Command{
	Name:  "db",
	Usage: "Manages databases",

	Subcommands: []*cli.Command{
		{
			Name:  "init",
			Usage: "Creates tables in both databases",
			Action: func(c *cli.Context) error {
				chURL := env.GetString("DB_CH_URL", "")
				pgURL := env.GetString("DB_PG_URL", "")

				conn, err := repository.ConnectDB(c.Context, chURL, pgURL)
				if err != nil {
					return errors.Wrap(err, "cannot connect to the databases")
				}
				defer conn.Close()

				if err := repository.CreateTables(c.Context, conn); err != nil {
					return errors.Wrap(err, "cannot create tables")
				}

				log.Info().Msg("tables created")
				return nil
			},
		},
	},
}
