// Command seed fills the database with a demo user, transactions and budgets
// for local development.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/smartexpense/expense-manager/internal/database"
	"github.com/smartexpense/expense-manager/utils"
)

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	transactions := flag.Int("transactions", 120, "number of demo transactions")
	flag.Parse()

	ctx := context.Background()
	pool, err := database.ConnectFromEnv(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	user, err := utils.GenerateDemoUser(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding user failed")
	}
	log.Info().Str("email", user.Email).Msg("demo user created (password: password1)")

	if err := utils.GenerateDemoTransactions(ctx, pool, user.ID, *transactions); err != nil {
		log.Fatal().Err(err).Msg("seeding transactions failed")
	}
	if err := utils.GenerateDemoBudgets(ctx, pool, user.ID); err != nil {
		log.Fatal().Err(err).Msg("seeding budgets failed")
	}
	log.Info().Int("transactions", *transactions).Msg("seeding complete")
}
