package main

import (
	"fmt"
	"log"

	"sakura-backend/internal/auth"
	"sakura-backend/internal/config"
	"sakura-backend/internal/database"
	"sakura-backend/internal/notify"
	"sakura-backend/internal/reservations"
	"sakura-backend/internal/store"
)

const diningTables = 12

func main() {
	cfg := config.Load()
	database.Init(cfg)
	database.Seed()

	st := store.New(auth.DBClient{})
	st.SetMailer(notify.NewMailer(cfg.ResendAPIKey, cfg.MailFrom))
	for i := 1; i <= diningTables; i++ {
		st.AddTable(fmt.Sprintf("t%d", i), fmt.Sprintf("Tavolo %d", i))
	}
	reservations.LoadArchive(st)

	app := buildApp(cfg, st)

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
