package main

import (
	"log"

	"github.com/joho/godotenv"

	"solocrm/internal/app"
)

// @title        SoloCRM API
// @version      1.0
// @description  Backend of the SoloCRM small-business CRM: contacts, companies, leads, tasks, invoices, activities, dashboard stats and global search.
// @BasePath     /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}
	app.Run()
}
