package main

import (
	"os"

	"github.com/bhavesharora02/Euron-Water-Supply/config"
	"github.com/bhavesharora02/Euron-Water-Supply/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
