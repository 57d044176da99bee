package main

import (
	"os"

	"github.com/polmorales30/nexo.clinic-sub000/config"
	"github.com/polmorales30/nexo.clinic-sub000/logger"
	"github.com/polmorales30/nexo.clinic-sub000/routes"
	"github.com/polmorales30/nexo.clinic-sub000/utils"
)

func main() {
	logger.InitializeLogger()
	defer logger.Close()

	config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
