package main

import (
	"flag"
	"log"

	"github.com/navneetshukla17/primetrade-ai-analysis/cmd"
)

func main() {
	configPath := flag.String("config", "", "path to config yaml")
	flag.Parse()

	apiHandler, err := cmd.InitializeDependencies(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// load the dataset up front so the first dashboard request doesn't
	// pay the full parse cost
	if _, err := apiHandler.Sessions.Dataset(); err != nil {
		log.Fatal(err)
	}

	err = apiHandler.StartApi(apiHandler.Config.API.Port)
	if err != nil {
		log.Fatal(err)
	}
}
