package main

import (
	"log"

	"github.com/psds-microservice/vehicle-service/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
