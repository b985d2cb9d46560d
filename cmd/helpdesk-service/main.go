package main

import (
	"log"

	"github.com/mesadeayuda/helpdesk-service/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
