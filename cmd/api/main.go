package main

import (
	"context"
	"log"

	"github.com/SHWFT/synqchain/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("synqchain api exited: %v", err)
	}
}
