package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/cookify/receipt-ocr-service/gen/ent",
			Schema:  "github.com/cookify/receipt-ocr-service/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
