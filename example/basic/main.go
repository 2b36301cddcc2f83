package main

import (
	"context"
	"fmt"
	"log"

	"github.com/siherrmann/wikigraph"
	"github.com/siherrmann/wikigraph/sparql"
)

func main() {
	ctx := context.Background()

	// Configuration is read from the environment; the public Wikidata
	// endpoint is the default.
	client, err := wikigraph.NewClient(nil)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	// Search people by exact English name. A common name is ambiguous and
	// returns multiple matches.
	people, err := client.SearchPeople(ctx, "William Carpenter")
	if err != nil {
		log.Fatalf("Failed to search people: %v", err)
	}
	for _, person := range people {
		fmt.Println(person)
	}

	fmt.Println()

	// List the directly claimed properties of one entity.
	fields, err := client.EntityDetail(ctx, "Q8006577", sparql.DetailModeProperties, nil)
	if err != nil {
		log.Fatalf("Failed to get entity detail: %v", err)
	}
	for _, field := range fields {
		fmt.Println(field)
	}
}
