// Command phonebook lists or adds phonebook entries straight in MongoDB.
//
//	phonebook <password>                 list every entry
//	phonebook <password> <name> <number> add one entry
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"bloglist-service/internal/domain/person"
	"bloglist-service/internal/platform/database"
	"bloglist-service/internal/repository/mongodb"
)

// passwordPlaceholder is replaced by the password given on the command line.
const passwordPlaceholder = "<password>"

type cliConfig struct {
	URI string `env:"PHONEBOOK_MONGODB_URI" envDefault:"mongodb://admin:<password>@localhost:27017"`
	DB  string `env:"PHONEBOOK_MONGODB_DB" envDefault:"phonebookApp"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("give password as argument")
	}
	if len(args) != 1 && len(args) != 3 {
		return fmt.Errorf("usage: phonebook <password> [name number]")
	}

	_ = godotenv.Load()
	var cfg cliConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := database.NewMongo(ctx, connString(cfg.URI, args[0]), cfg.DB)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := mongodb.NewPersonRepo(db)

	if len(args) == 1 {
		persons, err := repo.List(ctx)
		if err != nil {
			return err
		}
		fmt.Println("phonebook:")
		for _, p := range persons {
			fmt.Printf("%s %s\n", p.Name, p.Number)
		}
		return nil
	}

	p := &person.Person{Name: args[1], Number: args[2]}
	if err := repo.Create(ctx, p); err != nil {
		return err
	}
	fmt.Printf("added %s number %s to phonebook\n", p.Name, p.Number)
	return nil
}

func connString(uri, password string) string {
	return strings.ReplaceAll(uri, passwordPlaceholder, password)
}
