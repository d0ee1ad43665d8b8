package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"todo-api-backend/config"
	"todo-api-backend/ent"
	_ "todo-api-backend/ent/runtime"
	"todo-api-backend/pkg/adapter/repository/todorepository"
	"todo-api-backend/pkg/entity/model"
	"todo-api-backend/pkg/infrastructure/datastore"
)

var seedTodos = []model.CreateTodoInput{
	{Title: "Read the API documentation", IsCompleted: true},
	{Title: "Create the first todo"},
	{Title: "Mark a todo as completed"},
}

func main() {
	// Parse command line flags
	env := flag.String("env", "", "Environment (development, test, e2e, staging, production)")
	truncate := flag.Bool("truncate", false, "Truncate data (delete all todos)")
	flag.Parse()

	// Set environment if provided via flag, otherwise rely on APP_ENV or default
	if *env != "" {
		os.Setenv("APP_ENV", *env)
	}

	// Initialize config
	config.ReadConfig(config.ReadConfigOption{})
	log.Printf("Starting seed tool for environment: %s", config.C.AppEnv)

	// Initialize database client
	client, err := datastore.NewClient()
	if err != nil {
		log.Fatalf("Failed to create database client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	if *truncate {
		if err := truncateData(ctx, client); err != nil {
			log.Fatalf("Failed to truncate data: %v", err)
		}
		log.Println("Truncation completed successfully!")
	}

	if err := seedTodosData(ctx, client); err != nil {
		log.Fatalf("Failed to seed todos: %v", err)
	}

	log.Println("Seeding completed successfully!")
}

func truncateData(ctx context.Context, client *ent.Client) error {
	log.Println("Truncating todos table...")
	n, err := client.Todo.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete todos: %w", err)
	}
	log.Printf("Deleted %d todos", n)
	return nil
}

func seedTodosData(ctx context.Context, client *ent.Client) error {
	log.Println("Seeding todos...")

	repo := todorepository.NewTodoRepository(client)

	existing, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list todos: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[t.Title] = true
	}

	for _, in := range seedTodos {
		if seen[in.Title] {
			log.Printf("Todo %q already exists, skipping", in.Title)
			continue
		}
		t, err := repo.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("failed to create todo %q: %w", in.Title, err)
		}
		log.Printf("Created todo %d: %s", t.ID, t.Title)
	}
	return nil
}
