package main

import (
	"log"
	"os"

	"github.com/Teamofeyy/TaskManager/internal/config"
	"github.com/Teamofeyy/TaskManager/internal/menu"
	"github.com/Teamofeyy/TaskManager/internal/task"
)

func main() {
	cfg, err := config.Load("taskmanager.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	store := task.NewStore(cfg.DataFile)

	m := menu.New(store, menu.Options{ExportDir: cfg.ExportDir}, os.Stdin, os.Stdout)
	if err := m.Run(); err != nil {
		log.Fatalf("menu: %v", err)
	}
}
