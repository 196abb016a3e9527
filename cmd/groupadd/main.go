// Command groupadd creates a post group. Groups have no web form; this is
// the administrative way to add one.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	dbadapter "yatube/internal/adapters/database"
	"yatube/internal/config"
	"yatube/internal/core/apperr"
	groupapp "yatube/internal/core/group/service"
	groupPort "yatube/internal/ports/group"
)

func main() {
	var in groupPort.GroupInput
	flag.StringVar(&in.Slug, "slug", "", "URL slug: letters, digits, '-' or '_'")
	flag.StringVar(&in.Title, "title", "", "group title")
	flag.StringVar(&in.Description, "description", "", "group description")
	flag.Parse()

	config.InitLogger()
	settings := config.Init()
	db := config.InitDB(settings)
	if err := dbadapter.AutoMigrate(db); err != nil {
		config.Logger.Fatal("Error during migrations", zap.Error(err))
	}

	svc := groupapp.NewGroupService(dbadapter.NewGroupRepositoryDatabase(db), config.Logger)
	g, err := svc.CreateGroup(context.Background(), in)
	if err != nil {
		for field, msg := range apperr.Fields(err) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
		}
		if !apperr.IsValidation(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}
	fmt.Printf("created group %q (/group/%s/)\n", g.Title, g.Slug)
}
