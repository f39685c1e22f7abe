// Command admin is the operator tool: it generates data encryption keys,
// applies database migrations, and provisions accounts with elevated roles.
//
// Usage:
//
//	admin -mode keygen
//	admin -mode migrate [-d dsn]
//	admin -mode create-user -n username [-role CLIENT] [-d dsn]
package main

import (
	"context"
	"database/sql"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stucanii/therappy/internal/common"
	"github.com/stucanii/therappy/internal/cryptox"
	"github.com/stucanii/therappy/internal/flagx"
	"github.com/stucanii/therappy/internal/server/config"
	"github.com/stucanii/therappy/internal/server/models"
	"github.com/stucanii/therappy/internal/server/repositories/repomanager"
	"github.com/stucanii/therappy/internal/server/services"
	"golang.org/x/term"
)

func main() {

	args := flagx.FilterArgs(os.Args[1:], []string{"-mode", "-n", "-role"})

	fs := flag.NewFlagSet("admin", flag.ExitOnError)
	mode := fs.String("mode", "", "keygen | migrate | create-user")
	username := fs.String("n", "", "username for create-user")
	role := fs.String("role", string(models.RoleUser), "role for create-user")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()

	switch *mode {
	case "keygen":
		keygen()
	case "migrate":
		if err := migrate(ctx); err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println("migrations applied")
	case "create-user":
		if err := createUser(ctx, *username, models.Role(strings.ToUpper(*role))); err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println("Success!")
	default:
		fs.Usage()
		os.Exit(2)
	}
}

func keygen() {
	key := common.GenerateRandByteArray(cryptox.KeySize)
	fmt.Println(base64.StdEncoding.EncodeToString(key))
	common.WipeByteArray(key)
}

func openDB() (*sql.DB, error) {
	cfg := config.LoadConfig()
	return sql.Open("pgx", cfg.DatabaseDSN)
}

func migrate(ctx context.Context) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	return repomanager.NewPostgresRepositoryManager().RunMigrations(ctx, db)
}

func createUser(ctx context.Context, username string, role models.Role) error {
	if username == "" {
		return fmt.Errorf("username is required (-n)")
	}

	fmt.Println("Enter password")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	us := services.NewUserService(db, repomanager.NewPostgresRepositoryManager())

	user, err := us.CreateWithRole(ctx, username, string(password), role)
	if err != nil {
		return err
	}

	fmt.Printf("created user %s (%s) with role %s\n", user.Username, user.ID, user.Role)
	return nil
}
