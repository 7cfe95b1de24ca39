// dbtool 是迁移与种子工具：
//
//	dbtool migrate up|down|status   执行/回滚/查看 SQL 迁移
//	dbtool seed [file]              按 YAML 种子文件写入站点内容
//	dbtool setup                    迁移到最新后执行种子命令
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/launchpage/internal/config"
	"github.com/launchpage/internal/db"
	"github.com/launchpage/internal/dbtool"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	desc := dbtool.LoadDescriptor(config.CaptureEnvironment())

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "migrate":
		err = runMigrate(desc, os.Args[2:])
	case "seed":
		err = runSeed(desc, os.Args[2:])
	case "setup":
		err = runSetup(desc)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("dbtool: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: dbtool migrate up|down|status | seed [file] | setup")
}

func runMigrate(desc dbtool.Descriptor, args []string) error {
	if len(args) != 1 {
		return errors.New("migrate expects one of: up, down, status")
	}

	m, err := dbtool.NewMigrator(desc)
	if err != nil {
		return err
	}

	switch args[0] {
	case "up":
		if err := m.Up(); err != nil {
			if errors.Is(err, dbtool.ErrNoChange) {
				log.Println("schema already up to date")
				return nil
			}
			return err
		}
		log.Println("migrations applied")
	case "down":
		if err := m.Down(); err != nil {
			if errors.Is(err, dbtool.ErrNoChange) {
				log.Println("nothing to roll back")
				return nil
			}
			return err
		}
		log.Println("rolled back one migration")
	case "status":
		version, dirty, err := m.Version()
		if err != nil {
			return err
		}
		log.Printf("schema version %d (dirty=%v)", version, dirty)
	default:
		return fmt.Errorf("unknown migrate action %q", args[0])
	}
	return nil
}

func runSeed(desc dbtool.Descriptor, args []string) error {
	path := dbtool.DefaultSeedFile
	if len(args) > 0 {
		path = args[0]
	}

	seed, err := dbtool.LoadSeedFile(path)
	if err != nil {
		return err
	}

	if err := db.Init(desc.DatasourceURL); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := dbtool.ApplySeed(db.DB, seed); err != nil {
		return err
	}
	log.Printf("seeded %d value props, %d features, %d plans",
		len(seed.ValueProps), len(seed.Features), len(seed.Plans))
	return nil
}

func runSetup(desc dbtool.Descriptor) error {
	m, err := dbtool.NewMigrator(desc)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, dbtool.ErrNoChange) {
		return err
	}
	return dbtool.RunSeedCommand(context.Background(), desc)
}
