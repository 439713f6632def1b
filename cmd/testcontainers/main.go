package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/enxovaldb/internal/testutil"
	"github.com/sirupsen/logrus"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var dbType string
	flag.StringVar(&dbType, "db", "", "database type: postgres, mariadb or mysql (default DB_TYPE or postgres)")
	flag.Parse()

	usage := `
Start a throwaway database container for running enxovaldb with STORE_TYPE=sql.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH] [-db DB_TYPE]

ENV_FILE_PATH: path to a .env file (DB_TYPE and DB_IMAGE are read from it)

example
  testcontainers -db mariadb
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		logrus.Infof("Loading environment variables from %s", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			logrus.Fatalf("Failed to load environment variables: %v", err)
		}
	}

	if dbType == "" {
		dbType = os.Getenv("DB_TYPE")
	}
	if dbType == "" || dbType == "sqlite" {
		dbType = "postgres"
	}

	dc, err := testutil.StartDatabase(context.Background(), nil, dbType)
	if err != nil {
		logrus.Fatalf("Failed to start database container: %v", err)
	}

	cfg := dc.Config
	fmt.Println("# Run the server with:")
	fmt.Printf("STORE_TYPE=sql\nDB_TYPE=%s\nDB_HOST=%s\nDB_PORT=%s\nDB_DATABASE=%s\nDB_USER=%s\nDB_PASSWORD=%s\n",
		cfg.DBType, cfg.DBHost, cfg.DBPort, cfg.DBDatabase, cfg.DBUser, cfg.DBPassword)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	sig := <-sigs
	logrus.Infof("Received signal: %v, terminating database container...", sig)
	dc.Terminate(nil)
}
