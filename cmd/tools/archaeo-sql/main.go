// Command archaeo-sql serves a tailsql browser over a detection results
// database, grounded on internal/db/db.go's AttachAdminRoutes. Unlike
// that method, this tool mounts tsql's handler directly on a plain
// http.ServeMux rather than through tsweb.Debugger, since tsweb pulls in
// tailscale.com's mesh-networking stack for a single read-only debug
// page — out of scope for a standalone CLI tool.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/tailscale/tailsql/server/tailsql"

	"github.com/banshee-data/archaeoscan/internal/archaeo/store"
)

var (
	dbPath = flag.String("db-path", "archaeo_results.db", "path to the sqlite results database")
	listen = flag.String("listen", "localhost:6080", "HTTP listen address for the tailsql browser")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	db, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("open results database %s: %v", *dbPath, err)
	}
	defer db.Close()

	tsql, err := tailsql.NewServer(tailsql.Options{
		RoutePrefix: "/",
	})
	if err != nil {
		log.Fatalf("create tailsql server: %v", err)
	}
	tsql.SetDB("sqlite://"+*dbPath, db.DB, &tailsql.DBOptions{
		Label: "Archaeo Detection Results",
	})

	mux := http.NewServeMux()
	mux.Handle("/", tsql.NewMux())

	log.Printf("archaeo-sql browser listening on %s", *listen)
	if err := http.ListenAndServe(*listen, mux); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
