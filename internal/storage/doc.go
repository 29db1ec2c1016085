// Package storage provides SQLite-based persistence for cross-reference data
// and the classification audit trail.
//
// The storage layer manages:
//   - cross_references: documented equivalent-part pairs, normalized and
//     stored in canonical order so each pair exists exactly once
//   - classifications: one row per classification served, for auditing
//   - comparisons: one row per similarity comparison served
//
// # Basic Usage
//
//	db, err := storage.NewSQLiteStorage("~/.partmatch/partmatch.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	err = db.AddCrossReference(ctx, &storage.CrossReference{
//	    MPNA:   "LM358D",
//	    MPNB:   "LM2904D",
//	    Source: "vendor-xref",
//	})
//
// At startup the pairs are loaded into an in-memory equivalence set; the
// scoring engine never touches the database on the query path.
//
// # Build Tags
//
// The storage package supports two build configurations:
//
// CGO Build (sqlite_cgo tag):
//
//   - Uses github.com/mattn/go-sqlite3 driver
//
//   - Requires C compiler
//
//     CGO_ENABLED=1 go build -tags "sqlite_cgo"
//
// Pure Go Build (default, or purego tag):
//
//   - Uses modernc.org/sqlite driver
//
//   - No C compiler needed
//
//     CGO_ENABLED=0 go build -tags "purego"
package storage
