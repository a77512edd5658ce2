package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"team-lab/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"github.com/vmihailenco/msgpack/v5"
)

const defaultPath = "./data/team-lab"

func main() {
	dbPath := flag.String("db", defaultPath, "Path to badger DB")
	prefix := flag.String("prefix", "", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Size", "Entries", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				kind, entries, detail, err := describe(key, v)
				if err != nil {
					// Keep listing the other keys
					fmt.Printf("Error decoding key %s: %v\n", key, err)
					return nil
				}
				table.Append([]string{key, kind, fmt.Sprintf("%dB", len(v)), entries, detail})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func describe(key string, v []byte) (kind, entries, detail string, err error) {
	switch key {
	case repositories.RosterKey:
		var r repositories.DiskRoster
		if err = msgpack.Unmarshal(v, &r); err != nil {
			return "", "", "", err
		}
		names := make([]string, 0, len(r.Participants))
		for _, p := range r.Participants {
			names = append(names, p.Name)
		}
		return "ROSTER", fmt.Sprint(len(r.Participants)), fmt.Sprintf("%d teams: %s", r.TeamCount, strings.Join(names, ", ")), nil
	case repositories.TeamsKey:
		var t repositories.DiskTeams
		if err = msgpack.Unmarshal(v, &t); err != nil {
			return "", "", "", err
		}
		sizes := make([]string, 0, len(t.Teams))
		for _, team := range t.Teams {
			sizes = append(sizes, fmt.Sprint(len(team)))
		}
		detail = fmt.Sprintf("sizes %s, imbalance %g", strings.Join(sizes, "/"), t.Imbalance)
		if t.Stale {
			detail += " (stale)"
		}
		return "TEAMS", fmt.Sprint(len(t.Teams)), detail, nil
	case repositories.WheelKey:
		var w repositories.DiskWheel
		if err = msgpack.Unmarshal(v, &w); err != nil {
			return "", "", "", err
		}
		return "WHEEL", fmt.Sprint(len(w.Choices)), fmt.Sprintf("%d set aside", len(w.Removed)), nil
	}
	return "RAW", "", fmt.Sprintf("%q", v), nil
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		// A crashed writer leaves a value log to truncate, which read-only mode refuses
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
