package main

import (
	"fmt"
	"github.com/gostonefire/chainhashmap"
	"io"
	"strings"
)

// printTable - Prints one line per bucket, either "Index i: Empty" or the chain as "Index i: - name: number ..."
func printTable(w io.Writer, buckets []chainhashmap.BucketDump) {
	for _, bucket := range buckets {
		if bucket.IsEmpty() {
			_, _ = fmt.Fprintf(w, "Index %d: Empty\n", bucket.BucketNo)
			continue
		}

		var sb strings.Builder
		for _, c := range bucket.Contacts {
			sb.WriteString(" - ")
			sb.WriteString(c.String())
		}
		_, _ = fmt.Fprintf(w, "Index %d:%s\n", bucket.BucketNo, sb.String())
	}
}

// printSearchResult - Prints a search result or "not found"
func printSearchResult(w io.Writer, name string, contact chainhashmap.Contact, found bool) {
	if !found {
		_, _ = fmt.Fprintf(w, "%s: not found\n", name)
		return
	}
	_, _ = fmt.Fprintln(w, contact.String())
}

func printStat(w io.Writer, stat *chainhashmap.HashTableStat) {
	_, _ = fmt.Fprintf(w, "records: %d, used buckets: %d, longest chain: %d\n",
		stat.Records, stat.UsedBuckets, stat.LongestChain)
}

// runDemo - Walks through the sample scenario printing the table after every step
func runDemo(w io.Writer, hashTable *chainhashmap.HashTable) {
	printTable(w, hashTable.Dump())

	_, _ = fmt.Fprintln(w, "\n- Adding Contacts -")
	hashTable.Insert("John", "909-876-1234")
	hashTable.Insert("Rebecca", "111-555-0002")
	printTable(w, hashTable.Dump())

	contact, found := hashTable.Search("John")
	_, _ = fmt.Fprint(w, "\nSearch result: ")
	printSearchResult(w, "John", contact, found)

	_, _ = fmt.Fprintln(w, "\n- Testing for Collisions -")
	hashTable.Insert("Amy", "111-222-3333")
	hashTable.Insert("May", "222-333-1111")
	printTable(w, hashTable.Dump())

	_, _ = fmt.Fprintln(w, "\n- Updating Existing Contact -")
	hashTable.Insert("Rebecca", "999-444-9999")
	printTable(w, hashTable.Dump())

	_, _ = fmt.Fprintln(w, "\nSearch for non-existent contact:")
	contact, found = hashTable.Search("Chris")
	printSearchResult(w, "Chris", contact, found)
}
