/*
Package chainhashmap provides a fixed capacity hash table mapping contact names to contacts, resolving collisions
by separate chaining.

The number of buckets is set when the table is created and never changes. Each bucket holds a singly linked chain
of records whose names hash to it; new names are appended at the chain tail and inserting an existing name replaces
its number without moving it.

Basic usage:

	ht, _, err := chainhashmap.NewHashTable(10, nil)
	if err != nil {
		log.Fatal(err)
	}

	ht.Insert("John", "909-876-1234")

	if contact, found := ht.Search("John"); found {
		fmt.Println(contact)
	}

The default hash algorithm sums the Unicode code points of the name modulo the number of buckets, so names that
are anagrams of each other always share a bucket. Other algorithms are available through NewHashTableByName, and
any implementation of hashfunc.HashAlgorithm can be passed to NewHashTable.

A HashTable is not safe for concurrent use.
*/
package chainhashmap
