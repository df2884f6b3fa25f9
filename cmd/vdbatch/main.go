package main

import (
	"fmt"
	"os"
)

const usage = `vdbatch - Batch admin tool for the villager database

Usage:
  vdbatch <command>

Commands:
  generate-sitemap     Regenerate the sitemap file
  delete-search-index  Delete the search index
  build-search-index   Delete, recreate, and repopulate the search index
  build-redis-db       Rebuild the Redis database from the entity records

Exactly one command is required.`

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "generate-sitemap":
		err = runGenerateSitemap()
	case "delete-search-index":
		err = runDeleteSearchIndex()
	case "build-search-index":
		err = runBuildSearchIndex()
	case "build-redis-db":
		err = runBuildRedisDB()
	case "-h", "-help", "--help", "help":
		fmt.Println(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
