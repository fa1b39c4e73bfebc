// Command shipctl is the parceltrack client: it signs in to the remote authority,
// manages packages and browses the directory.
//
//	shipctl login -u staff
//	shipctl packages create --weight 2.5 --dimensions 30x20x15 --sender 1 --receiver 2 --location 1
//	shipctl packages advance 7 --status IN_TRANSIT --location 2
//	shipctl track 7
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
