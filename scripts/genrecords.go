// One-off: go run scripts/genrecords.go [days] > records.json
// Prints a JSON array of {id, name, createdAt} spread over the last N days,
// usable as RECORDS_URL fixture or as POST /api/v1/records bodies.
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

var names = []string{"Chair", "Desk", "Lamp", "Rug", "Shelf", "Mug", "Clock", "Sofa"}

func main() {
	days := 400
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n <= 0 {
			fmt.Fprintln(os.Stderr, "days must be a positive number")
			os.Exit(1)
		}
		days = n
	}

	now := time.Now().UTC()
	out := make([]map[string]string, 0, days)
	for i := 0; i < days; i++ {
		at := now.AddDate(0, 0, -i).Add(-time.Duration(rand.Intn(86400)) * time.Second)
		out = append(out, map[string]string{
			"id":        strconv.Itoa(i + 1),
			"name":      names[rand.Intn(len(names))],
			"createdAt": at.Format(time.RFC3339),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}
