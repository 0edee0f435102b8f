package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"hackportal-backend/internal/organizer"
)

func main() {
	s := flag.String("key", os.Getenv("ORGANIZER_KEY"), "Key used to sign the organizer JWT (defaults to $ORGANIZER_KEY)")
	e := flag.String("exp", time.Now().Add(time.Hour*24*30).Format(time.RFC3339), "RFC3339 time of the expiration date")
	flag.Parse()

	if *s == "" {
		fmt.Println("--key is required")
		os.Exit(1)
	}

	exp, err := time.Parse(time.RFC3339, *e)
	if err != nil {
		fmt.Println("--exp invalid time")
		os.Exit(1)
	}

	ss, err := organizer.GenerateToken(exp, *s, time.Now())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println("Token successfully generated:", ss)
}
