// Command adminhash prints the bcrypt hash to put in ADMIN_KEY_HASH.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/talentbank/pkg/auth"
)

func main() {
	cost := flag.Int("cost", 0, "bcrypt cost, 0 for the default")
	flag.Parse()

	key := strings.Join(flag.Args(), " ")
	if key == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatal().Err(err).Msg("can't read admin key from stdin")
		}
		key = strings.TrimSpace(line)
	}

	hash, err := (&auth.HashService{Cost: *cost}).Hash(key)
	if err != nil {
		log.Fatal().Err(err).Msg("can't hash admin key")
	}
	fmt.Println(hash)
}
