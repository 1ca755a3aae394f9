// Command backdrop-serve serves PNG previews of the animated backdrops and
// the configured scene over HTTP. The port comes from PORT (default 8080),
// optionally set in a .env file.
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/achmichael/next-porto/internal/config"
	"github.com/achmichael/next-porto/internal/server"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	r := server.New(conf)
	log.Printf("serving backdrops on :%s (%s mode)", conf.Port, gin.Mode())
	if err := r.Run(":" + conf.Port); err != nil {
		log.Fatal(err)
	}
}
