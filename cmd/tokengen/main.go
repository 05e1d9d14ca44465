// Command tokengen mints an identity token whose role claim the API honours
// when no role header is sent.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/user-directory/config"
	"github.com/oksasatya/user-directory/internal/domain/entity"
	"github.com/oksasatya/user-directory/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	subject := flag.String("sub", "cli", "token subject")
	role := flag.String("role", string(entity.RoleAdmin), "role claim (ADMIN or USER)")
	ttl := flag.Duration("ttl", cfg.JWTTTL, "token lifetime")
	flag.Parse()

	r := entity.ParseRole(*role)
	if !r.Known() {
		log.Fatalf("unknown role %q", *role)
	}

	token, exp, err := helpers.NewJWTManager(cfg.JWTSecret, *ttl).GenerateToken(*subject, r.String())
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}
	fmt.Println(token)
	log.Printf("subject=%s role=%s expires=%s", *subject, r, exp.Format(time.RFC3339))
}
