package utils

import (
    "os"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

// GenerateJWT mints an HS256 token carrying the account email and role
// ("user" or "admin").
func GenerateJWT(email, role string) (string, error) {
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "email": email,
        "role":  role,
        "exp":   time.Now().Add(time.Hour * 72).Unix(),
    })

    return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
