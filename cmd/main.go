package main

import (
    "log"

    "healthcoach/config"
    "healthcoach/routes"
    "healthcoach/services"
)

func main() {
    config.InitDB()
    config.InitRedis()

    if err := services.NewAdminService(config.DB).EnsureDefaultAdmin(); err != nil {
        log.Fatalf("admin bootstrap failed: %v", err)
    }
    if err := services.SeedDefaultQuotes(); err != nil {
        log.Fatalf("quote seed failed: %v", err)
    }

    hub := services.NewRealtimeHub()
    services.InitMessageDeps(hub)

    r := routes.SetupRouter(hub)
    r.Run(":8080")
}
