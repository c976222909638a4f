package main

import (
    "github.com/bipan-sh/weight-tracker/config"
    "github.com/bipan-sh/weight-tracker/routes"
)

func main() {
    config.InitDB()
    r := routes.SetupRouter()
    r.Run(":8080")
}
