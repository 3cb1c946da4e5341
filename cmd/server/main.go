package main

// @title           Livros API
// @version         1.0
// @description     Search Google Books and keep a rated personal collection.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

func main() {
	Execute()
}
