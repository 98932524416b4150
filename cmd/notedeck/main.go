package main

import "github.com/joho/godotenv"

func main() {
	// Best-effort: a missing .env simply means the key comes from the
	// real environment.
	godotenv.Load()
	Execute()
}
