package main

// @title Flight Assistant API
// @version 1.0
// @description Answers natural-language questions about flight delays using a local language model and historical flight data.
// @host localhost:5001
// @BasePath /

func main() {
	Execute()
}
