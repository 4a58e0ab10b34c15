package main

import "gridsnake/internal/game"

func main() {
	game.Run()
}
