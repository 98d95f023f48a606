package main

import "github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/cli"

func main() {
	cli.Execute()
}
