package main

import (
	"context"
	"time"

	"repcounter-go/control"
	"repcounter-go/platform"
	"repcounter-go/status"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	h, w := platform.Open(platform.Pico)
	c := control.New(control.DefaultConfig(), h, status.New(w))
	c.Init()
	c.Run(context.Background())
}
