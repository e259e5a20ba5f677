package console

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Debug drops into a tiny interactive REPL over the console's CPU: step
// one CPU tick (microinstruction) at a time, run until cancelled or a
// fatal decode error, or inspect registers.
// SIGINT/SIGTERM during a run cancels it and returns to the prompt.
func (c *Console) Debug(ctx context.Context) {
	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, syscall.SIGINT, syscall.SIGTERM)

	for {
		fmt.Printf("A=%#02x X=%#02x Y=%#02x PC=%#04x SP=%#02x P=%#02x\n",
			c.CPU.A, c.CPU.X, c.CPU.Y, c.CPU.PC, c.CPU.SP, c.CPU.P)
		fmt.Println("(s)tep  (r)un  (q)uit")
		fmt.Print("choice: ")

		var in rune
		if _, err := fmt.Scanf("%c\n", &in); err != nil {
			return
		}

		switch in {
		case 's', 'S':
			if err := c.Step(); err != nil {
				fmt.Println(err)
			}
		case 'r', 'R':
			cctx, cancel := context.WithCancel(ctx)
			go func() {
				select {
				case <-sigQuit:
					cancel()
				case <-cctx.Done():
				}
			}()
			if err := c.Run(cctx); err != nil {
				fmt.Println(err)
			}
			cancel()
		case 'q', 'Q':
			return
		}
	}
}
