//go:build unix

package viewport

import (
	"os"
	"os/signal"
	"syscall"
)

func watchResize(s *Signal, onChange func(Class)) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)

	go func() {
		defer signal.Stop(ch)
		last := s.Current()
		for {
			select {
			case <-ch:
				if now := s.Current(); now != last {
					last = now
					onChange(now)
				}
			case <-s.stop:
				return
			}
		}
	}()
}
