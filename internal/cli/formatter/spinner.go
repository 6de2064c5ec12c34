package formatter

import (
	"context"
	"fmt"
	"io"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// StartSpinner animates message on w until the returned stop func is
// called. stop clears the line and waits for the animation to exit; calling
// it more than once is harmless.
func StartSpinner(w io.Writer, message string) (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		spin(ctx, w, message)
	}()
	return func() {
		cancel()
		<-done
	}
}

func spin(ctx context.Context, w io.Writer, message string) {
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()
	label := Dim(message)
	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			fmt.Fprint(w, "\r\033[K")
			return
		case <-ticker.C:
			glyph := StylePurple.Render(spinnerFrames[frame%len(spinnerFrames)])
			fmt.Fprintf(w, "\r  %s %s", glyph, label)
		}
	}
}
