// Command consumer drains the practice event queue and logs one line per
// completed exercise.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/zphs-kuchanpally/ai-buddy/internal/config"
	"github.com/zphs-kuchanpally/ai-buddy/internal/queue"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("practice-consumer: reading %q", cfg.Events.Queue)
	err := queue.Consume(ctx, cfg.Events.URL, cfg.Events.Queue, func(ev queue.PracticeEvent) error {
		log.Println(queue.FormatEvent(ev))
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
