package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/rajatvarna/PromptDB/pkg/app"
	"github.com/rajatvarna/PromptDB/pkg/store"
)

// Watch tails durable-store change events until the context is done.
// Another process editing the same library shows up here.
type Watch struct {
	Service *app.Service
}

func (n *Watch) Do(ctx context.Context) error {
	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}
	fmt.Println("watching for library changes, ctrl-c to stop")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			stamp := time.Now().Format("15:04:05")
			switch ev.Type {
			case store.EventLibraryChanged:
				fmt.Printf("%s library changed\n", stamp)
			case store.EventFavoritesChanged:
				fmt.Printf("%s favorites changed\n", stamp)
			}
		}
	}
}
